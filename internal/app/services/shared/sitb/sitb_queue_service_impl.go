package sitb

import (
	"context"
	"fmt"
	"simrs-service/internal/app/config"
	"simrs-service/internal/app/contracts"
	"simrs-service/internal/app/models"
	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/exceptions"
	"simrs-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// SubmissionMessage is the payload handed to the SITB reporting pipeline for
// one tuberculosis claim.
type SubmissionMessage struct {
	ClaimNumber string   `json:"claim_number"`
	SEPNumber   string   `json:"sep_number"`
	CardNumber  string   `json:"card_number"`
	Diagnoses   []string `json:"diagnoses"`
	EnqueuedAt  string   `json:"enqueued_at"`
}

type sitbQueueService struct {
	ch        *amqp.Channel
	queueName string
	confirms  chan amqp.Confirmation
	mu        sync.Mutex
	Log       *zap.Logger
}

// NewSITBQueueService opens a channel, declares the durable submission queue,
// and enables publisher confirms so an enqueue only succeeds once the broker
// has the message.
func NewSITBQueueService(conn *amqp.Connection, internalConfig *config.InternalConfig, logger *zap.Logger) (contracts.SITBQueueService, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	queueName := internalConfig.App.SITBQueueName
	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &sitbQueueService{
		ch:        ch,
		queueName: queueName,
		confirms:  ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
		Log:       logger,
	}, nil
}

func (s *sitbQueueService) PublishSubmission(ctx context.Context, claim *models.Claim) error {
	s.Log.Info("sitbQueueService.PublishSubmission called",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingClaimNumberKey, claim.ClaimNumber),
		zap.String(constvars.LoggingQueueNameKey, s.queueName),
	)

	diagnoses := make([]string, len(claim.Diagnoses))
	for i, diagnosis := range claim.Diagnoses {
		diagnoses[i] = diagnosis.Code
	}

	body, err := json.Marshal(SubmissionMessage{
		ClaimNumber: claim.ClaimNumber,
		SEPNumber:   claim.SEPNumber,
		CardNumber:  claim.PatientCardNumber,
		Diagnoses:   diagnoses,
		EnqueuedAt:  time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}
	if err := s.ch.PublishWithContext(ctx, "", s.queueName, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), s.queueName)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), s.queueName)
	}
	return nil
}
