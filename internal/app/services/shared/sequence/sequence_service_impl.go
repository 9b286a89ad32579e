package sequence

import (
	"context"
	"fmt"
	"simrs-service/internal/app/contracts"
	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type sequenceService struct {
	counters contracts.CounterRepository
	Log      *zap.Logger
}

func NewSequenceService(counters contracts.CounterRepository, logger *zap.Logger) contracts.SequenceService {
	return &sequenceService{counters: counters, Log: logger}
}

// Next issues the next identifier for the prefix within the current month,
// formatted as PREFIX-YYYYMM-NNNNN.
func (s *sequenceService) Next(ctx context.Context, prefix string) (string, error) {
	period := utils.PeriodKey(time.Now())
	counterKey := fmt.Sprintf("%s:%s", prefix, period)

	value, err := s.counters.IncrementAndGet(ctx, counterKey)
	if err != nil {
		return "", err
	}

	sequence := fmt.Sprintf("%s-%s-%05d", prefix, period, value)
	s.Log.Debug("sequenceService issued identifier",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingSequenceKey, sequence),
	)
	return sequence, nil
}
