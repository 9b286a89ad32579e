package bpjs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"simrs-service/internal/app/config"
	"simrs-service/internal/app/contracts"
	"simrs-service/internal/app/models"
	"simrs-service/internal/app/services/shared/ratelimiter"
	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/dto/responses"
	"simrs-service/internal/pkg/exceptions"
	"simrs-service/internal/pkg/utils"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// The iCare portal accepts a history-access token for a bounded window after
// issuance; callers are expected to open the URL right away.
const historyAccessValidity = 5 * time.Minute

type vclaimClient struct {
	internalConfig *config.InternalConfig
	signer         *Signer
	limiter        *ratelimiter.ResourceLimiter
	httpClient     *http.Client
	Log            *zap.Logger
}

func NewVClaimClient(
	internalConfig *config.InternalConfig,
	signer *Signer,
	limiter *ratelimiter.ResourceLimiter,
	logger *zap.Logger,
) contracts.VClaimGateway {
	return &vclaimClient{
		internalConfig: internalConfig,
		signer:         signer,
		limiter:        limiter,
		httpClient: &http.Client{
			Timeout: time.Duration(internalConfig.BPJS.RequestTimeoutSeconds) * time.Second,
		},
		Log: logger,
	}
}

func (c *vclaimClient) ExecuteGrouper(ctx context.Context, claim *models.Claim) (*models.GroupingResult, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("vclaimClient.ExecuteGrouper called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClaimNumberKey, claim.ClaimNumber),
		zap.String(constvars.LoggingGrouperEngineKey, claim.GrouperEngine),
	)

	diagnoses := make([]string, len(claim.Diagnoses))
	for i, diagnosis := range claim.Diagnoses {
		diagnoses[i] = diagnosis.Code
	}
	procedures := make([]string, len(claim.Procedures))
	for i, procedure := range claim.Procedures {
		procedures[i] = procedure.Code
	}

	payload := map[string]interface{}{
		"nomor_sep":   claim.SEPNumber,
		"nomor_kartu": claim.PatientCardNumber,
		"diagnosa":    diagnoses,
		"procedure":   procedures,
	}

	var result responses.GrouperResponse
	if err := c.call(ctx, constvars.MethodPost, constvars.VClaimPathGrouperStage1, payload, &result); err != nil {
		return nil, err
	}

	return &models.GroupingResult{
		CMGCode:       result.CMGCode,
		Description:   result.Description,
		Tariff:        result.Tariff,
		GrouperEngine: claim.GrouperEngine,
	}, nil
}

func (c *vclaimClient) FinalizeClaim(ctx context.Context, claim *models.Claim) error {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("vclaimClient.FinalizeClaim called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClaimNumberKey, claim.ClaimNumber),
	)

	payload := map[string]interface{}{"nomor_sep": claim.SEPNumber}
	return c.call(ctx, constvars.MethodPost, constvars.VClaimPathClaimFinal, payload, nil)
}

func (c *vclaimClient) SubmitClaim(ctx context.Context, claim *models.Claim) error {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("vclaimClient.SubmitClaim called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClaimNumberKey, claim.ClaimNumber),
	)

	payload := map[string]interface{}{"nomor_sep": claim.SEPNumber}
	return c.call(ctx, constvars.MethodPost, constvars.VClaimPathClaimSend, payload, nil)
}

func (c *vclaimClient) ValidateHistoryAccess(ctx context.Context, cardNumber string, doctorCode int) (*models.HistoryAccessGrant, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("vclaimClient.ValidateHistoryAccess called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCardNumberMaskKey, utils.MaskCardNumber(cardNumber)),
	)

	payload := map[string]interface{}{
		"param":      cardNumber,
		"kodedokter": doctorCode,
	}

	var result responses.HistoryValidateResponse
	if err := c.call(ctx, constvars.MethodPost, constvars.VClaimPathHistoryValidate, payload, &result); err != nil {
		return nil, err
	}

	return &models.HistoryAccessGrant{
		CardNumber:  cardNumber,
		DoctorCode:  doctorCode,
		URL:         result.URL,
		AccessToken: ExtractURLToken(result.URL),
		ExpiresAt:   time.Now().Add(historyAccessValidity),
	}, nil
}

func (c *vclaimClient) call(ctx context.Context, method, path string, body, out interface{}) error {
	limiterOut, err := c.limiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
		ResourceName:      c.signer.Credential().FacilityCode,
		LimiterGroupName:  constvars.RedisKeyVClaimThrottleGroup,
		WindowDurationSec: 60,
		MaxQuota:          c.internalConfig.BPJS.MaxCallsPerMinute,
	})
	if err != nil {
		return err
	}
	if !limiterOut.Allowed {
		return exceptions.ErrBPJSRateLimited(nil, time.Duration(limiterOut.RetryAfterSecs)*time.Second)
	}

	headers, err := c.signer.Sign(time.Now())
	if err != nil {
		return err
	}

	var requestBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		requestBody = bytes.NewReader(payload)
	}

	callCtx, cancel := context.WithTimeout(ctx, time.Duration(c.internalConfig.BPJS.RequestTimeoutSeconds)*time.Second)
	defer cancel()

	request, err := http.NewRequestWithContext(callCtx, method, c.internalConfig.BPJS.BaseURL+path, requestBody)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	request.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	request.Header.Set(constvars.HeaderBPJSConsumerID, headers.ConsumerID)
	request.Header.Set(constvars.HeaderBPJSTimestamp, headers.Timestamp)
	request.Header.Set(constvars.HeaderBPJSSignature, headers.Signature)
	if userKey := c.signer.Credential().UserKey; userKey != "" {
		request.Header.Set(constvars.HeaderBPJSUserKey, userKey)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return exceptions.ErrBPJSGatewayTimeout(err)
		}
		return exceptions.ErrBPJSSendRequest(err)
	}
	defer response.Body.Close()

	switch {
	case response.StatusCode == constvars.StatusUnauthorized:
		return exceptions.ErrBPJSUnauthorized(fmt.Errorf("http status %d", response.StatusCode))
	case response.StatusCode == constvars.StatusTooManyRequests:
		return exceptions.ErrBPJSRateLimited(
			fmt.Errorf("http status %d", response.StatusCode),
			parseRetryAfter(response.Header.Get(constvars.HeaderRetryAfter)),
		)
	case response.StatusCode >= constvars.StatusBadRequest:
		return exceptions.ErrBPJSGatewayStatus(fmt.Errorf("http status %d", response.StatusCode), response.StatusCode)
	}

	var envelope responses.VClaimEnvelope
	if err := json.NewDecoder(response.Body).Decode(&envelope); err != nil {
		return exceptions.ErrBPJSPayloadNotJSON(err)
	}

	switch envelope.MetaData.Code {
	case constvars.BPJSMetaCodeOK:
	case constvars.BPJSMetaCodeUnauthorized:
		return exceptions.ErrBPJSUnauthorized(fmt.Errorf("metaData %s: %s", envelope.MetaData.Code, envelope.MetaData.Message))
	case constvars.BPJSMetaCodeTooMany:
		return exceptions.ErrBPJSRateLimited(fmt.Errorf("metaData %s: %s", envelope.MetaData.Code, envelope.MetaData.Message), 0)
	default:
		return exceptions.ErrBPJSGatewayStatus(fmt.Errorf("metaData %s: %s", envelope.MetaData.Code, envelope.MetaData.Message), 0)
	}

	if out == nil || len(envelope.Response) == 0 {
		return nil
	}

	// Encrypted payloads arrive as a JSON string of base64 ciphertext; a few
	// endpoints return the response object in the clear.
	if envelope.Response[0] == '"' {
		var ciphertext string
		if err := json.Unmarshal(envelope.Response, &ciphertext); err != nil {
			return exceptions.ErrBPJSPayloadNotJSON(err)
		}
		credential := c.signer.Credential()
		return DecodeEnvelope(&models.EncryptedEnvelope{
			Ciphertext: ciphertext,
			ConsumerID: credential.ConsumerID,
			SecretKey:  credential.SecretKey,
			Timestamp:  headers.Timestamp,
		}, out)
	}

	if err := json.Unmarshal(envelope.Response, out); err != nil {
		return exceptions.ErrBPJSPayloadNotJSON(err)
	}
	return nil
}

func parseRetryAfter(headerValue string) time.Duration {
	seconds, err := strconv.Atoi(headerValue)
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
