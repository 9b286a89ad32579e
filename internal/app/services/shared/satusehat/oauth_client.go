package satusehat

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"simrs-service/internal/app/config"
	"simrs-service/internal/app/models"
	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/exceptions"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// OAuthClient performs the client-credentials exchange against the SATUSEHAT
// authorization server. It holds no token state; TokenCache does.
type OAuthClient struct {
	internalConfig *config.InternalConfig
	httpClient     *http.Client
	Log            *zap.Logger
}

func NewOAuthClient(internalConfig *config.InternalConfig, logger *zap.Logger) *OAuthClient {
	return &OAuthClient{
		internalConfig: internalConfig,
		httpClient: &http.Client{
			Timeout: time.Duration(internalConfig.Satusehat.RequestTimeoutSeconds) * time.Second,
		},
		Log: logger,
	}
}

func (c *OAuthClient) Exchange(ctx context.Context, credential models.SatusehatCredential) (*models.TokenInfo, error) {
	if credential.ClientID == "" {
		return nil, exceptions.ErrSatusehatCredentialIncomplete("client_id")
	}
	if credential.ClientSecret == "" {
		return nil, exceptions.ErrSatusehatCredentialIncomplete("client_secret")
	}

	form := url.Values{}
	form.Set("client_id", credential.ClientID)
	form.Set("client_secret", credential.ClientSecret)

	callCtx, cancel := context.WithTimeout(ctx, time.Duration(c.internalConfig.Satusehat.RequestTimeoutSeconds)*time.Second)
	defer cancel()

	endpoint := c.internalConfig.Satusehat.AuthBaseURL + constvars.SatusehatPathAccessToken
	request, err := http.NewRequestWithContext(callCtx, constvars.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	request.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)

	response, err := c.httpClient.Do(request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, exceptions.ErrSatusehatTokenTimeout(err)
		}
		return nil, exceptions.ErrSatusehatTokenRequest(err)
	}
	defer response.Body.Close()

	switch {
	case response.StatusCode == constvars.StatusUnauthorized || response.StatusCode == constvars.StatusForbidden:
		return nil, exceptions.ErrSatusehatTokenRejected(fmt.Errorf("http status %d", response.StatusCode))
	case response.StatusCode == constvars.StatusTooManyRequests:
		return nil, exceptions.ErrSatusehatRateLimited(
			fmt.Errorf("http status %d", response.StatusCode),
			parseRetryAfterHeader(response.Header.Get(constvars.HeaderRetryAfter)),
		)
	case response.StatusCode >= constvars.StatusBadRequest:
		return nil, exceptions.ErrSatusehatTokenRequest(fmt.Errorf("http status %d", response.StatusCode))
	}

	var payload fhirParameters
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return nil, exceptions.ErrSatusehatTokenParse(err)
	}

	accessToken := payload.stringValue(constvars.SatusehatParamAccessToken)
	if accessToken == "" {
		return nil, exceptions.ErrSatusehatTokenIncomplete()
	}
	tokenType := payload.stringValue(constvars.SatusehatParamTokenType)

	// expires_in falls back to 3599, the lifetime the platform reports when it
	// does include the parameter.
	expiresIn, ok := payload.intValue(constvars.SatusehatParamExpiresIn)
	if !ok {
		expiresIn = constvars.SatusehatDefaultExpiresInSeconds
	}

	issuedAt := time.Now()
	if issuedAtMillis, ok := payload.intValue(constvars.SatusehatParamIssuedAt); ok && issuedAtMillis > 0 {
		issuedAt = time.UnixMilli(int64(issuedAtMillis))
	}

	return &models.TokenInfo{
		AccessToken: accessToken,
		TokenType:   tokenType,
		IssuedAt:    issuedAt,
		ExpiresAt:   issuedAt.Add(time.Duration(expiresIn) * time.Second),
		Facility:    credential.FacilityCode,
		Environment: credential.Environment,
	}, nil
}

// fhirParameters is the name/value list SATUSEHAT uses for non-resource
// payloads such as token responses.
type fhirParameters struct {
	ResourceType string          `json:"resourceType"`
	Parameter    []fhirParameter `json:"parameter"`
}

type fhirParameter struct {
	Name         string `json:"name"`
	ValueString  string `json:"valueString,omitempty"`
	ValueInteger *int   `json:"valueInteger,omitempty"`
}

func (p fhirParameters) stringValue(name string) string {
	for _, parameter := range p.Parameter {
		if parameter.Name == name {
			return parameter.ValueString
		}
	}
	return ""
}

// intValue accepts both valueInteger and numeric valueString entries; the
// sandbox and production environments disagree on which one they send.
func (p fhirParameters) intValue(name string) (int, bool) {
	for _, parameter := range p.Parameter {
		if parameter.Name != name {
			continue
		}
		if parameter.ValueInteger != nil {
			return *parameter.ValueInteger, true
		}
		if parsed, err := strconv.Atoi(parameter.ValueString); err == nil {
			return parsed, true
		}
		return 0, false
	}
	return 0, false
}

func parseRetryAfterHeader(headerValue string) time.Duration {
	seconds, err := strconv.Atoi(headerValue)
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
