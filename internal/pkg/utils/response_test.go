package utils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/dto/responses"
	"simrs-service/internal/pkg/exceptions"
)

func decodeErrorBody(t *testing.T, recorder *httptest.ResponseRecorder) responses.ErrorDTO {
	t.Helper()
	var body responses.ErrorDTO
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestBuildErrorResponse(t *testing.T) {
	t.Run("serializes the custom error with its dev message outside production", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		recorder := httptest.NewRecorder()

		BuildErrorResponse(zap.NewNop(), recorder, exceptions.ErrClaimNotFound("CLM-202608-00001"))

		assert.Equal(t, constvars.StatusNotFound, recorder.Code)
		body := decodeErrorBody(t, recorder)
		assert.Equal(t, constvars.StatusNotFound, body.StatusCode)
		assert.False(t, body.Success)
		assert.Equal(t, string(exceptions.KindRepository), body.Kind)
		assert.Contains(t, body.DevMessage, "CLM-202608-00001")
	})

	t.Run("hides the dev message in production", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		recorder := httptest.NewRecorder()

		BuildErrorResponse(zap.NewNop(), recorder, exceptions.ErrClaimNotFound("CLM-202608-00001"))

		body := decodeErrorBody(t, recorder)
		assert.Empty(t, body.DevMessage)
		assert.NotEmpty(t, body.Message)
	})

	t.Run("falls back to a generic 500 for foreign errors", func(t *testing.T) {
		recorder := httptest.NewRecorder()

		BuildErrorResponse(zap.NewNop(), recorder, assert.AnError)

		assert.Equal(t, constvars.StatusInternalServerError, recorder.Code)
		body := decodeErrorBody(t, recorder)
		assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, body.Message)
	})

	t.Run("sets Retry-After for rate-limit errors carrying a hint", func(t *testing.T) {
		recorder := httptest.NewRecorder()

		BuildErrorResponse(zap.NewNop(), recorder, exceptions.ErrBPJSRateLimited(nil, 30*time.Second))

		assert.Equal(t, constvars.StatusTooManyRequests, recorder.Code)
		assert.Equal(t, "30", recorder.Header().Get(constvars.HeaderRetryAfter))
	})
}
