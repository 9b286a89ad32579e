package satusehat

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"simrs-service/internal/app/config"
	"simrs-service/internal/app/models"
	"simrs-service/internal/pkg/exceptions"
)

func oauthTestClient(serverURL string) *OAuthClient {
	cfg := &config.InternalConfig{}
	cfg.Satusehat.AuthBaseURL = serverURL
	cfg.Satusehat.RequestTimeoutSeconds = 5
	return NewOAuthClient(cfg, zap.NewNop())
}

func testCredential() models.SatusehatCredential {
	return models.SatusehatCredential{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		FacilityCode: "0001",
		Environment:  "production",
	}
}

func TestOAuthClientExchange(t *testing.T) {
	t.Run("parses a parameter-list token response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "client-id", r.PostForm.Get("client_id"))
			assert.Equal(t, "client-secret", r.PostForm.Get("client_secret"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"resourceType": "Parameters",
				"parameter": [
					{"name": "access_token", "valueString": "the-token"},
					{"name": "token_type", "valueString": "Bearer"},
					{"name": "expires_in", "valueInteger": 3599},
					{"name": "issued_at", "valueString": "1756600000000"}
				]
			}`))
		}))
		defer server.Close()

		token, err := oauthTestClient(server.URL).Exchange(context.Background(), testCredential())
		require.NoError(t, err)

		assert.Equal(t, "the-token", token.AccessToken)
		assert.Equal(t, "Bearer", token.TokenType)
		assert.Equal(t, time.UnixMilli(1756600000000), token.IssuedAt)
		assert.Equal(t, token.IssuedAt.Add(3599*time.Second), token.ExpiresAt)
		assert.Equal(t, "0001", token.Facility)
		assert.Equal(t, "production", token.Environment)
	})

	t.Run("accepts expires_in sent as a string value", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{
				"resourceType": "Parameters",
				"parameter": [
					{"name": "access_token", "valueString": "the-token"},
					{"name": "expires_in", "valueString": "1800"}
				]
			}`))
		}))
		defer server.Close()

		token, err := oauthTestClient(server.URL).Exchange(context.Background(), testCredential())
		require.NoError(t, err)
		assert.Equal(t, token.IssuedAt.Add(1800*time.Second), token.ExpiresAt)
	})

	t.Run("defaults the lifetime when expires_in is absent", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{
				"resourceType": "Parameters",
				"parameter": [
					{"name": "access_token", "valueString": "the-token"}
				]
			}`))
		}))
		defer server.Close()

		token, err := oauthTestClient(server.URL).Exchange(context.Background(), testCredential())
		require.NoError(t, err)
		assert.Equal(t, token.IssuedAt.Add(3599*time.Second), token.ExpiresAt)
	})

	t.Run("rejects a response without an access token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"resourceType": "Parameters", "parameter": [{"name": "token_type", "valueString": "Bearer"}]}`))
		}))
		defer server.Close()

		_, err := oauthTestClient(server.URL).Exchange(context.Background(), testCredential())
		require.Error(t, err)
		assert.Equal(t, exceptions.KindAuthentication, exceptions.KindOf(err))
	})

	t.Run("maps a 401 to a rejected-credentials error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		_, err := oauthTestClient(server.URL).Exchange(context.Background(), testCredential())
		require.Error(t, err)
		assert.Equal(t, exceptions.KindAuthentication, exceptions.KindOf(err))
	})

	t.Run("carries the Retry-After hint on a 429", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Retry-After", "30")
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		_, err := oauthTestClient(server.URL).Exchange(context.Background(), testCredential())
		require.Error(t, err)
		assert.Equal(t, exceptions.KindRateLimit, exceptions.KindOf(err))

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 30*time.Second, customErr.RetryAfter)
	})

	t.Run("refuses to call out with incomplete credentials", func(t *testing.T) {
		credential := testCredential()
		credential.ClientSecret = ""

		_, err := oauthTestClient("http://127.0.0.1:0").Exchange(context.Background(), credential)
		require.Error(t, err)
		assert.Equal(t, exceptions.KindConfiguration, exceptions.KindOf(err))
	})
}
