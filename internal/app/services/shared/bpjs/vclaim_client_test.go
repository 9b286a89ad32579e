package bpjs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"simrs-service/internal/app/config"
	"simrs-service/internal/app/contracts"
	"simrs-service/internal/app/models"
	"simrs-service/internal/app/services/shared/ratelimiter"
	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/exceptions"
)

type fakeRedisRepository struct {
	mu     sync.Mutex
	counts map[string]int64
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{counts: make(map[string]int64)}
}

func (f *fakeRedisRepository) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.counts, key)
	return nil
}

func (f *fakeRedisRepository) Set(_ context.Context, _ string, _ interface{}, _ time.Duration) error {
	return nil
}

func (f *fakeRedisRepository) Get(_ context.Context, _ string) (string, error) {
	return "", nil
}

func (f *fakeRedisRepository) Increment(_ context.Context, key string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[key]++
	return f.counts[key], nil
}

func (f *fakeRedisRepository) IncrementWithTTL(_ context.Context, key string, _ time.Duration) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[key]++
	return f.counts[key], nil
}

func (f *fakeRedisRepository) TrySetNX(_ context.Context, _ string, _ interface{}, _ time.Duration) (bool, error) {
	return true, nil
}

func newTestGateway(t *testing.T, serverURL string, maxCallsPerMinute int) contracts.VClaimGateway {
	t.Helper()

	cfg := &config.InternalConfig{}
	cfg.BPJS.BaseURL = serverURL
	cfg.BPJS.RequestTimeoutSeconds = 5
	cfg.BPJS.MaxCallsPerMinute = maxCallsPerMinute

	signer, err := NewSigner(testCredential(), 300*time.Second)
	require.NoError(t, err)

	limiter := ratelimiter.NewResourceLimiter(newFakeRedisRepository(), zap.NewNop())
	return NewVClaimClient(cfg, signer, limiter, zap.NewNop())
}

func groupedClaim() *models.Claim {
	return &models.Claim{
		ClaimNumber:       "CLM-202608-00001",
		SEPNumber:         "0301R0011023V000001",
		PatientCardNumber: "0001234567890",
		GrouperEngine:     "inacbg-5",
		Diagnoses:         []models.Diagnosis{{Code: "A15.0", IsPrimary: true}},
		Procedures:        []models.Procedure{{Code: "87.44"}},
	}
}

func TestVClaimClientExecuteGrouper(t *testing.T) {
	t.Run("signs the request and decodes the encrypted response", func(t *testing.T) {
		credential := testCredential()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, credential.ConsumerID, r.Header.Get(constvars.HeaderBPJSConsumerID))
			assert.Equal(t, credential.UserKey, r.Header.Get(constvars.HeaderBPJSUserKey))
			assert.NotEmpty(t, r.Header.Get(constvars.HeaderBPJSSignature))
			timestamp := r.Header.Get(constvars.HeaderBPJSTimestamp)
			require.NotEmpty(t, timestamp)

			var payload map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "0301R0011023V000001", payload["nomor_sep"])
			assert.Equal(t, "0001234567890", payload["nomor_kartu"])

			ciphertext := encryptEnvelope(t,
				`{"code_cbg":"I-4-10-I","description":"Pulmonary tuberculosis","tariff":4250000}`,
				credential.ConsumerID, credential.SecretKey, timestamp)
			envelope, err := json.Marshal(map[string]interface{}{
				"metaData": map[string]string{"code": "200", "message": "OK"},
				"response": ciphertext,
			})
			require.NoError(t, err)
			w.Write(envelope)
		}))
		defer server.Close()

		gateway := newTestGateway(t, server.URL, 10)
		result, err := gateway.ExecuteGrouper(context.Background(), groupedClaim())
		require.NoError(t, err)

		assert.Equal(t, "I-4-10-I", result.CMGCode)
		assert.Equal(t, "Pulmonary tuberculosis", result.Description)
		assert.Equal(t, float64(4250000), result.Tariff)
		assert.Equal(t, "inacbg-5", result.GrouperEngine)
	})

	t.Run("maps an error metaData code to a gateway error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"metaData":{"code":"201","message":"data tidak ditemukan"}}`))
		}))
		defer server.Close()

		gateway := newTestGateway(t, server.URL, 10)
		_, err := gateway.ExecuteGrouper(context.Background(), groupedClaim())
		require.Error(t, err)
		assert.Equal(t, exceptions.KindHTTP, exceptions.KindOf(err))
	})

	t.Run("maps a 401 metaData code to an authentication error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"metaData":{"code":"401","message":"signature tidak valid"}}`))
		}))
		defer server.Close()

		gateway := newTestGateway(t, server.URL, 10)
		_, err := gateway.ExecuteGrouper(context.Background(), groupedClaim())
		require.Error(t, err)
		assert.Equal(t, exceptions.KindAuthentication, exceptions.KindOf(err))
	})

	t.Run("carries the Retry-After hint on an HTTP 429", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set(constvars.HeaderRetryAfter, "42")
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		gateway := newTestGateway(t, server.URL, 10)
		_, err := gateway.ExecuteGrouper(context.Background(), groupedClaim())
		require.Error(t, err)
		assert.Equal(t, exceptions.KindRateLimit, exceptions.KindOf(err))

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 42*time.Second, customErr.RetryAfter)
	})

	t.Run("throttles outbound calls before they reach the gateway", func(t *testing.T) {
		var hits int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			hits++
			w.Write([]byte(`{"metaData":{"code":"200","message":"OK"},"response":{"code_cbg":"I-4-10-I","description":"","tariff":0}}`))
		}))
		defer server.Close()

		gateway := newTestGateway(t, server.URL, 1)
		_, err := gateway.ExecuteGrouper(context.Background(), groupedClaim())
		require.NoError(t, err)

		_, err = gateway.ExecuteGrouper(context.Background(), groupedClaim())
		require.Error(t, err)
		assert.Equal(t, exceptions.KindRateLimit, exceptions.KindOf(err))
		assert.Equal(t, 1, hits)
	})
}

func TestVClaimClientFinalizeClaim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "0301R0011023V000001", payload["nomor_sep"])
		w.Write([]byte(`{"metaData":{"code":"200","message":"OK"}}`))
	}))
	defer server.Close()

	gateway := newTestGateway(t, server.URL, 10)
	assert.NoError(t, gateway.FinalizeClaim(context.Background(), groupedClaim()))
}

func TestVClaimClientValidateHistoryAccess(t *testing.T) {
	t.Run("returns a grant with the token pulled from the URL", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var payload map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "0001234567890", payload["param"])
			assert.Equal(t, float64(12345), payload["kodedokter"])

			w.Write([]byte(`{"metaData":{"code":"200","message":"OK"},"response":{"url":"https://icare.bpjs-kesehatan.go.id/more/?token=eyJhbGciOi"}}`))
		}))
		defer server.Close()

		gateway := newTestGateway(t, server.URL, 10)
		before := time.Now()
		grant, err := gateway.ValidateHistoryAccess(context.Background(), "0001234567890", 12345)
		require.NoError(t, err)

		assert.Equal(t, "https://icare.bpjs-kesehatan.go.id/more/?token=eyJhbGciOi", grant.URL)
		assert.Equal(t, "eyJhbGciOi", grant.AccessToken)
		assert.Equal(t, 12345, grant.DoctorCode)
		assert.WithinDuration(t, before.Add(historyAccessValidity), grant.ExpiresAt, 5*time.Second)
	})

	t.Run("maps an unauthorized HTTP status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		gateway := newTestGateway(t, server.URL, 10)
		_, err := gateway.ValidateHistoryAccess(context.Background(), "0001234567890", 12345)
		require.Error(t, err)
		assert.Equal(t, exceptions.KindAuthentication, exceptions.KindOf(err))
	})
}
