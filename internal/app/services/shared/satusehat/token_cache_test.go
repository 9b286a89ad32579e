package satusehat

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"simrs-service/internal/app/config"
	"simrs-service/internal/app/models"
	"simrs-service/internal/pkg/exceptions"
)

type fakeExchanger struct {
	mu       sync.Mutex
	calls    int
	token    *models.TokenInfo
	err      error
	lastCred models.SatusehatCredential
}

func (f *fakeExchanger) Exchange(_ context.Context, credential models.SatusehatCredential) (*models.TokenInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastCred = credential
	if f.err != nil {
		return nil, f.err
	}
	token := *f.token
	token.AccessToken = fmt.Sprintf("%s-%d", f.token.AccessToken, f.calls)
	return &token, nil
}

func (f *fakeExchanger) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func freshToken() *models.TokenInfo {
	now := time.Now()
	return &models.TokenInfo{
		AccessToken: "tok",
		TokenType:   "Bearer",
		IssuedAt:    now,
		ExpiresAt:   now.Add(time.Hour),
		Facility:    "0001",
		Environment: "production",
	}
}

func cacheConfig() *config.InternalConfig {
	cfg := &config.InternalConfig{}
	cfg.Satusehat.ClientID = "client-id"
	cfg.Satusehat.ClientSecret = "client-secret"
	return cfg
}

func TestTokenCacheGetToken(t *testing.T) {
	t.Run("serves the cached token without a second exchange", func(t *testing.T) {
		exchanger := &fakeExchanger{token: freshToken()}
		cache := NewTokenCache(cacheConfig(), exchanger, zap.NewNop())

		first, err := cache.GetToken(context.Background(), "0001", "production")
		require.NoError(t, err)
		second, err := cache.GetToken(context.Background(), "0001", "production")
		require.NoError(t, err)

		assert.Equal(t, first.AccessToken, second.AccessToken)
		assert.Equal(t, 1, exchanger.callCount())
	})

	t.Run("passes the configured credentials to the exchange", func(t *testing.T) {
		exchanger := &fakeExchanger{token: freshToken()}
		cache := NewTokenCache(cacheConfig(), exchanger, zap.NewNop())

		_, err := cache.GetToken(context.Background(), "0001", "staging")
		require.NoError(t, err)

		assert.Equal(t, "client-id", exchanger.lastCred.ClientID)
		assert.Equal(t, "client-secret", exchanger.lastCred.ClientSecret)
		assert.Equal(t, "0001", exchanger.lastCred.FacilityCode)
		assert.Equal(t, "staging", exchanger.lastCred.Environment)
	})

	t.Run("keeps tokens separate per facility and environment", func(t *testing.T) {
		exchanger := &fakeExchanger{token: freshToken()}
		cache := NewTokenCache(cacheConfig(), exchanger, zap.NewNop())

		_, err := cache.GetToken(context.Background(), "0001", "production")
		require.NoError(t, err)
		_, err = cache.GetToken(context.Background(), "0001", "staging")
		require.NoError(t, err)
		_, err = cache.GetToken(context.Background(), "0002", "production")
		require.NoError(t, err)

		assert.Equal(t, 3, exchanger.callCount())
	})

	t.Run("collapses concurrent refreshes into one exchange", func(t *testing.T) {
		exchanger := &fakeExchanger{token: freshToken()}
		cache := NewTokenCache(cacheConfig(), exchanger, zap.NewNop())

		const workers = 16
		var wg sync.WaitGroup
		tokens := make([]*models.TokenInfo, workers)
		errs := make([]error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				tokens[i], errs[i] = cache.GetToken(context.Background(), "0001", "production")
			}(i)
		}
		wg.Wait()

		for i := 0; i < workers; i++ {
			require.NoError(t, errs[i])
			assert.Equal(t, tokens[0].AccessToken, tokens[i].AccessToken)
		}
		assert.Equal(t, 1, exchanger.callCount())
	})

	t.Run("refreshes a token inside the expiry margin", func(t *testing.T) {
		nearExpiry := freshToken()
		nearExpiry.ExpiresAt = time.Now().Add(models.TokenExpiryMargin - time.Second)
		exchanger := &fakeExchanger{token: nearExpiry}
		cache := NewTokenCache(cacheConfig(), exchanger, zap.NewNop())

		_, err := cache.GetToken(context.Background(), "0001", "production")
		require.NoError(t, err)
		_, err = cache.GetToken(context.Background(), "0001", "production")
		require.NoError(t, err)

		assert.Equal(t, 2, exchanger.callCount())
	})

	t.Run("propagates exchange failures without caching them", func(t *testing.T) {
		exchanger := &fakeExchanger{err: exceptions.ErrSatusehatTokenRejected(nil)}
		cache := NewTokenCache(cacheConfig(), exchanger, zap.NewNop())

		_, err := cache.GetToken(context.Background(), "0001", "production")
		require.Error(t, err)
		assert.Equal(t, exceptions.KindAuthentication, exceptions.KindOf(err))

		exchanger.mu.Lock()
		exchanger.err = nil
		exchanger.token = freshToken()
		exchanger.mu.Unlock()

		token, err := cache.GetToken(context.Background(), "0001", "production")
		require.NoError(t, err)
		assert.NotEmpty(t, token.AccessToken)
	})
}

func TestTokenCacheInvalidate(t *testing.T) {
	exchanger := &fakeExchanger{token: freshToken()}
	cache := NewTokenCache(cacheConfig(), exchanger, zap.NewNop())

	first, err := cache.GetToken(context.Background(), "0001", "production")
	require.NoError(t, err)

	cache.Invalidate("0001", "production")

	second, err := cache.GetToken(context.Background(), "0001", "production")
	require.NoError(t, err)

	assert.NotEqual(t, first.AccessToken, second.AccessToken)
	assert.Equal(t, 2, exchanger.callCount())
}
