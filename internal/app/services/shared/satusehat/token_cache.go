package satusehat

import (
	"context"
	"simrs-service/internal/app/config"
	"simrs-service/internal/app/contracts"
	"simrs-service/internal/app/models"
	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type tokenExchanger interface {
	Exchange(ctx context.Context, credential models.SatusehatCredential) (*models.TokenInfo, error)
}

// TokenCache caches one token per (facility, environment) and collapses
// concurrent refreshes for the same key into a single exchange.
type TokenCache struct {
	internalConfig *config.InternalConfig
	client         tokenExchanger
	group          singleflight.Group
	mu             sync.RWMutex
	tokens         map[string]*models.TokenInfo
	Log            *zap.Logger
}

func NewTokenCache(internalConfig *config.InternalConfig, client tokenExchanger, logger *zap.Logger) contracts.SatusehatTokenProvider {
	return &TokenCache{
		internalConfig: internalConfig,
		client:         client,
		tokens:         make(map[string]*models.TokenInfo),
		Log:            logger,
	}
}

func (c *TokenCache) GetToken(ctx context.Context, facility, environment string) (*models.TokenInfo, error) {
	key := cacheKey(facility, environment)

	c.mu.RLock()
	cached := c.tokens[key]
	c.mu.RUnlock()
	if cached.IsValid() && !cached.IsExpired() {
		return cached, nil
	}

	result, err, _ := c.group.Do(key, func() (interface{}, error) {
		// A concurrent caller may have refreshed while we waited on the group.
		c.mu.RLock()
		current := c.tokens[key]
		c.mu.RUnlock()
		if current.IsValid() && !current.IsExpired() {
			return current, nil
		}

		c.Log.Info("TokenCache refreshing access token",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingFacilityCodeKey, facility),
			zap.String(constvars.LoggingEnvironmentKey, environment),
		)

		token, err := c.client.Exchange(ctx, models.SatusehatCredential{
			ClientID:     c.internalConfig.Satusehat.ClientID,
			ClientSecret: c.internalConfig.Satusehat.ClientSecret,
			FacilityCode: facility,
			Environment:  environment,
		})
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.tokens[key] = token
		c.mu.Unlock()
		return token, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.TokenInfo), nil
}

// Invalidate drops the cached token so the next GetToken forces a refresh.
// Callers use it after the FHIR exchange answers 401 with a token that looked
// fresh locally.
func (c *TokenCache) Invalidate(facility, environment string) {
	key := cacheKey(facility, environment)
	c.mu.Lock()
	delete(c.tokens, key)
	c.mu.Unlock()
	c.group.Forget(key)
}

func cacheKey(facility, environment string) string {
	return facility + "|" + environment
}
