package middlewares

import (
	"net/http"
	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/exceptions"
	"simrs-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const HeaderAPIKey = "x-api-key"

// SITBCallbackAuth guards the tuberculosis-reporting callback. The external
// pipeline authenticates with a pre-shared key; only its bcrypt hash lives in
// configuration.
func (m *Middlewares) SITBCallbackAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(HeaderAPIKey)
		if apiKey == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		if !utils.CheckAPIKeyHash(apiKey, m.InternalConfig.App.SITBAPIKeyHash) {
			m.Log.Warn("SITB callback rejected: bad api key",
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
