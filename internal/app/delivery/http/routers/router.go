package routers

import (
	"fmt"
	"simrs-service/internal/app/config"
	"simrs-service/internal/app/delivery/http/middlewares"
	"simrs-service/internal/app/services/core/claims"
	"simrs-service/internal/app/services/core/icare"
	"simrs-service/internal/app/services/shared/satusehat"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	claimController *claims.ClaimController,
	historyController *icare.HistoryController,
	tokenController *satusehat.TokenController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.LocaleMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/claims", func(r chi.Router) {
				attachClaimRoutes(r, middlewares, claimController)
			})

			r.Route("/icare", func(r chi.Router) {
				attachHistoryRoutes(r, middlewares, historyController)
			})

			r.Route("/satusehat", func(r chi.Router) {
				attachSatusehatRoutes(r, middlewares, tokenController)
			})
		})
	})
}
