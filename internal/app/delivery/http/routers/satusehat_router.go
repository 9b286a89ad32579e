package routers

import (
	"simrs-service/internal/app/delivery/http/middlewares"
	"simrs-service/internal/app/services/shared/satusehat"

	"github.com/go-chi/chi/v5"
)

func attachSatusehatRoutes(router chi.Router, m *middlewares.Middlewares, tokenController *satusehat.TokenController) {
	router.Group(func(r chi.Router) {
		r.Use(m.SessionAuth)

		r.Get("/token", tokenController.GetToken)
		r.Post("/token/invalidate", tokenController.InvalidateToken)
	})
}
