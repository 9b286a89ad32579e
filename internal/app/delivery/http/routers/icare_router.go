package routers

import (
	"simrs-service/internal/app/delivery/http/middlewares"
	"simrs-service/internal/app/services/core/icare"

	"github.com/go-chi/chi/v5"
)

func attachHistoryRoutes(router chi.Router, m *middlewares.Middlewares, historyController *icare.HistoryController) {
	router.Group(func(r chi.Router) {
		r.Use(m.SessionAuth)

		r.Post("/history/validate", historyController.Validate)
	})
}
