package routers

import (
	"simrs-service/internal/app/delivery/http/middlewares"
	"simrs-service/internal/app/services/core/claims"
	"time"

	"github.com/go-chi/chi/v5"
)

func attachClaimRoutes(router chi.Router, m *middlewares.Middlewares, claimController *claims.ClaimController) {
	router.Group(func(r chi.Router) {
		r.Use(m.SessionAuth)

		r.Post("/", claimController.CreateDraft)
		r.Get("/{claim_number}", claimController.Find)
		r.Delete("/{claim_number}", claimController.Delete)

		r.Put("/{claim_number}/data", claimController.SetClinicalData)
		r.Put("/{claim_number}/coding", claimController.AttachCoding)
		r.Post("/{claim_number}/grouper", claimController.ExecuteGrouper)
		r.Post("/{claim_number}/finalize", claimController.Finalize)
		r.Post("/{claim_number}/submit", claimController.Submit)
		r.Post("/{claim_number}/verify", claimController.Verify)
		r.Post("/{claim_number}/cancel", claimController.Cancel)
		r.Post("/{claim_number}/documents", claimController.UploadDocumentBundle)
		r.Get("/{claim_number}/documents", claimController.GetDocumentBundleURL)
	})

	// SITB reporting pipeline calls back with a pre-shared key, not a session.
	router.Group(func(r chi.Router) {
		callbackLimiter := middlewares.NewRateLimiter(5, time.Second, 5*time.Minute)
		r.Use(callbackLimiter.Limit)
		r.Use(m.SITBCallbackAuth)

		r.Post("/{claim_number}/sitb-complete", claimController.CompleteSpecialCase)
	})
}
