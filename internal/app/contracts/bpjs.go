package contracts

import (
	"context"
	"simrs-service/internal/app/models"
)

// VClaimGateway is the outbound boundary to the BPJS VClaim API. Implementations
// sign requests, enforce call timeouts, and decode encrypted payloads; they
// never retry.
type VClaimGateway interface {
	ExecuteGrouper(ctx context.Context, claim *models.Claim) (*models.GroupingResult, error)
	FinalizeClaim(ctx context.Context, claim *models.Claim) error
	SubmitClaim(ctx context.Context, claim *models.Claim) error
	ValidateHistoryAccess(ctx context.Context, cardNumber string, doctorCode int) (*models.HistoryAccessGrant, error)
}
