package contracts

import (
	"context"
	"simrs-service/internal/app/models"
)

// SITBQueueService hands tuberculosis claims to the external SITB reporting
// pipeline. Completion comes back later through the callback endpoint.
type SITBQueueService interface {
	PublishSubmission(ctx context.Context, claim *models.Claim) error
}
