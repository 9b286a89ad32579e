package contracts

import (
	"context"
	"simrs-service/internal/app/models"
)

// SatusehatTokenProvider manages OAuth2 access tokens for the FHIR exchange.
type SatusehatTokenProvider interface {
	GetToken(ctx context.Context, facility, environment string) (*models.TokenInfo, error)
	Invalidate(facility, environment string)
}
