package contracts

import (
	"context"
	"io"
	"simrs-service/internal/app/models"
	"simrs-service/internal/pkg/dto/requests"
	"simrs-service/internal/pkg/dto/responses"
)

type ClaimRepository interface {
	Create(ctx context.Context, claim *models.Claim) (string, error)
	FindByClaimNumber(ctx context.Context, claimNumber string) (*models.Claim, error)
	ExistsActiveBySEP(ctx context.Context, sepNumber string) (bool, error)
	Update(ctx context.Context, claim *models.Claim) error
	Delete(ctx context.Context, claimNumber string) error
}

type ClaimUsecase interface {
	CreateDraft(ctx context.Context, request *requests.CreateClaim) (*responses.Claim, error)
	FindByClaimNumber(ctx context.Context, claimNumber string) (*responses.Claim, error)
	SetClinicalData(ctx context.Context, claimNumber string, request *requests.SetClaimData) (*responses.Claim, error)
	AttachCoding(ctx context.Context, claimNumber string, request *requests.AttachCoding) (*responses.Claim, error)
	ExecuteGrouper(ctx context.Context, claimNumber string, request *requests.ExecuteGrouper) (*responses.Claim, error)
	Finalize(ctx context.Context, claimNumber string) (*responses.Claim, error)
	Submit(ctx context.Context, claimNumber string) (*responses.Claim, error)
	Verify(ctx context.Context, claimNumber string) (*responses.Claim, error)
	Cancel(ctx context.Context, claimNumber string) (*responses.Claim, error)
	Delete(ctx context.Context, claimNumber string) error
	CompleteSpecialCase(ctx context.Context, claimNumber string) (*responses.Claim, error)
	UploadDocumentBundle(ctx context.Context, claimNumber, fileName, contentType string, file io.Reader, size int64) (*responses.Claim, error)
	GetDocumentBundleURL(ctx context.Context, claimNumber string) (*responses.ClaimDocument, error)
}
