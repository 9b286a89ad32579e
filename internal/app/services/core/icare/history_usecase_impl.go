package icare

import (
	"context"
	"simrs-service/internal/app/contracts"
	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/dto/requests"
	"simrs-service/internal/pkg/dto/responses"
	"simrs-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type historyAccessUsecase struct {
	VClaimGateway contracts.VClaimGateway
	Log           *zap.Logger
}

var (
	historyAccessUsecaseInstance contracts.HistoryAccessUsecase
	onceHistoryAccessUsecase     sync.Once
)

func NewHistoryAccessUsecase(vclaimGateway contracts.VClaimGateway, logger *zap.Logger) contracts.HistoryAccessUsecase {
	onceHistoryAccessUsecase.Do(func() {
		historyAccessUsecaseInstance = &historyAccessUsecase{
			VClaimGateway: vclaimGateway,
			Log:           logger,
		}
	})
	return historyAccessUsecaseInstance
}

// Validate asks VClaim for a patient-history access grant. The grant is
// returned to the caller and not stored; the card number never reaches the
// logs unmasked.
func (uc *historyAccessUsecase) Validate(ctx context.Context, request *requests.HistoryAccess) (*responses.HistoryAccess, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("historyAccessUsecase.Validate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCardNumberMaskKey, utils.MaskCardNumber(request.Param)),
		zap.String(constvars.LoggingAccessPurposeKey, request.Purpose),
	)

	grant, err := uc.VClaimGateway.ValidateHistoryAccess(ctx, request.Param, request.KodeDokter)
	if err != nil {
		uc.Log.Error("historyAccessUsecase.Validate gateway error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("historyAccessUsecase.Validate grant issued",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCardNumberMaskKey, utils.MaskCardNumber(request.Param)),
		zap.String("requested_by", request.RequestedBy),
		zap.String("request_ip", request.RequestIP),
		zap.Time(constvars.LoggingTokenExpiresAtKey, grant.ExpiresAt),
	)

	return &responses.HistoryAccess{
		URL:       grant.URL,
		Token:     grant.AccessToken,
		ExpiresAt: grant.ExpiresAt,
	}, nil
}
