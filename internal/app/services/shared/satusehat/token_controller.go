package satusehat

import (
	"context"
	"errors"
	"net/http"
	"simrs-service/internal/app/config"
	"simrs-service/internal/app/contracts"
	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/dto/responses"
	"simrs-service/internal/pkg/exceptions"
	"simrs-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

// TokenController exposes the cached exchange token to authenticated
// back-office modules so client credentials stay inside this service.
type TokenController struct {
	Log            *zap.Logger
	TokenProvider  contracts.SatusehatTokenProvider
	InternalConfig *config.InternalConfig
}

var (
	tokenControllerInstance *TokenController
	onceTokenController     sync.Once
)

func NewTokenController(logger *zap.Logger, tokenProvider contracts.SatusehatTokenProvider, internalConfig *config.InternalConfig) *TokenController {
	onceTokenController.Do(func() {
		tokenControllerInstance = &TokenController{
			Log:            logger,
			TokenProvider:  tokenProvider,
			InternalConfig: internalConfig,
		}
	})
	return tokenControllerInstance
}

func (ctrl *TokenController) GetToken(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	facility := ctrl.InternalConfig.BPJS.FacilityCode
	environment := ctrl.InternalConfig.Satusehat.Environment

	token, err := ctrl.TokenProvider.GetToken(ctx, facility, environment)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTokenSuccessMessage, &responses.SatusehatToken{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresAt:   token.ExpiresAt,
		Environment: token.Environment,
	})
}

// InvalidateToken forces a refresh on the next GetToken. Back-office modules
// call it after the FHIR exchange rejects a token that looked fresh locally.
func (ctrl *TokenController) InvalidateToken(w http.ResponseWriter, r *http.Request) {
	ctrl.TokenProvider.Invalidate(ctrl.InternalConfig.BPJS.FacilityCode, ctrl.InternalConfig.Satusehat.Environment)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.InvalidateTokenSuccessMessage, nil)
}
