package icare

import (
	"context"
	"errors"
	"net/http"
	"simrs-service/internal/app/contracts"
	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/dto/requests"
	"simrs-service/internal/pkg/exceptions"
	"simrs-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type HistoryController struct {
	Log                  *zap.Logger
	HistoryAccessUsecase contracts.HistoryAccessUsecase
}

var (
	historyControllerInstance *HistoryController
	onceHistoryController     sync.Once
)

func NewHistoryController(logger *zap.Logger, historyAccessUsecase contracts.HistoryAccessUsecase) *HistoryController {
	onceHistoryController.Do(func() {
		historyControllerInstance = &HistoryController{
			Log:                  logger,
			HistoryAccessUsecase: historyAccessUsecase,
		}
	})
	return historyControllerInstance
}

func (ctrl *HistoryController) Validate(w http.ResponseWriter, r *http.Request) {
	request := new(requests.HistoryAccess)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	// Audit fields come from the authenticated session and transport, never
	// from the request body.
	if sessionID, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string); ok {
		request.RequestedBy = sessionID
	}
	request.RequestIP = utils.ClientIPFromRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.HistoryAccessUsecase.Validate(ctx, request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HistoryAccessSuccessMessage, result)
}
