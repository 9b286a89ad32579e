package claims

import (
	"context"
	"errors"
	"net/http"
	"simrs-service/internal/app/contracts"
	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/dto/requests"
	"simrs-service/internal/pkg/dto/responses"
	"simrs-service/internal/pkg/exceptions"
	"simrs-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	controllerTimeout      = 10 * time.Second
	maxDocumentBundleBytes = 32 << 20
)

type ClaimController struct {
	Log          *zap.Logger
	ClaimUsecase contracts.ClaimUsecase
}

var (
	claimControllerInstance *ClaimController
	onceClaimController     sync.Once
)

func NewClaimController(logger *zap.Logger, claimUsecase contracts.ClaimUsecase) *ClaimController {
	onceClaimController.Do(func() {
		claimControllerInstance = &ClaimController{
			Log:          logger,
			ClaimUsecase: claimUsecase,
		}
	})
	return claimControllerInstance
}

func (ctrl *ClaimController) CreateDraft(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateClaim)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	result, err := ctrl.ClaimUsecase.CreateDraft(ctx, request)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateClaimSuccessMessage, result)
}

func (ctrl *ClaimController) Find(w http.ResponseWriter, r *http.Request) {
	claimNumber := chi.URLParam(r, constvars.URLParamClaimNumber)
	if claimNumber == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamClaimNumber))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	result, err := ctrl.ClaimUsecase.FindByClaimNumber(ctx, claimNumber)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetClaimSuccessMessage, result)
}

func (ctrl *ClaimController) SetClinicalData(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SetClaimData)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	ctrl.transition(w, r, constvars.UpdateClaimSuccessMessage, func(ctx context.Context, claimNumber string) (*responses.Claim, error) {
		return ctrl.ClaimUsecase.SetClinicalData(ctx, claimNumber, request)
	})
}

func (ctrl *ClaimController) AttachCoding(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AttachCoding)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	ctrl.transition(w, r, constvars.UpdateClaimSuccessMessage, func(ctx context.Context, claimNumber string) (*responses.Claim, error) {
		return ctrl.ClaimUsecase.AttachCoding(ctx, claimNumber, request)
	})
}

func (ctrl *ClaimController) ExecuteGrouper(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ExecuteGrouper)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	ctrl.transition(w, r, constvars.GrouperClaimSuccessMessage, func(ctx context.Context, claimNumber string) (*responses.Claim, error) {
		return ctrl.ClaimUsecase.ExecuteGrouper(ctx, claimNumber, request)
	})
}

func (ctrl *ClaimController) Finalize(w http.ResponseWriter, r *http.Request) {
	ctrl.transition(w, r, constvars.FinalizeClaimSuccessMessage, ctrl.ClaimUsecase.Finalize)
}

func (ctrl *ClaimController) Submit(w http.ResponseWriter, r *http.Request) {
	ctrl.transition(w, r, constvars.SubmitClaimSuccessMessage, ctrl.ClaimUsecase.Submit)
}

func (ctrl *ClaimController) Verify(w http.ResponseWriter, r *http.Request) {
	ctrl.transition(w, r, constvars.VerifyClaimSuccessMessage, ctrl.ClaimUsecase.Verify)
}

func (ctrl *ClaimController) Cancel(w http.ResponseWriter, r *http.Request) {
	ctrl.transition(w, r, constvars.CancelClaimSuccessMessage, ctrl.ClaimUsecase.Cancel)
}

func (ctrl *ClaimController) CompleteSpecialCase(w http.ResponseWriter, r *http.Request) {
	ctrl.transition(w, r, constvars.SITBCallbackSuccessMessage, ctrl.ClaimUsecase.CompleteSpecialCase)
}

func (ctrl *ClaimController) Delete(w http.ResponseWriter, r *http.Request) {
	claimNumber := chi.URLParam(r, constvars.URLParamClaimNumber)
	if claimNumber == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamClaimNumber))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	if err := ctrl.ClaimUsecase.Delete(ctx, claimNumber); err != nil {
		ctrl.writeError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteClaimSuccessMessage, nil)
}

func (ctrl *ClaimController) UploadDocumentBundle(w http.ResponseWriter, r *http.Request) {
	claimNumber := chi.URLParam(r, constvars.URLParamClaimNumber)
	if claimNumber == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamClaimNumber))
		return
	}

	if err := r.ParseMultipartForm(maxDocumentBundleBytes); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipart(err))
		return
	}
	file, fileHeader, err := r.FormFile("bundle")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipart(err))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	result, err := ctrl.ClaimUsecase.UploadDocumentBundle(
		ctx,
		claimNumber,
		fileHeader.Filename,
		fileHeader.Header.Get(constvars.HeaderContentType),
		file,
		fileHeader.Size,
	)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UploadDocumentSuccessMessage, result)
}

func (ctrl *ClaimController) GetDocumentBundleURL(w http.ResponseWriter, r *http.Request) {
	claimNumber := chi.URLParam(r, constvars.URLParamClaimNumber)
	if claimNumber == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamClaimNumber))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	result, err := ctrl.ClaimUsecase.GetDocumentBundleURL(ctx, claimNumber)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDocumentSuccessMessage, result)
}

func (ctrl *ClaimController) transition(w http.ResponseWriter, r *http.Request, successMessage string, invoke func(ctx context.Context, claimNumber string) (*responses.Claim, error)) {
	claimNumber := chi.URLParam(r, constvars.URLParamClaimNumber)
	if claimNumber == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamClaimNumber))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), controllerTimeout)
	defer cancel()

	result, err := invoke(ctx, claimNumber)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, successMessage, result)
}

func (ctrl *ClaimController) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
