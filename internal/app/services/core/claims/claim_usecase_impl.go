package claims

import (
	"context"
	"fmt"
	"io"
	"path"
	"simrs-service/internal/app/config"
	"simrs-service/internal/app/contracts"
	"simrs-service/internal/app/models"
	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/dto/requests"
	"simrs-service/internal/pkg/dto/responses"
	"simrs-service/internal/pkg/exceptions"
	"simrs-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	claimLockExpiration      = 30 * time.Second
	documentDownloadValidity = 15 * time.Minute
)

type claimUsecase struct {
	ClaimRepository  contracts.ClaimRepository
	VClaimGateway    contracts.VClaimGateway
	SITBQueueService contracts.SITBQueueService
	DocumentStorage  contracts.DocumentStorage
	SequenceService  contracts.SequenceService
	LockerService    contracts.LockerService
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

var (
	claimUsecaseInstance contracts.ClaimUsecase
	onceClaimUsecase     sync.Once
)

func NewClaimUsecase(
	claimRepository contracts.ClaimRepository,
	vclaimGateway contracts.VClaimGateway,
	sitbQueueService contracts.SITBQueueService,
	documentStorage contracts.DocumentStorage,
	sequenceService contracts.SequenceService,
	lockerService contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ClaimUsecase {
	onceClaimUsecase.Do(func() {
		claimUsecaseInstance = &claimUsecase{
			ClaimRepository:  claimRepository,
			VClaimGateway:    vclaimGateway,
			SITBQueueService: sitbQueueService,
			DocumentStorage:  documentStorage,
			SequenceService:  sequenceService,
			LockerService:    lockerService,
			InternalConfig:   internalConfig,
			Log:              logger,
		}
	})
	return claimUsecaseInstance
}

func (uc *claimUsecase) CreateDraft(ctx context.Context, request *requests.CreateClaim) (*responses.Claim, error) {
	requestID := utils.RequestIDFromContext(ctx)
	locale := utils.LocaleFromContext(ctx)
	uc.Log.Info("claimUsecase.CreateDraft called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSepNumberKey, request.SEPNumber),
	)

	// The uniqueness check and the insert must be mutually exclusive per SEP,
	// otherwise two concurrent creates both pass the check and both insert.
	lockKey := fmt.Sprintf(constvars.RedisKeySEPLockFormat, request.SEPNumber)
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, claimLockExpiration)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrClaimDuplicateSEP(request.SEPNumber, locale)
	}
	defer func() {
		if err := uc.LockerService.Unlock(ctx, lockKey, lockValue); err != nil {
			uc.Log.Warn("claimUsecase failed to release sep lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}()

	exists, err := uc.ClaimRepository.ExistsActiveBySEP(ctx, request.SEPNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, exceptions.ErrClaimDuplicateSEP(request.SEPNumber, locale)
	}

	claimNumber, err := uc.SequenceService.Next(ctx, constvars.SequencePrefixClaim)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	claim := &models.Claim{
		ClaimNumber:       claimNumber,
		SEPNumber:         request.SEPNumber,
		Facility:          uc.InternalConfig.BPJS.FacilityCode,
		Status:            models.ClaimStatusDraft,
		PatientCardNumber: request.PatientCardNumber,
		IsSpecialCase:     request.IsSpecialCase,
		TimeModel:         models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	if _, err := uc.ClaimRepository.Create(ctx, claim); err != nil {
		return nil, err
	}

	uc.Log.Info("claimUsecase.CreateDraft created claim",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClaimNumberKey, claim.ClaimNumber),
	)
	return responses.NewClaimResponse(claim), nil
}

func (uc *claimUsecase) FindByClaimNumber(ctx context.Context, claimNumber string) (*responses.Claim, error) {
	claim, err := uc.ClaimRepository.FindByClaimNumber(ctx, claimNumber)
	if err != nil {
		return nil, err
	}
	return responses.NewClaimResponse(claim), nil
}

func (uc *claimUsecase) SetClinicalData(ctx context.Context, claimNumber string, request *requests.SetClaimData) (*responses.Claim, error) {
	return uc.withClaimLock(ctx, claimNumber, "SetClinicalData", func(claim *models.Claim, locale string) error {
		if err := guardTransition(claim, models.ClaimStatusDataSet, locale); err != nil {
			return err
		}
		claim.EpisodeStart = request.EpisodeStart
		claim.EpisodeEnd = request.EpisodeEnd
		claim.DischargeStatus = request.DischargeStatus
		claim.Status = models.ClaimStatusDataSet
		return nil
	})
}

func (uc *claimUsecase) AttachCoding(ctx context.Context, claimNumber string, request *requests.AttachCoding) (*responses.Claim, error) {
	return uc.withClaimLock(ctx, claimNumber, "AttachCoding", func(claim *models.Claim, locale string) error {
		diagnoses := make([]models.Diagnosis, len(request.Diagnoses))
		for i, input := range request.Diagnoses {
			diagnoses[i] = models.Diagnosis{Code: input.Code, IsPrimary: input.IsPrimary}
		}
		procedures := make([]models.Procedure, len(request.Procedures))
		for i, input := range request.Procedures {
			procedures[i] = models.Procedure{Code: input.Code}
		}
		claim.Diagnoses = diagnoses
		claim.Procedures = procedures

		if err := guardTransition(claim, models.ClaimStatusCoded, locale); err != nil {
			return err
		}
		claim.Status = models.ClaimStatusCoded
		return nil
	})
}

func (uc *claimUsecase) ExecuteGrouper(ctx context.Context, claimNumber string, request *requests.ExecuteGrouper) (*responses.Claim, error) {
	return uc.withClaimLock(ctx, claimNumber, "ExecuteGrouper", func(claim *models.Claim, locale string) error {
		claim.GrouperEngine = request.GrouperEngine
		if err := guardTransition(claim, models.ClaimStatusGrouped, locale); err != nil {
			return err
		}

		// On gateway failure the claim stays in CODED; nothing is persisted.
		grouping, err := uc.VClaimGateway.ExecuteGrouper(ctx, claim)
		if err != nil {
			return err
		}
		claim.Grouping = grouping
		claim.Status = models.ClaimStatusGrouped

		if claim.IsSpecialCase && !claim.SpecialCaseCompleted {
			if err := uc.SITBQueueService.PublishSubmission(ctx, claim); err != nil {
				return err
			}
		}
		return nil
	})
}

func (uc *claimUsecase) Finalize(ctx context.Context, claimNumber string) (*responses.Claim, error) {
	return uc.withClaimLock(ctx, claimNumber, "Finalize", func(claim *models.Claim, locale string) error {
		if err := guardTransition(claim, models.ClaimStatusFinalized, locale); err != nil {
			return err
		}
		if err := uc.VClaimGateway.FinalizeClaim(ctx, claim); err != nil {
			return err
		}
		claim.Status = models.ClaimStatusFinalized
		return nil
	})
}

func (uc *claimUsecase) Submit(ctx context.Context, claimNumber string) (*responses.Claim, error) {
	return uc.withClaimLock(ctx, claimNumber, "Submit", func(claim *models.Claim, locale string) error {
		if err := guardTransition(claim, models.ClaimStatusSubmitted, locale); err != nil {
			return err
		}
		if err := uc.VClaimGateway.SubmitClaim(ctx, claim); err != nil {
			return err
		}
		claim.Status = models.ClaimStatusSubmitted
		return nil
	})
}

func (uc *claimUsecase) Verify(ctx context.Context, claimNumber string) (*responses.Claim, error) {
	return uc.withClaimLock(ctx, claimNumber, "Verify", func(claim *models.Claim, locale string) error {
		if err := guardTransition(claim, models.ClaimStatusVerified, locale); err != nil {
			return err
		}
		claim.Status = models.ClaimStatusVerified
		return nil
	})
}

func (uc *claimUsecase) Cancel(ctx context.Context, claimNumber string) (*responses.Claim, error) {
	return uc.withClaimLock(ctx, claimNumber, "Cancel", func(claim *models.Claim, locale string) error {
		if err := guardTransition(claim, models.ClaimStatusCancelled, locale); err != nil {
			return err
		}
		claim.Status = models.ClaimStatusCancelled
		return nil
	})
}

func (uc *claimUsecase) Delete(ctx context.Context, claimNumber string) error {
	requestID := utils.RequestIDFromContext(ctx)
	locale := utils.LocaleFromContext(ctx)
	uc.Log.Info("claimUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClaimNumberKey, claimNumber),
	)

	claim, err := uc.ClaimRepository.FindByClaimNumber(ctx, claimNumber)
	if err != nil {
		return err
	}
	if claim.Status != models.ClaimStatusDraft {
		return exceptions.ErrClaimBusinessRule(constvars.MsgTagDeleteAfterDraft, locale)
	}
	return uc.ClaimRepository.Delete(ctx, claimNumber)
}

func (uc *claimUsecase) CompleteSpecialCase(ctx context.Context, claimNumber string) (*responses.Claim, error) {
	return uc.withClaimLock(ctx, claimNumber, "CompleteSpecialCase", func(claim *models.Claim, locale string) error {
		if !claim.IsSpecialCase {
			return exceptions.ErrClaimBusinessRule(constvars.MsgTagNotSpecialCase, locale)
		}
		claim.SpecialCaseCompleted = true
		return nil
	})
}

func (uc *claimUsecase) UploadDocumentBundle(ctx context.Context, claimNumber, fileName, contentType string, file io.Reader, size int64) (*responses.Claim, error) {
	return uc.withClaimLock(ctx, claimNumber, "UploadDocumentBundle", func(claim *models.Claim, locale string) error {
		if claim.Status < models.ClaimStatusFinalized || claim.Status == models.ClaimStatusCancelled {
			return exceptions.ErrClaimBusinessRule(constvars.MsgTagBundleBeforeFinalized, locale)
		}
		objectName := path.Join("claims", claim.ClaimNumber, fileName)
		storedName, err := uc.DocumentStorage.UploadClaimBundle(ctx, objectName, contentType, file, size)
		if err != nil {
			return err
		}
		claim.DocumentObjectName = storedName
		return nil
	})
}

// GetDocumentBundleURL issues a short-lived presigned link to the stored
// bundle. The object itself never streams through this service.
func (uc *claimUsecase) GetDocumentBundleURL(ctx context.Context, claimNumber string) (*responses.ClaimDocument, error) {
	requestID := utils.RequestIDFromContext(ctx)
	locale := utils.LocaleFromContext(ctx)
	uc.Log.Info("claimUsecase.GetDocumentBundleURL called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClaimNumberKey, claimNumber),
	)

	claim, err := uc.ClaimRepository.FindByClaimNumber(ctx, claimNumber)
	if err != nil {
		return nil, err
	}
	if claim.DocumentObjectName == "" {
		return nil, exceptions.ErrClaimBusinessRule(constvars.MsgTagDocumentNotUploaded, locale)
	}

	downloadURL, err := uc.DocumentStorage.PresignedDownloadURL(ctx, claim.DocumentObjectName, documentDownloadValidity)
	if err != nil {
		return nil, err
	}

	return &responses.ClaimDocument{
		ClaimNumber: claim.ClaimNumber,
		ObjectName:  claim.DocumentObjectName,
		URL:         downloadURL,
		ExpiresAt:   time.Now().Add(documentDownloadValidity),
	}, nil
}

// withClaimLock serializes mutations on one claim across processes, reloads
// the claim under the lock, applies the mutation, and persists it.
func (uc *claimUsecase) withClaimLock(ctx context.Context, claimNumber, operation string, mutate func(claim *models.Claim, locale string) error) (*responses.Claim, error) {
	requestID := utils.RequestIDFromContext(ctx)
	locale := utils.LocaleFromContext(ctx)
	uc.Log.Info(fmt.Sprintf("claimUsecase.%s called", operation),
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClaimNumberKey, claimNumber),
	)

	lockKey := fmt.Sprintf(constvars.RedisKeyClaimLockFormat, claimNumber)
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, claimLockExpiration)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrClaimLockNotAcquired(claimNumber)
	}
	defer func() {
		if err := uc.LockerService.Unlock(ctx, lockKey, lockValue); err != nil {
			uc.Log.Warn("claimUsecase failed to release claim lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}()

	claim, err := uc.ClaimRepository.FindByClaimNumber(ctx, claimNumber)
	if err != nil {
		return nil, err
	}

	statusBefore := claim.Status
	if err := mutate(claim, locale); err != nil {
		return nil, err
	}

	claim.UpdatedAt = time.Now()
	if err := uc.ClaimRepository.Update(ctx, claim); err != nil {
		return nil, err
	}

	if claim.Status != statusBefore {
		uc.Log.Info(fmt.Sprintf("claimUsecase.%s transitioned claim", operation),
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClaimNumberKey, claimNumber),
			zap.String(constvars.LoggingStatusFromKey, statusBefore.String()),
			zap.String(constvars.LoggingStatusToKey, claim.Status.String()),
		)
	}
	return responses.NewClaimResponse(claim), nil
}
