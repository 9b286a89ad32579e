package claims

import (
	"simrs-service/internal/app/models"
	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/exceptions"
)

// allowedTransitions is the complete lifecycle graph. The codes belong to the
// external claim system; cancellation is reachable from every state before
// SUBMITTED and from nowhere after.
var allowedTransitions = map[models.ClaimStatus][]models.ClaimStatus{
	models.ClaimStatusDraft:     {models.ClaimStatusDataSet, models.ClaimStatusCancelled},
	models.ClaimStatusDataSet:   {models.ClaimStatusCoded, models.ClaimStatusCancelled},
	models.ClaimStatusCoded:     {models.ClaimStatusGrouped, models.ClaimStatusCancelled},
	models.ClaimStatusGrouped:   {models.ClaimStatusFinalized, models.ClaimStatusCancelled},
	models.ClaimStatusFinalized: {models.ClaimStatusSubmitted, models.ClaimStatusCancelled},
	models.ClaimStatusSubmitted: {models.ClaimStatusVerified},
	models.ClaimStatusVerified:  {},
	models.ClaimStatusCancelled: {},
}

// CanTransition reports whether the lifecycle permits moving from one status
// to another.
func CanTransition(from, to models.ClaimStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// guardTransition validates a requested status change against the table and
// the per-state preconditions. Business-rule failures get their own error so
// the caller can show the user something better than "illegal transition".
func guardTransition(claim *models.Claim, to models.ClaimStatus, locale string) error {
	if to == models.ClaimStatusCancelled && claim.Status >= models.ClaimStatusSubmitted && claim.Status != models.ClaimStatusCancelled {
		return exceptions.ErrClaimBusinessRule(constvars.MsgTagCancelAfterSubmit, locale)
	}
	if !CanTransition(claim.Status, to) {
		return exceptions.ErrClaimInvalidTransition(claim.Status.String(), to.String(), locale)
	}

	switch to {
	case models.ClaimStatusCoded:
		if len(claim.Diagnoses) == 0 {
			return exceptions.ErrClaimBusinessRule(constvars.MsgTagDiagnosisRequired, locale)
		}
	case models.ClaimStatusGrouped:
		if claim.GrouperEngine == "" {
			return exceptions.ErrClaimBusinessRule(constvars.MsgTagGrouperEngineRequired, locale)
		}
	case models.ClaimStatusFinalized:
		if claim.IsSpecialCase && !claim.SpecialCaseCompleted {
			return exceptions.ErrClaimBusinessRule(constvars.MsgTagSpecialCaseNotCompleted, locale)
		}
	}
	return nil
}
