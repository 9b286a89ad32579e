package constvars

const (
	CreateClaimSuccessMessage    = "successfully created claim draft"
	UpdateClaimSuccessMessage    = "successfully updated claim"
	GetClaimSuccessMessage       = "successfully retrieved claim"
	DeleteClaimSuccessMessage    = "successfully deleted claim draft"
	GrouperClaimSuccessMessage   = "successfully executed grouper for claim"
	FinalizeClaimSuccessMessage  = "successfully finalized claim"
	SubmitClaimSuccessMessage    = "successfully submitted claim"
	VerifyClaimSuccessMessage    = "successfully verified claim"
	CancelClaimSuccessMessage    = "successfully cancelled claim"
	HistoryAccessSuccessMessage  = "successfully issued history access grant"
	SITBCallbackSuccessMessage   = "successfully recorded tuberculosis reporting completion"
	UploadDocumentSuccessMessage = "successfully uploaded claim document bundle"
	GetDocumentSuccessMessage    = "successfully issued claim document download link"

	GetTokenSuccessMessage        = "successfully retrieved exchange access token"
	InvalidateTokenSuccessMessage = "successfully invalidated exchange access token"
)
