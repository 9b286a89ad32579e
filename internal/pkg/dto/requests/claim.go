package requests

type CreateClaim struct {
	SEPNumber         string `json:"sepNumber" validate:"required"`
	PatientCardNumber string `json:"patientCardNumber" validate:"required,len=13,numeric"`
	IsSpecialCase     bool   `json:"isSpecialCase"`
}

type SetClaimData struct {
	EpisodeStart    string `json:"episodeStart" validate:"required"`
	EpisodeEnd      string `json:"episodeEnd" validate:"required"`
	DischargeStatus string `json:"dischargeStatus" validate:"required"`
}

type DiagnosisInput struct {
	Code      string `json:"code" validate:"required"`
	IsPrimary bool   `json:"isPrimary"`
}

type ProcedureInput struct {
	Code string `json:"code" validate:"required"`
}

type AttachCoding struct {
	Diagnoses  []DiagnosisInput `json:"diagnoses" validate:"required,min=1,dive"`
	Procedures []ProcedureInput `json:"procedures" validate:"dive"`
}

type ExecuteGrouper struct {
	GrouperEngine string `json:"grouperEngine" validate:"required"`
}
