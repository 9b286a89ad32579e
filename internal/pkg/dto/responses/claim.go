package responses

import (
	"simrs-service/internal/app/models"
	"time"
)

type ClaimGrouping struct {
	CMGCode       string  `json:"cmgCode"`
	Description   string  `json:"description,omitempty"`
	Tariff        float64 `json:"tariff"`
	GrouperEngine string  `json:"grouperEngine"`
}

type Claim struct {
	ClaimNumber          string             `json:"claimNumber"`
	SEPNumber            string             `json:"sepNumber"`
	FacilityCode         string             `json:"facilityCode"`
	StatusCode           int                `json:"statusCode"`
	Status               string             `json:"status"`
	Diagnoses            []models.Diagnosis `json:"diagnoses,omitempty"`
	Procedures           []models.Procedure `json:"procedures,omitempty"`
	Grouping             *ClaimGrouping     `json:"grouping,omitempty"`
	IsSpecialCase        bool               `json:"isSpecialCase"`
	SpecialCaseCompleted bool               `json:"specialCaseCompleted"`
	DocumentObjectName   string             `json:"documentObjectName,omitempty"`
	CreatedAt            time.Time          `json:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt"`
}

// ClaimDocument carries a presigned download link for a stored bundle.
type ClaimDocument struct {
	ClaimNumber string    `json:"claimNumber"`
	ObjectName  string    `json:"objectName"`
	URL         string    `json:"url"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func NewClaimResponse(claim *models.Claim) *Claim {
	response := &Claim{
		ClaimNumber:          claim.ClaimNumber,
		SEPNumber:            claim.SEPNumber,
		FacilityCode:         claim.Facility,
		StatusCode:           int(claim.Status),
		Status:               claim.Status.String(),
		Diagnoses:            claim.Diagnoses,
		Procedures:           claim.Procedures,
		IsSpecialCase:        claim.IsSpecialCase,
		SpecialCaseCompleted: claim.SpecialCaseCompleted,
		DocumentObjectName:   claim.DocumentObjectName,
		CreatedAt:            claim.CreatedAt,
		UpdatedAt:            claim.UpdatedAt,
	}
	if claim.Grouping != nil {
		response.Grouping = &ClaimGrouping{
			CMGCode:       claim.Grouping.CMGCode,
			Description:   claim.Grouping.Description,
			Tariff:        claim.Grouping.Tariff,
			GrouperEngine: claim.Grouping.GrouperEngine,
		}
	}
	return response
}
