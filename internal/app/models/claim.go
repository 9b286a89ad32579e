package models

// ClaimStatus mirrors the numeric lifecycle codes used by the external claim
// system. The codes are part of the wire contract and must not be reordered.
type ClaimStatus int

const (
	ClaimStatusDraft     ClaimStatus = 1
	ClaimStatusDataSet   ClaimStatus = 2
	ClaimStatusCoded     ClaimStatus = 3
	ClaimStatusGrouped   ClaimStatus = 4
	ClaimStatusFinalized ClaimStatus = 5
	ClaimStatusSubmitted ClaimStatus = 6
	ClaimStatusVerified  ClaimStatus = 7
	ClaimStatusCancelled ClaimStatus = 99
)

var claimStatusNames = map[ClaimStatus]string{
	ClaimStatusDraft:     "DRAFT",
	ClaimStatusDataSet:   "DATA_SET",
	ClaimStatusCoded:     "CODED",
	ClaimStatusGrouped:   "GROUPED",
	ClaimStatusFinalized: "FINALIZED",
	ClaimStatusSubmitted: "SUBMITTED",
	ClaimStatusVerified:  "VERIFIED",
	ClaimStatusCancelled: "CANCELLED",
}

func (s ClaimStatus) String() string {
	if name, ok := claimStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

type Diagnosis struct {
	Code      string `json:"code" bson:"code"`
	IsPrimary bool   `json:"isPrimary" bson:"isPrimary"`
}

type Procedure struct {
	Code string `json:"code" bson:"code"`
}

// GroupingResult holds what the INACBG grouper returned for the claim.
type GroupingResult struct {
	CMGCode       string  `json:"cmgCode" bson:"cmgCode"`
	Description   string  `json:"description" bson:"description"`
	Tariff        float64 `json:"tariff" bson:"tariff"`
	GrouperEngine string  `json:"grouperEngine" bson:"grouperEngine"`
}

type Claim struct {
	ID          string      `bson:"_id,omitempty"`
	ClaimNumber string      `bson:"claimNumber"`
	SEPNumber   string      `bson:"sepNumber"`
	Facility    string      `bson:"facilityCode"`
	Status      ClaimStatus `bson:"status"`

	PatientCardNumber string `bson:"patientCardNumber"`
	EpisodeStart      string `bson:"episodeStart,omitempty"`
	EpisodeEnd        string `bson:"episodeEnd,omitempty"`
	DischargeStatus   string `bson:"dischargeStatus,omitempty"`

	Diagnoses  []Diagnosis `bson:"diagnoses,omitempty"`
	Procedures []Procedure `bson:"procedures,omitempty"`

	GrouperEngine string          `bson:"grouperEngine,omitempty"`
	Grouping      *GroupingResult `bson:"grouping,omitempty"`

	// TB claims must finish SITB reporting before finalization.
	IsSpecialCase        bool `bson:"isSpecialCase"`
	SpecialCaseCompleted bool `bson:"specialCaseCompleted"`

	DocumentObjectName string `bson:"documentObjectName,omitempty"`

	TimeModel `bson:",inline"`
}
