package responses

import "time"

// SatusehatToken is handed to back-office modules that call the FHIR exchange
// directly; they reuse the gateway's cached token instead of holding the
// client credentials themselves.
type SatusehatToken struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
	Environment string    `json:"environment"`
}
