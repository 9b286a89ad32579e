package models

import "time"

// EncryptedEnvelope is the transient input to the payload decoder.
type EncryptedEnvelope struct {
	Ciphertext string
	ConsumerID string
	SecretKey  string
	Timestamp  string
}

// HistoryAccessGrant is the decoded iCare validation result. The core returns
// it to the caller and keeps nothing.
type HistoryAccessGrant struct {
	CardNumber  string
	DoctorCode  int
	URL         string
	AccessToken string
	ExpiresAt   time.Time

	RequestedBy string
	RequestIP   string
	Purpose     string
}
