package models

// BPJSCredential is loaded once from configuration and never mutated.
type BPJSCredential struct {
	ConsumerID   string
	SecretKey    string
	UserKey      string
	FacilityCode string
	Environment  string
}

// SignedRequestHeaders lives for exactly one outbound VClaim call.
type SignedRequestHeaders struct {
	Timestamp  string
	Signature  string
	ConsumerID string
}

type SatusehatCredential struct {
	ClientID     string
	ClientSecret string
	FacilityCode string
	Environment  string
}
