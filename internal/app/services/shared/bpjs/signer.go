package bpjs

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"simrs-service/internal/app/models"
	"simrs-service/internal/pkg/exceptions"
	"simrs-service/internal/pkg/utils"
	"strconv"
	"strings"
	"time"
)

// Signer produces the X-cons-id / X-timestamp / X-signature header triple the
// VClaim API verifies on every call. It holds no mutable state and is safe for
// concurrent use.
type Signer struct {
	credential models.BPJSCredential
	freshness  time.Duration
}

func NewSigner(credential models.BPJSCredential, freshness time.Duration) (*Signer, error) {
	fields := map[string]string{
		"consumer_id":   credential.ConsumerID,
		"secret_key":    credential.SecretKey,
		"facility_code": credential.FacilityCode,
	}
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			return nil, exceptions.ErrBPJSCredentialIncomplete(name)
		}
	}
	if freshness <= 0 {
		freshness = 5 * time.Minute
	}
	return &Signer{credential: credential, freshness: freshness}, nil
}

// Sign builds the signed headers for a request issued at the given instant.
// The timestamp is truncated to whole epoch seconds; the signature is
// base64(HMAC-SHA256(secret, consumerID + "&" + timestamp)).
func (s *Signer) Sign(at time.Time) (*models.SignedRequestHeaders, error) {
	timestamp := utils.EpochSecondsString(at)

	mac := hmac.New(sha256.New, []byte(s.credential.SecretKey))
	if _, err := mac.Write([]byte(s.credential.ConsumerID + "&" + timestamp)); err != nil {
		// hash.Hash.Write is documented never to fail; reaching this is fatal.
		return nil, exceptions.ErrBPJSSignatureGeneration(err)
	}

	return &models.SignedRequestHeaders{
		Timestamp:  timestamp,
		Signature:  base64.StdEncoding.EncodeToString(mac.Sum(nil)),
		ConsumerID: s.credential.ConsumerID,
	}, nil
}

// IsFresh reports whether a previously signed timestamp is still inside the
// freshness window the gateway accepts.
func (s *Signer) IsFresh(headers *models.SignedRequestHeaders, now time.Time) bool {
	if headers == nil {
		return false
	}
	signedAt, err := strconv.ParseInt(headers.Timestamp, 10, 64)
	if err != nil {
		return false
	}
	age := now.Unix() - signedAt
	return age >= 0 && age <= int64(s.freshness/time.Second)
}

func (s *Signer) Credential() models.BPJSCredential {
	return s.credential
}
