package constvars

// VClaim signed-request headers. BPJS verifies the HMAC signature against the
// consumer id and timestamp, so the three headers always travel together.
const (
	HeaderBPJSConsumerID = "X-cons-id"
	HeaderBPJSTimestamp  = "X-timestamp"
	HeaderBPJSSignature  = "X-signature"
	HeaderBPJSUserKey    = "user_key"
)

const (
	BPJSMetaCodeOK           = "200"
	BPJSMetaCodeUnauthorized = "401"
	BPJSMetaCodeTooMany      = "429"
)

const (
	VClaimPathHistoryValidate = "/icare/api/rs/validate"
	VClaimPathGrouperStage1   = "/inacbg/grouper/stage1"
	VClaimPathClaimFinal      = "/inacbg/claim_final"
	VClaimPathClaimSend       = "/inacbg/claim_send"
)

// Default freshness window for signed timestamps; BPJS rejects stale requests.
const BPJSTimestampFreshnessSeconds = 300
