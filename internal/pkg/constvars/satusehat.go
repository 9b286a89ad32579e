package constvars

const (
	SatusehatPathAccessToken = "/accesstoken?grant_type=client_credentials"

	SatusehatParamAccessToken = "access_token"
	SatusehatParamTokenType   = "token_type"
	SatusehatParamExpiresIn   = "expires_in"
	SatusehatParamIssuedAt    = "issued_at"
)

// Tokens are treated as expired this long before the reported expiry so an
// in-flight request never crosses the boundary mid-call.
const SatusehatTokenExpiryMarginSeconds = 300

// Fallback lifetime when the token endpoint omits expires_in. SATUSEHAT issues
// one-hour tokens; 3599 mirrors the value the platform reports when present.
const SatusehatDefaultExpiresInSeconds = 3599
