package models

import "time"

// TokenInfo is a cache entry for one (facility, environment) key. Entries are
// replaced on refresh, never mutated in place.
type TokenInfo struct {
	AccessToken string
	TokenType   string
	IssuedAt    time.Time
	ExpiresAt   time.Time
	Facility    string
	Environment string
}

// TokenExpiryMargin keeps a safety window between "token still usable" and the
// reported expiry so a request started now cannot outlive its token.
const TokenExpiryMargin = 5 * time.Minute

// IsExpired reports whether the token is no longer safe to use.
func (t *TokenInfo) IsExpired() bool {
	return t == nil || !time.Now().Add(TokenExpiryMargin).Before(t.ExpiresAt)
}

// IsValid reports whether the entry carries a usable token at all. A refresh
// response missing access_token or expires_in produces an invalid entry.
func (t *TokenInfo) IsValid() bool {
	return t != nil && t.AccessToken != "" && t.ExpiresAt.After(t.IssuedAt)
}

// AuthorizationHeader renders the value for the Authorization header.
func (t *TokenInfo) AuthorizationHeader() string {
	tokenType := t.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return tokenType + " " + t.AccessToken
}
