package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenInfoIsExpired(t *testing.T) {
	t.Run("nil token is expired", func(t *testing.T) {
		var token *TokenInfo
		assert.True(t, token.IsExpired())
	})

	t.Run("token outside the margin is usable", func(t *testing.T) {
		token := &TokenInfo{ExpiresAt: time.Now().Add(TokenExpiryMargin + time.Minute)}
		assert.False(t, token.IsExpired())
	})

	t.Run("token inside the margin counts as expired", func(t *testing.T) {
		token := &TokenInfo{ExpiresAt: time.Now().Add(TokenExpiryMargin - time.Second)}
		assert.True(t, token.IsExpired())
	})

	t.Run("token past its expiry is expired", func(t *testing.T) {
		token := &TokenInfo{ExpiresAt: time.Now().Add(-time.Minute)}
		assert.True(t, token.IsExpired())
	})
}

func TestTokenInfoIsValid(t *testing.T) {
	now := time.Now()

	t.Run("complete entry is valid", func(t *testing.T) {
		token := &TokenInfo{AccessToken: "tok", IssuedAt: now, ExpiresAt: now.Add(time.Hour)}
		assert.True(t, token.IsValid())
	})

	t.Run("nil and empty entries are invalid", func(t *testing.T) {
		var nilToken *TokenInfo
		assert.False(t, nilToken.IsValid())
		assert.False(t, (&TokenInfo{IssuedAt: now, ExpiresAt: now.Add(time.Hour)}).IsValid())
	})

	t.Run("entry whose expiry precedes issuance is invalid", func(t *testing.T) {
		token := &TokenInfo{AccessToken: "tok", IssuedAt: now, ExpiresAt: now.Add(-time.Hour)}
		assert.False(t, token.IsValid())
	})
}

func TestTokenInfoAuthorizationHeader(t *testing.T) {
	assert.Equal(t, "Bearer tok", (&TokenInfo{AccessToken: "tok", TokenType: "Bearer"}).AuthorizationHeader())
	assert.Equal(t, "Bearer tok", (&TokenInfo{AccessToken: "tok"}).AuthorizationHeader())
}
