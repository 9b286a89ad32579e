package bpjs

import (
	"simrs-service/internal/app/models"
	"simrs-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCredential() models.BPJSCredential {
	return models.BPJSCredential{
		ConsumerID:   "1234567890",
		SecretKey:    "topsecret",
		UserKey:      "userkey",
		FacilityCode: "0001",
	}
}

func TestNewSigner(t *testing.T) {
	t.Run("complete credential", func(t *testing.T) {
		signer, err := NewSigner(testCredential(), 5*time.Minute)
		require.NoError(t, err)
		assert.NotNil(t, signer)
	})

	t.Run("missing secret key", func(t *testing.T) {
		credential := testCredential()
		credential.SecretKey = ""
		_, err := NewSigner(credential, 5*time.Minute)
		require.Error(t, err)
		assert.Equal(t, exceptions.KindConfiguration, exceptions.KindOf(err))
	})

	t.Run("missing facility code", func(t *testing.T) {
		credential := testCredential()
		credential.FacilityCode = "   "
		_, err := NewSigner(credential, 5*time.Minute)
		require.Error(t, err)
		assert.Equal(t, exceptions.KindConfiguration, exceptions.KindOf(err))
	})
}

func TestSignerSign(t *testing.T) {
	signer, err := NewSigner(testCredential(), 5*time.Minute)
	require.NoError(t, err)

	at := time.Unix(1700000000, 0)

	t.Run("known signature", func(t *testing.T) {
		headers, err := signer.Sign(at)
		require.NoError(t, err)
		assert.Equal(t, "1234567890", headers.ConsumerID)
		assert.Equal(t, "1700000000", headers.Timestamp)
		assert.Equal(t, "PXWPSF4MAqDboN6tl5i/pik3H3EwF8wLqvahxeGIo78=", headers.Signature)
	})

	t.Run("deterministic for the same instant", func(t *testing.T) {
		first, err := signer.Sign(at)
		require.NoError(t, err)
		second, err := signer.Sign(at)
		require.NoError(t, err)
		assert.Equal(t, first.Signature, second.Signature)
	})

	t.Run("different instant changes signature", func(t *testing.T) {
		first, err := signer.Sign(at)
		require.NoError(t, err)
		second, err := signer.Sign(at.Add(time.Second))
		require.NoError(t, err)
		assert.NotEqual(t, first.Signature, second.Signature)
	})
}

func TestSignerIsFresh(t *testing.T) {
	signer, err := NewSigner(testCredential(), 300*time.Second)
	require.NoError(t, err)

	at := time.Unix(1700000000, 0)
	headers, err := signer.Sign(at)
	require.NoError(t, err)

	assert.True(t, signer.IsFresh(headers, at))
	assert.True(t, signer.IsFresh(headers, at.Add(299*time.Second)))
	assert.True(t, signer.IsFresh(headers, at.Add(300*time.Second)))
	assert.False(t, signer.IsFresh(headers, at.Add(301*time.Second)))
	assert.False(t, signer.IsFresh(headers, at.Add(-time.Second)))
	assert.False(t, signer.IsFresh(nil, at))
}
