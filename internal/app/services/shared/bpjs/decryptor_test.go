package bpjs

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"testing"

	lzstring "github.com/daku10/go-lz-string"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simrs-service/internal/app/models"
	"simrs-service/internal/pkg/exceptions"
)

// encryptEnvelope mirrors the VClaim response encoding: LZ-string compress,
// PKCS#7 pad, AES-256-CBC encrypt, base64 encode.
func encryptEnvelope(t *testing.T, plaintext, consumerID, secretKey, timestamp string) string {
	t.Helper()

	compressed, err := lzstring.CompressToEncodedURIComponent(plaintext)
	require.NoError(t, err)

	key, iv := deriveKeyIV(consumerID, secretKey, timestamp)
	block, err := aes.NewCipher(key)
	require.NoError(t, err)

	padLen := aes.BlockSize - len(compressed)%aes.BlockSize
	padded := append([]byte(compressed), bytes.Repeat([]byte{byte(padLen)}, padLen)...)

	encrypted := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(encrypted, padded)
	return base64.StdEncoding.EncodeToString(encrypted)
}

func TestDecryptEnvelope(t *testing.T) {
	const (
		consumerID = "1234567890"
		secretKey  = "topsecret"
		timestamp  = "1700000000"
	)

	t.Run("round trips an encrypted payload", func(t *testing.T) {
		plaintext := `{"noSep":"0301R0011023V000001","status":"aktif"}`
		envelope := &models.EncryptedEnvelope{
			Ciphertext: encryptEnvelope(t, plaintext, consumerID, secretKey, timestamp),
			ConsumerID: consumerID,
			SecretKey:  secretKey,
			Timestamp:  timestamp,
		}

		recovered, err := DecryptEnvelope(envelope)
		require.NoError(t, err)
		assert.Equal(t, plaintext, recovered)
	})

	t.Run("tolerates surrounding whitespace in the ciphertext", func(t *testing.T) {
		plaintext := `{"ok":true}`
		envelope := &models.EncryptedEnvelope{
			Ciphertext: "\n  " + encryptEnvelope(t, plaintext, consumerID, secretKey, timestamp) + "  ",
			ConsumerID: consumerID,
			SecretKey:  secretKey,
			Timestamp:  timestamp,
		}

		recovered, err := DecryptEnvelope(envelope)
		require.NoError(t, err)
		assert.Equal(t, plaintext, recovered)
	})

	t.Run("rejects ciphertext that is not valid base64", func(t *testing.T) {
		envelope := &models.EncryptedEnvelope{
			Ciphertext: "not-base64!!!",
			ConsumerID: consumerID,
			SecretKey:  secretKey,
			Timestamp:  timestamp,
		}

		_, err := DecryptEnvelope(envelope)
		require.Error(t, err)
		assert.Equal(t, exceptions.KindEncryption, exceptions.KindOf(err))
	})

	t.Run("rejects ciphertext with a partial block", func(t *testing.T) {
		envelope := &models.EncryptedEnvelope{
			Ciphertext: base64.StdEncoding.EncodeToString([]byte("short")),
			ConsumerID: consumerID,
			SecretKey:  secretKey,
			Timestamp:  timestamp,
		}

		_, err := DecryptEnvelope(envelope)
		require.Error(t, err)
		assert.Equal(t, exceptions.KindEncryption, exceptions.KindOf(err))
	})

	t.Run("fails when the timestamp does not match the key derivation", func(t *testing.T) {
		envelope := &models.EncryptedEnvelope{
			Ciphertext: encryptEnvelope(t, `{"ok":true}`, consumerID, secretKey, timestamp),
			ConsumerID: consumerID,
			SecretKey:  secretKey,
			Timestamp:  "1700000001",
		}

		_, err := DecryptEnvelope(envelope)
		require.Error(t, err)
		assert.Equal(t, exceptions.KindEncryption, exceptions.KindOf(err))
	})
}

func TestDecodeEnvelope(t *testing.T) {
	const (
		consumerID = "1234567890"
		secretKey  = "topsecret"
		timestamp  = "1700000000"
	)

	t.Run("parses the recovered JSON into the target", func(t *testing.T) {
		envelope := &models.EncryptedEnvelope{
			Ciphertext: encryptEnvelope(t, `{"noSep":"0301R0011023V000001","tarif":125000}`, consumerID, secretKey, timestamp),
			ConsumerID: consumerID,
			SecretKey:  secretKey,
			Timestamp:  timestamp,
		}

		var out struct {
			NoSep string `json:"noSep"`
			Tarif int    `json:"tarif"`
		}
		require.NoError(t, DecodeEnvelope(envelope, &out))
		assert.Equal(t, "0301R0011023V000001", out.NoSep)
		assert.Equal(t, 125000, out.Tarif)
	})

	t.Run("rejects recovered text that is not JSON", func(t *testing.T) {
		envelope := &models.EncryptedEnvelope{
			Ciphertext: encryptEnvelope(t, "plain text, not json", consumerID, secretKey, timestamp),
			ConsumerID: consumerID,
			SecretKey:  secretKey,
			Timestamp:  timestamp,
		}

		var out map[string]interface{}
		err := DecodeEnvelope(envelope, &out)
		require.Error(t, err)
		assert.Equal(t, exceptions.KindEncryption, exceptions.KindOf(err))
	})
}

func TestExtractURLToken(t *testing.T) {
	tests := []struct {
		name     string
		rawURL   string
		expected string
	}{
		{
			name:     "token at the end of the query",
			rawURL:   "https://icare.example/history?token=abc123",
			expected: "abc123",
		},
		{
			name:     "token followed by another parameter",
			rawURL:   "https://icare.example/history?token=abc123&lang=id",
			expected: "abc123",
		},
		{
			name:     "token as the second parameter",
			rawURL:   "https://icare.example/history?lang=id&token=xyz789",
			expected: "xyz789",
		},
		{
			name:     "missing token parameter",
			rawURL:   "https://icare.example/history?lang=id",
			expected: "",
		},
		{
			name:     "empty token value",
			rawURL:   "https://icare.example/history?token=&lang=id",
			expected: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractURLToken(tc.rawURL))
		})
	}
}
