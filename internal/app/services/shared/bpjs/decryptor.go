package bpjs

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"simrs-service/internal/app/models"
	"simrs-service/internal/pkg/exceptions"
	"strings"

	lzstring "github.com/daku10/go-lz-string"
	"github.com/goccy/go-json"
)

// Payload decoding pipeline for encrypted VClaim response bodies, strictly
// ordered: AES-256-CBC decrypt, LZ-string decompress, JSON parse. The key and
// IV are derived from the SHA-256 hex digest of consumerID+secret+timestamp,
// so the same timestamp that signed the request must decode its response.

func deriveKeyIV(consumerID, secretKey, timestamp string) (key, iv []byte) {
	digest := sha256.Sum256([]byte(consumerID + secretKey + timestamp))
	keyHex := hex.EncodeToString(digest[:])
	return []byte(keyHex[:32]), []byte(keyHex[:16])
}

// DecryptEnvelope runs stages one and two of the pipeline and returns the
// recovered plaintext string.
func DecryptEnvelope(envelope *models.EncryptedEnvelope) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(envelope.Ciphertext))
	if err != nil {
		return "", exceptions.ErrBPJSDecrypt(err)
	}
	if len(raw) == 0 || len(raw)%aes.BlockSize != 0 {
		return "", exceptions.ErrBPJSDecrypt(fmt.Errorf("ciphertext length %d is not a positive multiple of the block size", len(raw)))
	}

	key, iv := deriveKeyIV(envelope.ConsumerID, envelope.SecretKey, envelope.Timestamp)
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", exceptions.ErrBPJSDecrypt(err)
	}

	plain := make([]byte, len(raw))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, raw)

	plain, err = pkcs7Unpad(plain)
	if err != nil {
		return "", exceptions.ErrBPJSDecrypt(err)
	}

	decompressed, err := lzstring.DecompressFromEncodedURIComponent(string(plain))
	if err != nil {
		return "", exceptions.ErrBPJSDecompress(err)
	}
	return decompressed, nil
}

// DecodeEnvelope runs the full pipeline and parses the recovered text into out.
func DecodeEnvelope(envelope *models.EncryptedEnvelope, out interface{}) error {
	plaintext, err := DecryptEnvelope(envelope)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(plaintext), out); err != nil {
		return exceptions.ErrBPJSPayloadNotJSON(err)
	}
	return nil
}

// ExtractURLToken pulls the opaque token from a history-access URL. The value
// runs from just after "token=" to the next "&" or the end of the string; a
// missing parameter yields an empty token, not an error.
func ExtractURLToken(rawURL string) string {
	marker := "token="
	start := strings.Index(rawURL, marker)
	if start < 0 {
		return ""
	}
	token := rawURL[start+len(marker):]
	if end := strings.IndexByte(token, '&'); end >= 0 {
		token = token[:end]
	}
	return token
}

func pkcs7Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty plaintext")
	}
	padding := int(data[len(data)-1])
	if padding == 0 || padding > aes.BlockSize || padding > len(data) {
		return nil, fmt.Errorf("invalid pkcs7 padding length %d", padding)
	}
	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, fmt.Errorf("invalid pkcs7 padding byte")
		}
	}
	return data[:len(data)-padding], nil
}
