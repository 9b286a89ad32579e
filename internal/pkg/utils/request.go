package utils

import (
	"context"
	"net"
	"net/http"
	"simrs-service/internal/pkg/constvars"
	"strings"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

func LocaleFromContext(ctx context.Context) string {
	locale, ok := ctx.Value(constvars.CONTEXT_LOCALE_KEY).(string)
	if !ok || locale == "" {
		return constvars.LocaleIndonesian
	}
	return locale
}

// LocaleFromRequest picks the response language from Accept-Language,
// defaulting to Indonesian for this deployment.
func LocaleFromRequest(r *http.Request) string {
	acceptLanguage := strings.ToLower(r.Header.Get("Accept-Language"))
	if strings.HasPrefix(acceptLanguage, "en") {
		return constvars.LocaleEnglish
	}
	return constvars.LocaleIndonesian
}

func ClientIPFromRequest(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// MaskCardNumber keeps the first and last two digits for audit logs.
func MaskCardNumber(cardNumber string) string {
	if len(cardNumber) <= 4 {
		return cardNumber
	}
	return cardNumber[:2] + strings.Repeat("*", len(cardNumber)-4) + cardNumber[len(cardNumber)-2:]
}
