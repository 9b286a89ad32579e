package exceptions

import (
	"simrs-service/internal/pkg/constvars"
	"time"
)

var (
	ErrSatusehatCredentialIncomplete = func(fieldName string) *CustomError {
		customErr := WrapWithoutError(constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevBPJSCredentialIncomplete+": "+fieldName)
		customErr.Kind = KindConfiguration
		customErr.Code = fieldName
		return customErr
	}
	ErrSatusehatTokenRequest = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientGatewayUnavailable, constvars.ErrDevSatusehatTokenRequest)
		customErr.Kind = KindHTTP
		return customErr
	}
	ErrSatusehatTokenTimeout = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientGatewayUnavailable, constvars.ErrDevSatusehatTokenRequest)
		customErr.Kind = KindHTTPTimeout
		return customErr
	}
	ErrSatusehatTokenRejected = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientGatewayRejectedCredentials, constvars.ErrDevSatusehatTokenRejected)
		customErr.Kind = KindAuthentication
		return customErr
	}
	// A 200 response without a usable token is still an authentication
	// failure; an empty token must never be cached.
	ErrSatusehatTokenIncomplete = func() *CustomError {
		customErr := WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientGatewayRejectedCredentials, constvars.ErrDevSatusehatTokenIncomplete)
		customErr.Kind = KindAuthentication
		return customErr
	}
	ErrSatusehatTokenParse = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientGatewayUnavailable, constvars.ErrDevSatusehatTokenParseFailed)
		customErr.Kind = KindHTTP
		return customErr
	}
	ErrSatusehatRateLimited = func(err error, retryAfter time.Duration) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientGatewayTooManyRequests, constvars.ErrDevBPJSRateLimited)
		customErr.Kind = KindRateLimit
		customErr.RetryAfter = retryAfter
		return customErr
	}
)
