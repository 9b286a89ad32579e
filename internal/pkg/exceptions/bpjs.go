package exceptions

import (
	"simrs-service/internal/pkg/constvars"
	"time"
)

// VClaim integration errors. Every constructor tags the error with its
// taxonomy kind so orchestration can decide on retry without string matching.
var (
	ErrBPJSCredentialIncomplete = func(fieldName string) *CustomError {
		customErr := WrapWithoutError(constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevBPJSCredentialIncomplete+": "+fieldName)
		customErr.Kind = KindConfiguration
		customErr.Code = fieldName
		return customErr
	}
	ErrBPJSSignatureGeneration = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevBPJSSignatureFailed)
		customErr.Kind = KindSignature
		return customErr
	}
	ErrBPJSDecrypt = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientGatewayUnavailable, constvars.ErrDevBPJSDecryptFailed)
		customErr.Kind = KindEncryption
		return customErr
	}
	ErrBPJSDecompress = func(err error) *CustomError {
		inner := BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientGatewayUnavailable, constvars.ErrDevBPJSDecompressFailed)
		inner.Kind = KindDecompression
		customErr := BuildNewCustomError(inner, constvars.StatusBadGateway, constvars.ErrClientGatewayUnavailable, constvars.ErrDevBPJSDecryptFailed)
		customErr.Kind = KindEncryption
		return customErr
	}
	ErrBPJSPayloadNotJSON = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientGatewayUnavailable, constvars.ErrDevBPJSPayloadNotJSON)
		customErr.Kind = KindEncryption
		return customErr
	}
	ErrBPJSUnauthorized = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientGatewayRejectedCredentials, constvars.ErrDevSatusehatTokenRejected)
		customErr.Kind = KindAuthentication
		return customErr
	}
	ErrBPJSGatewayStatus = func(err error, httpStatus int) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientGatewayUnavailable, constvars.ErrDevBPJSGatewayStatus)
		customErr.Kind = KindHTTP
		if httpStatus == constvars.StatusUnauthorized {
			customErr.StatusCode = constvars.StatusUnauthorized
			customErr.ClientMessage = constvars.ErrClientGatewayRejectedCredentials
			customErr.Kind = KindAuthentication
		}
		return customErr
	}
	ErrBPJSGatewayTimeout = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientGatewayUnavailable, constvars.ErrDevBPJSGatewayTimeout)
		customErr.Kind = KindHTTPTimeout
		return customErr
	}
	ErrBPJSSendRequest = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientGatewayUnavailable, constvars.ErrDevSendHTTPRequest)
		customErr.Kind = KindHTTP
		return customErr
	}
	ErrBPJSRateLimited = func(err error, retryAfter time.Duration) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientGatewayTooManyRequests, constvars.ErrDevBPJSRateLimited)
		customErr.Kind = KindRateLimit
		customErr.RetryAfter = retryAfter
		return customErr
	}
)
