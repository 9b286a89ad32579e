package exceptions

import (
	"errors"
	"fmt"
	"runtime"
	"time"
)

// ErrorKind tags every CustomError with its place in the integration error
// taxonomy so callers can branch without string matching.
type ErrorKind string

const (
	KindConfiguration      ErrorKind = "configuration"
	KindAuthentication     ErrorKind = "authentication"
	KindSignature          ErrorKind = "signature-generation"
	KindEncryption         ErrorKind = "encryption"
	KindDecompression      ErrorKind = "decompression"
	KindHTTP               ErrorKind = "http"
	KindHTTPTimeout        ErrorKind = "http-timeout"
	KindRateLimit          ErrorKind = "rate-limit"
	KindInvalidTransition  ErrorKind = "invalid-status-transition"
	KindBusinessRule       ErrorKind = "business-rule-violation"
	KindDuplicateReference ErrorKind = "duplicate-source-reference"
	KindRepository         ErrorKind = "repository"
	KindValidation         ErrorKind = "validation"
	KindInternal           ErrorKind = "internal"
)

type CustomError struct {
	StatusCode    int       `json:"status_code"`
	Success       bool      `json:"success"`
	Kind          ErrorKind `json:"kind,omitempty"`
	Code          string    `json:"code,omitempty"`
	ClientMessage string    `json:"message"`
	DevMessage    string    `json:"-"`
	Location      Location  `json:"-"`
	// RetryAfter is only set for rate-limit errors that carried a wait hint.
	RetryAfter time.Duration `json:"-"`
	cause      error
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.cause
}

// KindOf reports the taxonomy kind of err, or KindInternal for foreign errors.
func KindOf(err error) ErrorKind {
	var customErr *CustomError
	if errors.As(err, &customErr) && customErr.Kind != "" {
		return customErr.Kind
	}
	return KindInternal
}

func WrapWithoutError(statusCode int, clientMessage, devMessage string) *CustomError {
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      getLocation(2),
	}
}

func WrapWithError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    fmt.Sprintf("%s: %s", devMessage, err.Error()),
		Location:      getLocation(2),
		cause:         err,
	}
}

func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	customErr := &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      getLocation(3),
	}
	if err != nil {
		customErr.DevMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
		customErr.cause = err
	}
	return customErr
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         "unknown",
			Line:         0,
			FunctionName: "unknown",
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
