package exceptions

import (
	"fmt"
	"simrs-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
		customErr.Kind = KindValidation
		return customErr
	}
	ErrURLParamValidation = func(err error, paramName string) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamValidationFailed, paramName))
		customErr.Kind = KindValidation
		return customErr
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotParseMultipart = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseMultipart)
		customErr.Kind = KindValidation
		return customErr
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
		customErr.Kind = KindHTTPTimeout
		return customErr
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}

	// Auth middleware
	ErrTokenMissing = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
		customErr.Kind = KindAuthentication
		return customErr
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
		customErr.Kind = KindAuthentication
		return customErr
	}
	ErrInvalidAPIKey = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevInvalidAPIKey)
		customErr.Kind = KindAuthentication
		return customErr
	}

	// HTTP client plumbing
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBFindDocument)
		customErr.Kind = KindRepository
		return customErr
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBInsertDocument)
		customErr.Kind = KindRepository
		return customErr
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBUpdateDocument)
		customErr.Kind = KindRepository
		return customErr
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBDeleteDocument)
		customErr.Kind = KindRepository
		return customErr
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
		customErr.Kind = KindRepository
		return customErr
	}
	ErrRedisSet = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
		customErr.Kind = KindRepository
		return customErr
	}
	ErrRedisDelete = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
		customErr.Kind = KindRepository
		return customErr
	}
	ErrRedisIncrement = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisIncrementValue)
		customErr.Kind = KindRepository
		return customErr
	}
	ErrRedisUnlock = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
		customErr.Kind = KindRepository
		return customErr
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublish, queueName))
		customErr.Kind = KindRepository
		return customErr
	}

	// Minio
	ErrMinioPutObject = func(err error, bucketName string) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToPutObject, bucketName))
		customErr.Kind = KindRepository
		return customErr
	}
	ErrMinioPresignObject = func(err error, bucketName string) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToPresign, bucketName))
		customErr.Kind = KindRepository
		return customErr
	}
)
