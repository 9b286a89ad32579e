package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"numeric":  "must be a number",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"len":      "must be %s characters long",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"url":      "must be a valid URL",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
	"gt":    true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientGatewayUnavailable            = "the insurance gateway is temporarily unavailable"
	ErrClientGatewayTooManyRequests        = "too many requests to the insurance gateway, please retry later"
	ErrClientGatewayRejectedCredentials    = "the insurance gateway rejected this facility's credentials"
	ErrClientClaimNotFound                 = "claim not found"
	ErrClientDuplicateEpisodeReference     = "another active claim is already bound to this episode reference"
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevValidationFailed          = "request validation failed"
	ErrDevCannotParseJSON           = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseMultipart      = "cannot parse multipart form or read uploaded file"
	ErrDevCannotMarshalJSON         = "cannot convert struct or other data types to JSON"
	ErrDevServerDeadlineExceeded    = "server process exceeded its deadline"
	ErrDevServerProcess             = "server cannot process the request"
	ErrDevCreateHTTPRequest         = "cannot create HTTP request object"
	ErrDevSendHTTPRequest           = "cannot send HTTP request"
	ErrDevURLParamValidationFailed  = "invalid %s url parameter"
	ErrDevAuthTokenMissing          = "authorization token missing from request"
	ErrDevAuthTokenInvalidOrExpired = "authorization token invalid or expired"
	ErrDevAuthSigningMethod         = "unexpected JWT signing method"
	ErrDevInvalidAPIKey             = "api key does not match the configured callback key"

	ErrDevBPJSCredentialIncomplete  = "bpjs credential is missing one or more required fields"
	ErrDevBPJSSignatureFailed       = "hmac signature primitive failed"
	ErrDevBPJSDecryptFailed         = "cannot decrypt vclaim response payload"
	ErrDevBPJSDecompressFailed      = "cannot decompress vclaim response payload"
	ErrDevBPJSPayloadNotJSON        = "decrypted vclaim payload is not well-formed JSON"
	ErrDevBPJSGatewayStatus         = "vclaim gateway returned non-success status"
	ErrDevBPJSGatewayTimeout        = "vclaim gateway call timed out"
	ErrDevBPJSRateLimited           = "vclaim gateway throttled the request"

	ErrDevSatusehatTokenRequest     = "token endpoint request failed"
	ErrDevSatusehatTokenRejected    = "token endpoint rejected client credentials"
	ErrDevSatusehatTokenIncomplete  = "token response missing access_token or expires_in"
	ErrDevSatusehatTokenParseFailed = "cannot parse token endpoint response parameters"

	ErrDevClaimNotFound            = "claim does not exist in the repository"
	ErrDevClaimDuplicateSEP        = "a non-cancelled claim already holds this SEP number"
	ErrDevClaimInvalidTransition   = "claim status transition is not allowed"
	ErrDevClaimBusinessRule        = "claim business rule violated"
	ErrDevClaimLockNotAcquired     = "could not acquire claim transition lock"
	ErrDevSequenceIncrementFailed  = "cannot atomically increment period sequence counter"
	ErrDevMongoDBFindDocument      = "mongodb failed to find document"
	ErrDevMongoDBInsertDocument    = "mongodb failed to insert document"
	ErrDevMongoDBUpdateDocument    = "mongodb failed to update document"
	ErrDevMongoDBDeleteDocument    = "mongodb failed to delete document"
	ErrDevRedisGetData             = "redis cannot get the data"
	ErrDevRedisSetData             = "redis cannot set the data"
	ErrDevRedisDeleteData          = "redis cannot delete the data"
	ErrDevRedisIncrementValue      = "redis cannot increment the value"
	ErrDevRedisUnlock              = "redis lock cannot be released"
	ErrDevRabbitMQPublish          = "rabbitmq failed to publish message to %s"
	ErrDevMinioFailedToPutObject   = "minio failed to store object into bucket %s"
	ErrDevMinioFailedToPresign     = "minio failed to presign object url for bucket %s"
)
