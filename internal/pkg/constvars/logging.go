package constvars

const (
	LoggingRequestIDKey       = "request_id"
	LoggingClaimNumberKey     = "claim_number"
	LoggingSepNumberKey       = "sep_number"
	LoggingFacilityCodeKey    = "facility_code"
	LoggingEnvironmentKey     = "environment"
	LoggingStatusFromKey      = "status_from"
	LoggingStatusToKey        = "status_to"
	LoggingGrouperEngineKey   = "grouper_engine"
	LoggingSequenceKey        = "sequence"
	LoggingRedisKey           = "redis_key"
	LoggingLockValueKey       = "lock_value"
	LoggingLockExpirationKey  = "lock_expiration"
	LoggingQueueNameKey       = "queue_name"
	LoggingBucketNameKey      = "bucket_name"
	LoggingHTTPStatusKey      = "http_status"
	LoggingTokenExpiresAtKey  = "token_expires_at"
	LoggingRetryAfterKey      = "retry_after"
	LoggingCardNumberMaskKey  = "card_number_masked"
	LoggingAccessPurposeKey   = "access_purpose"
	LoggingResponseLengthKey  = "response_length"
	LoggingDocumentObjectName = "document_object_name"
	LoggingMethodKey          = "method"
	LoggingEndpointKey        = "endpoint"
	LoggingRemoteAddrKey      = "remote_addr"
	LoggingUserAgentKey       = "user_agent"
	LoggingDurationKey        = "duration"
	LoggingStatusCodeKey      = "status_code"
	LoggingSuccessKey         = "success"
	LoggingLocaleKey          = "locale"
)
