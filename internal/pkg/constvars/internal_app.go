package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY   ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY ContextKey = "session_data"
	CONTEXT_CLIENT_IP_KEY    ContextKey = "client_ip"
	CONTEXT_LOCALE_KEY       ContextKey = "locale"
)

const (
	REQUEST_ID_PREFIX = "SIMRS_SVC_"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

// Locales supported by user-facing messages.
const (
	LocaleEnglish    = "en"
	LocaleIndonesian = "id"
)

const (
	EnvironmentSandbox    = "sandbox"
	EnvironmentProduction = "production"
)
