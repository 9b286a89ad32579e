package config

import (
	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/exceptions"
	"simrs-service/internal/pkg/utils"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "simrs"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:               utils.GetEnvString("APP_ENV", "development"),
			Port:              utils.GetEnvString("APP_PORT", ":8080"),
			Version:           utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:          utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
			EndpointPrefix:    utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:       utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			SITBQueueName:     utils.GetEnvString("APP_SITB_QUEUE_NAME", "sitb_submission_queue"),
			SITBAPIKeyHash:    utils.GetEnvString("APP_SITB_API_KEY_HASH", ""),
			ClaimBucketName:   utils.GetEnvString("APP_CLAIM_BUCKET_NAME", "claim-documents"),
			BlockTimeInMinute: utils.GetEnvInt("APP_BLOCK_TIME_IN_MINUTE", 5),
		},
		BPJS: BPJS{
			BaseURL:                   utils.GetEnvString("BPJS_BASE_URL", "https://apijkn-dev.bpjs-kesehatan.go.id/vclaim-rest-dev"),
			ConsumerID:                utils.GetEnvString("BPJS_CONSUMER_ID", ""),
			SecretKey:                 utils.GetEnvString("BPJS_SECRET_KEY", ""),
			UserKey:                   utils.GetEnvString("BPJS_USER_KEY", ""),
			FacilityCode:              utils.GetEnvString("BPJS_FACILITY_CODE", ""),
			Environment:               utils.GetEnvString("BPJS_ENVIRONMENT", constvars.EnvironmentSandbox),
			TimestampFreshnessSeconds: utils.GetEnvInt("BPJS_TIMESTAMP_FRESHNESS_SECONDS", constvars.BPJSTimestampFreshnessSeconds),
			RequestTimeoutSeconds:     utils.GetEnvInt("BPJS_REQUEST_TIMEOUT_SECONDS", 30),
			MaxCallsPerMinute:         utils.GetEnvInt("BPJS_MAX_CALLS_PER_MINUTE", 60),
		},
		Satusehat: Satusehat{
			AuthBaseURL:           utils.GetEnvString("SATUSEHAT_AUTH_BASE_URL", "https://api-satusehat-dev.dto.kemkes.go.id/oauth2/v1"),
			ClientID:              utils.GetEnvString("SATUSEHAT_CLIENT_ID", ""),
			ClientSecret:          utils.GetEnvString("SATUSEHAT_CLIENT_SECRET", ""),
			Environment:           utils.GetEnvString("SATUSEHAT_ENVIRONMENT", constvars.EnvironmentSandbox),
			RequestTimeoutSeconds: utils.GetEnvInt("SATUSEHAT_REQUEST_TIMEOUT_SECONDS", 30),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
		},
	}
}

// ValidateBPJSCredential fails fast at startup when the credential block is
// incomplete; a half-configured credential would only surface later as signed
// calls the gateway rejects.
func (c *InternalConfig) ValidateBPJSCredential() error {
	fields := map[string]string{
		"BPJS_CONSUMER_ID":   c.BPJS.ConsumerID,
		"BPJS_SECRET_KEY":    c.BPJS.SecretKey,
		"BPJS_FACILITY_CODE": c.BPJS.FacilityCode,
	}
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			return exceptions.ErrBPJSCredentialIncomplete(name)
		}
	}
	return nil
}
