package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Client
		Redis          *redis.Client
		RabbitMQ       *amqp091.Connection
		Minio          *minio.Client
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	InternalConfig struct {
		App       App
		BPJS      BPJS
		Satusehat Satusehat
		JWT       JWT
	}

	App struct {
		Env               string
		Port              string
		Version           string
		Timezone          string
		EndpointPrefix    string
		MaxRequests       int
		ShutdownTimeout   int
		SITBQueueName     string
		SITBAPIKeyHash    string
		ClaimBucketName   string
		BlockTimeInMinute int
	}

	BPJS struct {
		BaseURL                   string
		ConsumerID                string
		SecretKey                 string
		UserKey                   string
		FacilityCode              string
		Environment               string
		TimestampFreshnessSeconds int
		RequestTimeoutSeconds     int
		MaxCallsPerMinute         int
	}

	Satusehat struct {
		AuthBaseURL           string
		ClientID              string
		ClientSecret          string
		Environment           string
		RequestTimeoutSeconds int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
