package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"simrs-service/internal/app/config"
	"simrs-service/internal/app/delivery/http/middlewares"
	"simrs-service/internal/app/delivery/http/routers"
	"simrs-service/internal/app/drivers/database"
	"simrs-service/internal/app/drivers/logger"
	"simrs-service/internal/app/drivers/messaging"
	minioDriver "simrs-service/internal/app/drivers/storage"
	"simrs-service/internal/app/models"
	"simrs-service/internal/app/services/core/claims"
	"simrs-service/internal/app/services/core/icare"
	"simrs-service/internal/app/services/shared/bpjs"
	"simrs-service/internal/app/services/shared/locker"
	"simrs-service/internal/app/services/shared/ratelimiter"
	redisRepo "simrs-service/internal/app/services/shared/redis"
	"simrs-service/internal/app/services/shared/satusehat"
	"simrs-service/internal/app/services/shared/sequence"
	"simrs-service/internal/app/services/shared/sitb"
	"simrs-service/internal/app/services/shared/storage"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogrus(internalConfig)

	if err := internalConfig.ValidateBPJSCredential(); err != nil {
		logrus.Fatalf("Invalid BPJS credential configuration: %v", err)
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	minioClient := minioDriver.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoClient,
		Redis:          redisClient,
		RabbitMQ:       rabbitConn,
		Minio:          minioClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		logrus.Printf("Listening on %s", internalConfig.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logrus.Println("Waiting for pending requests that already reached the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	db := bootstrap.MongoDB.Database(bootstrap.DriverConfig.MongoDB.DbName)

	// Shared infrastructure
	redisRepository := redisRepo.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, bootstrap.Logger)

	counterRepository := sequence.NewCounterMongoRepository(db, bootstrap.Logger)
	sequenceService := sequence.NewSequenceService(counterRepository, bootstrap.Logger)

	documentStorage := storage.NewMinioStorage(bootstrap.Minio, bootstrap.InternalConfig, bootstrap.Logger)

	sitbQueueService, err := sitb.NewSITBQueueService(bootstrap.RabbitMQ, bootstrap.InternalConfig, bootstrap.Logger)
	if err != nil {
		logrus.Fatalf("Failed to initialize SITB submission queue: %v", err)
	}

	// BPJS gateway
	signer, err := bpjs.NewSigner(models.BPJSCredential{
		ConsumerID:   bootstrap.InternalConfig.BPJS.ConsumerID,
		SecretKey:    bootstrap.InternalConfig.BPJS.SecretKey,
		UserKey:      bootstrap.InternalConfig.BPJS.UserKey,
		FacilityCode: bootstrap.InternalConfig.BPJS.FacilityCode,
	}, time.Duration(bootstrap.InternalConfig.BPJS.TimestampFreshnessSeconds)*time.Second)
	if err != nil {
		logrus.Fatalf("Failed to initialize BPJS request signer: %v", err)
	}
	vclaimGateway := bpjs.NewVClaimClient(bootstrap.InternalConfig, signer, resourceLimiter, bootstrap.Logger)

	// SATUSEHAT token exchange
	oauthClient := satusehat.NewOAuthClient(bootstrap.InternalConfig, bootstrap.Logger)
	tokenProvider := satusehat.NewTokenCache(bootstrap.InternalConfig, oauthClient, bootstrap.Logger)
	tokenController := satusehat.NewTokenController(bootstrap.Logger, tokenProvider, bootstrap.InternalConfig)

	// Claims
	claimRepository := claims.NewClaimMongoRepository(db)
	claimUsecase := claims.NewClaimUsecase(
		claimRepository,
		vclaimGateway,
		sitbQueueService,
		documentStorage,
		sequenceService,
		lockerService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	claimController := claims.NewClaimController(bootstrap.Logger, claimUsecase)

	// iCare history access
	historyAccessUsecase := icare.NewHistoryAccessUsecase(vclaimGateway, bootstrap.Logger)
	historyController := icare.NewHistoryController(bootstrap.Logger, historyAccessUsecase)

	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		claimController,
		historyController,
		tokenController,
	)
}
