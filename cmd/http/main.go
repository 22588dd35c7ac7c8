package main

import (
	"context"
	"fmt"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/app/delivery/http/routers"
	"hospital-service/internal/app/drivers/database"
	"hospital-service/internal/app/drivers/logger"
	"hospital-service/internal/app/drivers/messaging"
	"hospital-service/internal/app/drivers/storage"
	"hospital-service/internal/app/services/core/admissions"
	"hospital-service/internal/app/services/core/audit"
	"hospital-service/internal/app/services/core/auth"
	"hospital-service/internal/app/services/core/health"
	"hospital-service/internal/app/services/core/labs"
	"hospital-service/internal/app/services/core/patients"
	"hospital-service/internal/app/services/core/session"
	"hospital-service/internal/app/services/core/users"
	"hospital-service/internal/app/services/core/wards"
	"hospital-service/internal/app/services/shared/auditqueue"
	"hospital-service/internal/app/services/shared/locker"
	"hospital-service/internal/app/services/shared/metrics"
	"hospital-service/internal/app/services/shared/redis"
	minioStorage "hospital-service/internal/app/services/shared/storage"
	"hospital-service/internal/pkg/constvars"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const auditQueuePrefetch = 50

func main() {
	startedAt := time.Now()

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, log)
	minioClient := storage.NewMinio(driverConfig, internalConfig.Minio.BucketName)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	err := bootstrapingTheApp(workerCtx, bootstrap, startedAt)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server started", zap.String("address", server.Addr), zap.String("version", internalConfig.App.Version))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release connections", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(ctx context.Context, bootstrap *config.Bootstrap, startedAt time.Time) error {
	dbName := bootstrap.DriverConfig.MongoDB.DbName
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	metricsCollector := metrics.NewCollector()

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	counterMongoRepository := patients.NewCounterMongoRepository(bootstrap.MongoDB, dbName)
	wardMongoRepository := wards.NewWardMongoRepository(bootstrap.MongoDB, dbName)
	admissionMongoRepository := admissions.NewAdmissionMongoRepository(bootstrap.MongoDB, dbName)
	labTestMongoRepository := labs.NewLabTestMongoRepository(bootstrap.MongoDB, dbName)
	testRegistrationMongoRepository := labs.NewTestRegistrationMongoRepository(bootstrap.MongoDB, dbName)
	testResultMongoRepository := labs.NewTestResultMongoRepository(bootstrap.MongoDB, dbName)
	auditLogMongoRepository := audit.NewAuditLogMongoRepository(bootstrap.MongoDB, dbName)

	err := ensureIndexes(ctx, log,
		userMongoRepository,
		patientMongoRepository,
		wardMongoRepository,
		admissionMongoRepository,
		labTestMongoRepository,
		testRegistrationMongoRepository,
		testResultMongoRepository,
		auditLogMongoRepository,
	)
	if err != nil {
		return err
	}

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository)
	lockerService := locker.NewLockService(redisRepository, log)
	reportStorage := minioStorage.NewMinioStorage(bootstrap.Minio, internalConfig.Minio.BucketName)

	// Audit pipeline
	auditQueueService, err := auditqueue.NewService(
		bootstrap.RabbitMQ,
		log,
		internalConfig.Audit.QueueName,
		internalConfig.Audit.DeadLetterQueueName,
		auditQueuePrefetch,
	)
	if err != nil {
		return err
	}
	log.Info("Audit queue declared", zap.String(constvars.LoggingQueueNameKey, auditQueueService.QueueName()))

	auditLogger := audit.NewLogger(
		auditQueueService,
		auditLogMongoRepository,
		metricsCollector,
		log,
		internalConfig.Audit.BufferSize,
		time.Duration(internalConfig.Audit.PublishTimeoutInSec)*time.Second,
	)
	auditWorker := audit.NewWorker(log, auditQueueService, auditLogMongoRepository, metricsCollector)

	// Consumer stops first so nothing is acked after the logger drains.
	stopWorker := auditWorker.Start(ctx)
	stopLogger := auditLogger.Start(ctx)
	bootstrap.WorkerStops = append(bootstrap.WorkerStops, stopWorker, stopLogger, func() {
		err := auditQueueService.Close()
		if err != nil {
			log.Warn("Failed to close audit queue channel", zap.Error(err))
		}
	})

	// Usecases
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService, auditLogger, internalConfig, log)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, counterMongoRepository, auditLogger, metricsCollector, log)
	wardUsecase := wards.NewWardUsecase(wardMongoRepository, admissionMongoRepository, auditLogger, log)
	admissionUsecase := admissions.NewAdmissionUsecase(
		admissionMongoRepository,
		wardMongoRepository,
		wardUsecase,
		patientMongoRepository,
		lockerService,
		auditLogger,
		metricsCollector,
		internalConfig,
		log,
	)
	labUsecase := labs.NewLabUsecase(
		labTestMongoRepository,
		testRegistrationMongoRepository,
		testResultMongoRepository,
		patientMongoRepository,
		reportStorage,
		auditLogger,
		metricsCollector,
		internalConfig,
		log,
	)
	auditUsecase := audit.NewAuditUsecase(auditLogMongoRepository, log)
	healthUsecase := health.NewHealthUsecase(internalConfig.App.Version, startedAt, []health.Dependency{
		{Name: "mongodb", Ping: func(ctx context.Context) error { return bootstrap.MongoDB.Ping(ctx, readpref.Primary()) }},
		{Name: "redis", Ping: redisRepository.Ping},
		{Name: "minio", Ping: reportStorage.Ping},
	}, log)

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(log, authUsecase, metricsCollector, internalConfig)

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewareInstance, &routers.Controllers{
		Auth:      controllers.NewAuthController(log, authUsecase),
		Patient:   controllers.NewPatientController(log, patientUsecase),
		Ward:      controllers.NewWardController(log, wardUsecase),
		Admission: controllers.NewAdmissionController(log, admissionUsecase),
		Lab:       controllers.NewLabController(log, labUsecase),
		Audit:     controllers.NewAuditController(log, auditUsecase),
		Health:    controllers.NewHealthController(log, healthUsecase),
	})

	return nil
}

type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

func ensureIndexes(ctx context.Context, log *zap.Logger, repositories ...indexer) error {
	for _, repository := range repositories {
		err := repository.EnsureIndexes(ctx)
		if err != nil {
			log.Error("Failed to ensure mongo indexes", zap.Error(err))
			return err
		}
	}
	return nil
}
