package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"reservation-center/internal/app/config"
	"reservation-center/internal/app/delivery/http/controllers"
	"reservation-center/internal/app/delivery/http/middlewares"
	"reservation-center/internal/app/delivery/http/routers"
	"reservation-center/internal/app/drivers/database"
	"reservation-center/internal/app/drivers/logger"
	"reservation-center/internal/app/drivers/messaging"
	"reservation-center/internal/app/drivers/storage"
	"reservation-center/internal/app/services/backend"
	"reservation-center/internal/app/services/backend/bills"
	"reservation-center/internal/app/services/backend/records"
	"reservation-center/internal/app/services/backend/reservations"
	"reservation-center/internal/app/services/backend/users"
	"reservation-center/internal/app/services/core/aggregates"
	"reservation-center/internal/app/services/core/dashboard"
	"reservation-center/internal/app/services/core/identity"
	reservationTransitions "reservation-center/internal/app/services/core/reservations"
	"reservation-center/internal/app/services/core/session"
	"reservation-center/internal/app/services/shared/notifier"
	"reservation-center/internal/app/services/shared/redis"
	avatarStorage "reservation-center/internal/app/services/shared/storage"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConnection,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error bootstraping the app: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("address", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error closing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig

	// Session
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository, bootstrap.Logger)

	// Avatars are presigned only when object storage is configured.
	var presigner avatarStorage.ObjectPresigner
	if bootstrap.Minio != nil {
		presigner = bootstrap.Minio
	}
	avatars := avatarStorage.NewAvatarStorage(
		presigner,
		internalConfig.App.MinioAvatarBucketName,
		time.Duration(internalConfig.App.MinioPresignedUrlExpiryMin)*time.Minute,
		bootstrap.Logger,
	)

	// Notifications
	notifierService, err := notifier.NewNotifierService(bootstrap.RabbitMQ, internalConfig.App.RabbitMQNotificationQueue, bootstrap.Logger)
	if err != nil {
		return err
	}

	// Backend
	backendClient := backend.NewClient(internalConfig.Backend, bootstrap.Logger)
	userBackendClient := users.NewUserBackendClient(backendClient, bootstrap.Logger)
	reservationBackendClient := reservations.NewReservationBackendClient(backendClient, bootstrap.Logger)
	recordBackendClient := records.NewRecordBackendClient(backendClient, bootstrap.Logger)
	billBackendClient := bills.NewBillBackendClient(backendClient, bootstrap.Logger)

	// Dashboard
	requestTimeout := time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
	registry := dashboard.NewRegistry(dashboard.Dependencies{
		IdentityResolver:             identity.NewIdentityResolver(userBackendClient, avatars, bootstrap.Logger),
		AggregateLoader:              aggregates.NewAggregateLoader(reservationBackendClient, recordBackendClient, billBackendClient, bootstrap.Logger),
		ReservationTransitionService: reservationTransitions.NewTransitionService(reservationBackendClient, bootstrap.Logger),
		NotifierService:              notifierService,
		Log:                          bootstrap.Logger,
	}, time.Duration(internalConfig.Dashboard.IdleTTLInMinutes)*time.Minute)

	// Eviction runs on its own so expired sessions are dropped with polling off.
	if internalConfig.Dashboard.EvictionIntervalInSeconds > 0 {
		bootstrap.EvictionStop = registry.StartEviction(
			context.Background(),
			time.Duration(internalConfig.Dashboard.EvictionIntervalInSeconds)*time.Second,
		)
	}

	if internalConfig.Dashboard.PollingIntervalInSeconds > 0 {
		poller := dashboard.NewPoller(
			bootstrap.Logger,
			registry,
			time.Duration(internalConfig.Dashboard.PollingIntervalInSeconds)*time.Second,
			requestTimeout,
		)
		bootstrap.PollerStop = poller.Start(context.Background())
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, registry, internalConfig)

	dashboardController := controllers.NewDashboardController(bootstrap.Logger, registry, sessionService, requestTimeout)
	healthController := controllers.NewHealthController(internalConfig.App.Version)

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares, dashboardController, healthController)
	return nil
}
