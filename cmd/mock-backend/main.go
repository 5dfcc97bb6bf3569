package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"reservation-center/internal/app/config"
	"reservation-center/internal/app/drivers/database"
	"reservation-center/internal/app/drivers/logger"
	"reservation-center/internal/app/models"
	"reservation-center/internal/app/services/core/session"
	"reservation-center/internal/app/services/mockbackend"
	"reservation-center/internal/app/services/shared/redis"
	"reservation-center/internal/pkg/constvars"
	"reservation-center/internal/pkg/utils"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	port := utils.GetEnvString("MOCK_BACKEND_PORT", ":8001")
	store := mockbackend.NewSeededStore(time.Now())

	if utils.GetEnvBool("MOCK_BACKEND_SEED_SESSION", false) {
		err := seedSession(driverConfig, internalConfig, zapLogger)
		if err != nil {
			zapLogger.Warn("mock-backend could not seed a dashboard session", zap.Error(err))
		}
	}

	server := &http.Server{
		Addr:    port,
		Handler: mockbackend.NewServer(store, zapLogger),
	}

	go func() {
		zapLogger.Info("mock-backend listening", zap.String("address", port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("mock-backend failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("mock-backend forced to shutdown: %v", err)
	}
}

// seedSession stores a session for the seeded patient in Redis and logs a
// bearer token the dashboard API accepts for it.
func seedSession(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, zapLogger *zap.Logger) error {
	redisClient := database.NewRedisClient(driverConfig)
	defer redisClient.Close()

	sessionService := session.NewSessionService(redis.NewRedisRepository(redisClient), zapLogger)
	expiration := time.Duration(internalConfig.JWT.ExpTimeInHour) * time.Hour
	seeded := &models.Session{
		SessionID:   uuid.NewString(),
		UserID:      "42",
		PatientID:   "42",
		AccessToken: mockbackend.SeedToken,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := sessionService.CreateSession(ctx, seeded, expiration)
	if err != nil {
		return err
	}

	token, err := utils.GenerateSessionJWT(seeded.SessionID, internalConfig.JWT.Secret, internalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return err
	}

	zapLogger.Info("mock-backend seeded dashboard session",
		zap.String(constvars.LoggingSessionIDKey, seeded.SessionID),
		zap.String("bearer_token", token),
	)
	return nil
}
