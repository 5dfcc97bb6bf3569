package config

import (
	"reservation-center/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Enabled:  utils.GetEnvBool("MINIO_ENABLED", false),
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Shanghai"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RabbitMQNotificationQueue:  utils.GetEnvString("APP_RABBITMQ_NOTIFICATION_QUEUE", "reservation-center.notifications"),
			MinioAvatarBucketName:      utils.GetEnvString("APP_MINIO_AVATAR_BUCKET_NAME", "avatars"),
			MinioPresignedUrlExpiryMin: utils.GetEnvInt("APP_MINIO_PRESIGNED_URL_EXPIRY_IN_MINUTES", 60),
		},
		Backend: Backend{
			BaseUrl:                 utils.GetEnvString("BACKEND_BASE_URL", "http://localhost:8001"),
			RequestTimeoutInSeconds: utils.GetEnvInt("BACKEND_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RetryCount:              utils.GetEnvInt("BACKEND_RETRY_COUNT", 2),
			RateLimitPerSecond:      utils.GetEnvInt("BACKEND_RATE_LIMIT_PER_SECOND", 50),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
		},
		Dashboard: Dashboard{
			PollingIntervalInSeconds:  utils.GetEnvInt("DASHBOARD_POLLING_INTERVAL_IN_SECONDS", 1000),
			IdleTTLInMinutes:          utils.GetEnvInt("DASHBOARD_IDLE_TTL_IN_MINUTES", 30),
			EvictionIntervalInSeconds: utils.GetEnvInt("DASHBOARD_EVICTION_INTERVAL_IN_SECONDS", 60),
		},
	}
}
