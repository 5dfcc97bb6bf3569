package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Redis          *redis.Client
		RabbitMQ       *amqp091.Connection
		Minio          *minio.Client
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
		// PollerStop, when set, stops the dashboard poller on shutdown.
		PollerStop func()
		// EvictionStop, when set, stops the dashboard eviction loop on shutdown.
		EvictionStop func()
	}

	InternalConfig struct {
		App       App
		Backend   Backend
		JWT       JWT
		Dashboard Dashboard
	}

	DriverConfig struct {
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		RequestTimeoutInSeconds    int
		RabbitMQNotificationQueue  string
		MinioAvatarBucketName      string
		MinioPresignedUrlExpiryMin int
	}

	Backend struct {
		BaseUrl                 string
		RequestTimeoutInSeconds int
		RetryCount              int
		RateLimitPerSecond      int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	Dashboard struct {
		PollingIntervalInSeconds  int
		IdleTTLInMinutes          int
		EvictionIntervalInSeconds int
	}

	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Enabled  bool
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Enabled  bool
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)
