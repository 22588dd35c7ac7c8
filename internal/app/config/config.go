package config

import (
	"hospital-service/internal/pkg/utils"
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
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "hospital"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
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
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password:           utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
			VHost:              utils.GetEnvString("RABBITMQ_VHOST", "/"),
			HeartbeatInSeconds: utils.GetEnvInt("RABBITMQ_HEARTBEAT_IN_SECONDS", 10),
		},
		Minio: Minio{
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
			Env:                         utils.GetEnvString("APP_ENV", "development"),
			Port:                        utils.GetEnvString("APP_PORT", "5000"),
			Version:                     utils.GetEnvString("APP_VERSION", "1.0.0"),
			Address:                     utils.GetEnvString("APP_ADDRESS", "0.0.0.0"),
			EndpointPrefix:              utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			CorsAllowedOrigins:          splitCSV(utils.GetEnvString("APP_CORS_ALLOWED_ORIGINS", "*")),
			MaxRequests:                 utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds:   utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeoutInSeconds:    utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:     utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte:  utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 10),
			WardLockExpirationInSeconds: utils.GetEnvInt("APP_WARD_LOCK_EXPIRATION_IN_SECONDS", 5),
			LabReportMaxUploadSizeInMB:  utils.GetEnvInt64("APP_LAB_REPORT_MAX_UPLOAD_SIZE_IN_MB", 10),
			LabReportURLExpiryInMinutes: utils.GetEnvInt("APP_LAB_REPORT_URL_EXPIRY_IN_MINUTES", 15),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "change-me"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Audit: Audit{
			QueueName:           utils.GetEnvString("AUDIT_QUEUE_NAME", "hospital_audit_log_queue"),
			DeadLetterQueueName: utils.GetEnvString("AUDIT_DLQ_NAME", "hospital_audit_log_queue_dlq"),
			BufferSize:          utils.GetEnvInt("AUDIT_BUFFER_SIZE", 1024),
			PublishTimeoutInSec: utils.GetEnvInt("AUDIT_PUBLISH_TIMEOUT_IN_SECONDS", 5),
		},
		Minio: AppMinio{
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "lab-reports"),
		},
		RateLimit: RateLimit{
			LoginRequestsPerMinute: utils.GetEnvInt("RATE_LIMIT_LOGIN_REQUESTS_PER_MINUTE", 5),
			LoginBurst:             utils.GetEnvInt("RATE_LIMIT_LOGIN_BURST", 5),
		},
		Seed: Seed{
			AdminUsername: utils.GetEnvString("SEED_ADMIN_USERNAME", "admin"),
			AdminEmail:    utils.GetEnvString("SEED_ADMIN_EMAIL", "admin@hospital.local"),
			AdminPassword: utils.GetEnvString("SEED_ADMIN_PASSWORD", ""),
			AdminFullName: utils.GetEnvString("SEED_ADMIN_FULL_NAME", "System Administrator"),
		},
	}
}

func splitCSV(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
