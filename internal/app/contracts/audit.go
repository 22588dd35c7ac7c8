package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AuditLogRepository is write once: Update and Delete always fail.
type AuditLogRepository interface {
	EnsureIndexes(ctx context.Context) error
	Insert(ctx context.Context, entry *models.AuditLog) error
	FindAll(ctx context.Context, filter models.AuditLogFilter) ([]models.AuditLog, int, error)
	Update(ctx context.Context, id string, changes map[string]any) error
	Delete(ctx context.Context, id string) error
}

// AuditLogger records an entry without blocking the caller and never fails it.
type AuditLogger interface {
	Record(ctx context.Context, entry models.AuditLog)
}

type AuditPublisher interface {
	Publish(ctx context.Context, entry *models.AuditLog) error
}

// AuditQueueConsumer is the broker side the audit worker drains.
type AuditQueueConsumer interface {
	Consume() (<-chan amqp.Delivery, error)
	CancelConsume() error
	PublishToDeadLetter(ctx context.Context, body []byte) error
}

type AuditUsecase interface {
	ListAuditLogs(ctx context.Context, query *requests.AuditLogQuery) ([]models.AuditLog, int, error)
}
