package audit

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/app/services/shared/metrics"
	"hospital-service/internal/pkg/constvars"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Worker drains the audit queue into the audit_logs collection.
type Worker struct {
	log        *zap.Logger
	source     contracts.AuditQueueConsumer
	repository contracts.AuditLogRepository
	metrics    *metrics.Collector
	stopOnce   sync.Once
	stop       chan struct{}
}

func NewWorker(log *zap.Logger, source contracts.AuditQueueConsumer, repository contracts.AuditLogRepository, metricsCollector *metrics.Collector) *Worker {
	return &Worker{
		log:        log,
		source:     source,
		repository: repository,
		metrics:    metricsCollector,
		stop:       make(chan struct{}),
	}
}

// Start begins consuming. It returns a stop function that cancels the
// consumer and waits for the message in hand to finish.
func (w *Worker) Start(ctx context.Context) (stop func()) {
	deliveries, err := w.source.Consume()
	if err != nil {
		w.log.Error("audit.Worker.Start consume failed", zap.Error(err))
		return func() {}
	}

	stopped := make(chan struct{})
	w.log.Info("audit.Worker started")

	go func() {
		defer close(stopped)
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.stop:
				return
			case delivery, ok := <-deliveries:
				if !ok {
					w.log.Warn("audit.Worker delivery channel closed")
					return
				}
				w.handle(ctx, delivery)
			}
		}
	}()

	return func() {
		w.stopOnce.Do(func() {
			if err := w.source.CancelConsume(); err != nil {
				w.log.Warn("audit.Worker cancel consume failed", zap.Error(err))
			}
			close(w.stop)
		})
		<-stopped
	}
}

func (w *Worker) handle(ctx context.Context, delivery amqp.Delivery) {
	var entry models.AuditLog
	if err := json.Unmarshal(delivery.Body, &entry); err != nil || entry.Action == "" || entry.ResourceType == "" {
		w.log.Warn("audit.Worker malformed payload, moving to dead letter queue", zap.Error(err))
		w.deadLetter(ctx, delivery)
		return
	}

	if err := w.repository.Insert(ctx, &entry); err != nil {
		w.log.Error("audit.Worker insert failed, moving to dead letter queue",
			zap.String(constvars.LoggingRequestIDKey, entry.RequestID),
			zap.Error(err),
		)
		w.deadLetter(ctx, delivery)
		return
	}

	if err := delivery.Ack(false); err != nil {
		w.log.Error("audit.Worker ack failed", zap.Error(err))
		return
	}
	w.metrics.AuditEntriesTotal.WithLabelValues(stageStored).Inc()
}

// deadLetter parks the raw payload and acks the original. If the dead letter
// publish fails the message goes back on the queue.
func (w *Worker) deadLetter(ctx context.Context, delivery amqp.Delivery) {
	if err := w.source.PublishToDeadLetter(ctx, delivery.Body); err != nil {
		w.log.Error("audit.Worker dead letter publish failed", zap.Error(err))
		if err := delivery.Nack(false, true); err != nil {
			w.log.Error("audit.Worker nack failed", zap.Error(err))
		}
		return
	}
	if err := delivery.Ack(false); err != nil {
		w.log.Error("audit.Worker ack failed", zap.Error(err))
		return
	}
	w.metrics.AuditEntriesTotal.WithLabelValues(stageDeadLettered).Inc()
}
