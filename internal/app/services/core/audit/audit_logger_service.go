package audit

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/app/services/shared/metrics"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultBufferSize     = 1024
	defaultPublishTimeout = 5 * time.Second

	stageBuffered     = "buffered"
	stageRejected     = "rejected"
	stagePublished    = "published"
	stageStoredDirect = "stored_direct"
	stageLost         = "lost"
	stageStored       = "stored"
	stageDeadLettered = "dead_lettered"
)

// Logger buffers audit entries in memory and forwards them from a single
// background goroutine. Record never blocks: a full buffer drops the entry.
type Logger struct {
	publisher      contracts.AuditPublisher
	repository     contracts.AuditLogRepository
	metrics        *metrics.Collector
	log            *zap.Logger
	buffer         chan models.AuditLog
	publishTimeout time.Duration
	quit           chan struct{}
	stopOnce       sync.Once
}

// NewLogger builds the audit logger. A nil publisher stores entries straight
// into the repository.
func NewLogger(
	publisher contracts.AuditPublisher,
	repository contracts.AuditLogRepository,
	metricsCollector *metrics.Collector,
	log *zap.Logger,
	bufferSize int,
	publishTimeout time.Duration,
) *Logger {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	if publishTimeout <= 0 {
		publishTimeout = defaultPublishTimeout
	}
	return &Logger{
		publisher:      publisher,
		repository:     repository,
		metrics:        metricsCollector,
		log:            log,
		buffer:         make(chan models.AuditLog, bufferSize),
		publishTimeout: publishTimeout,
		quit:           make(chan struct{}),
	}
}

func (l *Logger) Record(ctx context.Context, entry models.AuditLog) {
	requestID := utils.GetRequestID(ctx)
	if entry.RequestID == "" {
		entry.RequestID = requestID
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	if entry.ResourceType.RequiresPatient() && entry.PatientID == "" {
		l.metrics.AuditEntriesTotal.WithLabelValues(stageRejected).Inc()
		l.log.Warn("audit.Logger.Record entry without patient id rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAuditActionKey, string(entry.Action)),
			zap.String(constvars.LoggingAuditResourceKey, string(entry.ResourceType)),
		)
		return
	}

	select {
	case l.buffer <- entry:
		l.metrics.AuditEntriesTotal.WithLabelValues(stageBuffered).Inc()
	default:
		l.metrics.AuditBufferDropped.Inc()
		l.log.Warn("audit.Logger.Record buffer full, entry dropped",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAuditActionKey, string(entry.Action)),
			zap.String(constvars.LoggingAuditResourceKey, string(entry.ResourceType)),
		)
	}
}

// Start runs the forwarding loop. The returned stop function flushes whatever
// is still buffered and waits for the loop to exit.
func (l *Logger) Start(ctx context.Context) (stop func()) {
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		for {
			select {
			case <-ctx.Done():
				l.flush()
				return
			case <-l.quit:
				l.flush()
				return
			case entry := <-l.buffer:
				l.forward(entry)
			}
		}
	}()

	return func() {
		l.stopOnce.Do(func() {
			close(l.quit)
		})
		<-stopped
	}
}

func (l *Logger) flush() {
	for {
		select {
		case entry := <-l.buffer:
			l.forward(entry)
		default:
			return
		}
	}
}

// forward publishes one entry, falling back to a direct insert when the
// broker is unavailable.
func (l *Logger) forward(entry models.AuditLog) {
	ctx, cancel := context.WithTimeout(context.Background(), l.publishTimeout)
	defer cancel()

	if l.publisher != nil {
		err := l.publisher.Publish(ctx, &entry)
		if err == nil {
			l.metrics.AuditEntriesTotal.WithLabelValues(stagePublished).Inc()
			return
		}
		l.metrics.AuditPublishFailures.Inc()
		l.log.Warn("audit.Logger.forward publish failed, storing directly",
			zap.String(constvars.LoggingRequestIDKey, entry.RequestID),
			zap.Error(err),
		)
	}

	err := l.repository.Insert(ctx, &entry)
	if err != nil {
		l.metrics.AuditEntriesTotal.WithLabelValues(stageLost).Inc()
		l.log.Error("audit.Logger.forward entry lost",
			zap.String(constvars.LoggingRequestIDKey, entry.RequestID),
			zap.String(constvars.LoggingAuditActionKey, string(entry.Action)),
			zap.String(constvars.LoggingAuditResourceKey, string(entry.ResourceType)),
			zap.String("resource_id", entry.ResourceID),
			zap.Error(err),
		)
		return
	}
	l.metrics.AuditEntriesTotal.WithLabelValues(stageStoredDirect).Inc()
}
