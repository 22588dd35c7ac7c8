package audit

import (
	"context"
	"errors"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

type memoryAuditRepository struct {
	mu        sync.Mutex
	entries   map[string]models.AuditLog
	insertErr error
}

func newMemoryAuditRepository() *memoryAuditRepository {
	return &memoryAuditRepository{entries: make(map[string]models.AuditLog)}
}

func (r *memoryAuditRepository) EnsureIndexes(ctx context.Context) error { return nil }

func (r *memoryAuditRepository) Insert(ctx context.Context, entry *models.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.insertErr != nil {
		return r.insertErr
	}
	r.entries[entry.ID] = *entry
	return nil
}

func (r *memoryAuditRepository) FindAll(ctx context.Context, filter models.AuditLogFilter) ([]models.AuditLog, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]models.AuditLog, 0, len(r.entries))
	for _, entry := range r.entries {
		if filter.PatientID != "" && entry.PatientID != filter.PatientID {
			continue
		}
		result = append(result, entry)
	}
	return result, len(result), nil
}

func (r *memoryAuditRepository) Update(ctx context.Context, id string, changes map[string]any) error {
	return exceptions.ErrMongoDBImmutableDocument(constvars.MongoCollectionAuditLogs)
}

func (r *memoryAuditRepository) Delete(ctx context.Context, id string) error {
	return exceptions.ErrMongoDBImmutableDocument(constvars.MongoCollectionAuditLogs)
}

func (r *memoryAuditRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

type fakePublisher struct {
	mu        sync.Mutex
	published []models.AuditLog
	err       error
}

func (p *fakePublisher) Publish(ctx context.Context, entry *models.AuditLog) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, *entry)
	return nil
}

func (p *fakePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.published)
}

type fakeQueueConsumer struct {
	mu          sync.Mutex
	deliveries  chan amqp.Delivery
	deadLetters [][]byte
	dlqErr      error
	cancelled   bool
}

func newFakeQueueConsumer() *fakeQueueConsumer {
	return &fakeQueueConsumer{deliveries: make(chan amqp.Delivery)}
}

func (c *fakeQueueConsumer) Consume() (<-chan amqp.Delivery, error) {
	return c.deliveries, nil
}

func (c *fakeQueueConsumer) CancelConsume() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelled = true
	return nil
}

func (c *fakeQueueConsumer) PublishToDeadLetter(ctx context.Context, body []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dlqErr != nil {
		return c.dlqErr
	}
	c.deadLetters = append(c.deadLetters, body)
	return nil
}

func (c *fakeQueueConsumer) deadLetterCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.deadLetters)
}

// fakeAcknowledger records how each delivery tag was settled.
type fakeAcknowledger struct {
	mu      sync.Mutex
	acked   []uint64
	nacked  []uint64
	requeue []bool
}

func (a *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.acked = append(a.acked, tag)
	return nil
}

func (a *fakeAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nacked = append(a.nacked, tag)
	a.requeue = append(a.requeue, requeue)
	return nil
}

func (a *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

func (a *fakeAcknowledger) settled() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.acked) + len(a.nacked)
}

var errBrokerDown = errors.New("broker down")
