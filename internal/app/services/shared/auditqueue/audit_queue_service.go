package auditqueue

import (
	"context"
	"fmt"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const consumerTag = "hospital-audit-consumer"

// Service publishes audit entries to a durable queue and hands deliveries
// to the consumer worker. Publishing and consuming use separate channels.
type Service struct {
	publishCh *amqp.Channel
	consumeCh *amqp.Channel
	log       *zap.Logger
	queueName string
	dlqName   string
	confirms  chan amqp.Confirmation
	mu        sync.Mutex
}

func NewService(conn *amqp.Connection, log *zap.Logger, queueName, dlqName string, prefetch int) (*Service, error) {
	publishCh, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	for _, name := range []string{queueName, dlqName} {
		_, err = publishCh.QueueDeclare(
			name,  // name
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,   // args
		)
		if err != nil {
			return nil, err
		}
	}

	if err := publishCh.Confirm(false); err != nil {
		return nil, err
	}

	consumeCh, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	if prefetch <= 0 {
		prefetch = 1
	}
	if err := consumeCh.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	return &Service{
		publishCh: publishCh,
		consumeCh: consumeCh,
		log:       log,
		queueName: queueName,
		dlqName:   dlqName,
		confirms:  publishCh.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

func (s *Service) QueueName() string {
	return s.queueName
}

// Publish stores entry as a persistent message and waits for the broker confirm.
func (s *Service) Publish(ctx context.Context, entry *models.AuditLog) error {
	body, err := json.Marshal(entry)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return s.publishRaw(ctx, s.queueName, body)
}

// PublishToDeadLetter parks a payload the consumer could not decode.
func (s *Service) PublishToDeadLetter(ctx context.Context, body []byte) error {
	return s.publishRaw(ctx, s.dlqName, body)
}

// Consume starts delivery of audit messages without auto-ack.
func (s *Service) Consume() (<-chan amqp.Delivery, error) {
	deliveries, err := s.consumeCh.Consume(
		s.queueName, // queue
		consumerTag, // consumer
		false,       // autoAck
		false,       // exclusive
		false,       // noLocal
		false,       // noWait
		nil,         // args
	)
	if err != nil {
		return nil, exceptions.ErrRabbitMQConsumeMessage(err, s.queueName)
	}
	return deliveries, nil
}

// CancelConsume stops the broker from sending further deliveries; the
// delivery channel closes once in-flight messages are drained.
func (s *Service) CancelConsume() error {
	return s.consumeCh.Cancel(consumerTag, false)
}

func (s *Service) Close() error {
	if err := s.consumeCh.Close(); err != nil {
		return err
	}
	return s.publishCh.Close()
}

func (s *Service) publishRaw(ctx context.Context, queue string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}
	if err := s.publishCh.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queue)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), queue)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), queue)
	}

	s.log.Debug("auditqueue.Service published message",
		zap.String(constvars.LoggingQueueNameKey, queue),
	)
	return nil
}
