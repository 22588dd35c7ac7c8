package messaging

import (
	"hospital-service/internal/app/config"
	"net"
	"net/url"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const connectionName = "hospital-service"

// NewRabbitMQ dials the broker that carries the audit queue. A dropped
// connection is only logged; the audit logger falls back to direct writes.
func NewRabbitMQ(driverConfig *config.DriverConfig, log *zap.Logger) *amqp091.Connection {
	rabbitConfig := driverConfig.RabbitMQ
	connectionURL := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(rabbitConfig.Username, rabbitConfig.Password),
		Host:   net.JoinHostPort(rabbitConfig.Host, rabbitConfig.Port),
		Path:   rabbitConfig.VHost,
	}

	conn, err := amqp091.DialConfig(connectionURL.String(), amqp091.Config{
		Heartbeat:  time.Duration(rabbitConfig.HeartbeatInSeconds) * time.Second,
		Locale:     "en_US",
		Properties: amqp091.Table{"connection_name": connectionName},
	})
	if err != nil {
		log.Fatal("Failed to connect to rabbitMQ",
			zap.String("host", rabbitConfig.Host),
			zap.Error(err),
		)
	}

	closed := conn.NotifyClose(make(chan *amqp091.Error, 1))
	go func() {
		if amqpErr, ok := <-closed; ok && amqpErr != nil {
			log.Warn("RabbitMQ connection closed",
				zap.Int("code", amqpErr.Code),
				zap.String("reason", amqpErr.Reason),
			)
		}
	}()

	log.Info("Successfully connected to rabbitMQ",
		zap.String("host", rabbitConfig.Host),
		zap.String("vhost", rabbitConfig.VHost),
	)
	return conn
}
