package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ReportEventPublisher defines the interface for publishing report events
// to the scoring queue.
type ReportEventPublisher interface {
	PublishReportSubmitted(ctx context.Context, payload ReportSubmittedPayload) error
}

var _ ReportEventPublisher = (*rabbitMQPublisher)(nil)

type rabbitMQPublisher struct {
	channel   *amqp.Channel
	queueName string
	logger    *zap.Logger
}

// NewRabbitMQPublisher opens a channel and declares the target queue.
// Паблишер объявляет очередь сам, чтобы не зависеть от порядка запуска сервисов.
// Параметры очереди должны совпадать с параметрами у консьюмера-скоринга.
func NewRabbitMQPublisher(conn *amqp.Connection, queueName string, logger *zap.Logger) (ReportEventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("report publisher: failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("report publisher: failed to declare queue '%s': %w", queueName, err)
	}

	return &rabbitMQPublisher{
		channel:   ch,
		queueName: queueName,
		logger:    logger.Named("ReportPublisher").With(zap.String("queue", queueName)),
	}, nil
}

// PublishReportSubmitted sends the payload as a persistent JSON message.
func (p *rabbitMQPublisher) PublishReportSubmitted(ctx context.Context, payload ReportSubmittedPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal report submitted payload: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(pubCtx,
		"",          // exchange (default)
		p.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		p.logger.Error("Failed to publish report submitted event",
			zap.Error(err), zap.String("reportID", payload.ReportID.String()))
		return fmt.Errorf("failed to publish report submitted event: %w", err)
	}

	p.logger.Info("Report submitted event published", zap.String("reportID", payload.ReportID.String()))
	return nil
}
