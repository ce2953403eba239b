package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ConfidenceSetter применяет оценку достоверности к отчету.
type ConfidenceSetter interface {
	SetConfidenceScore(ctx context.Context, reportID uuid.UUID, score float64) error
}

// ScoreConsumer слушает очередь оценок достоверности и применяет их к отчетам.
type ScoreConsumer struct {
	conn        *amqp091.Connection
	ch          *amqp091.Channel
	reports     ConfidenceSetter
	logger      *zap.Logger
	queueName   string
	consumerTag string
	done        chan error // Сигнал для остановки
}

// NewScoreConsumer создает нового консьюмера оценок.
func NewScoreConsumer(
	conn *amqp091.Connection,
	reports ConfidenceSetter,
	queueName string,
	logger *zap.Logger,
) (*ScoreConsumer, error) {
	if conn == nil {
		return nil, fmt.Errorf("RabbitMQ connection is nil")
	}
	if reports == nil {
		return nil, fmt.Errorf("ConfidenceSetter is nil")
	}

	consumerTag := fmt.Sprintf("report_score_consumer_%d", time.Now().UnixNano())

	consumer := &ScoreConsumer{
		conn:        conn,
		reports:     reports,
		logger:      logger.Named("ScoreConsumer").With(zap.String("consumerTag", consumerTag), zap.String("queue", queueName)),
		queueName:   queueName,
		consumerTag: consumerTag,
		done:        make(chan error),
	}

	if err := consumer.setupChannelAndQueue(); err != nil {
		return nil, fmt.Errorf("failed to setup channel and queue: %w", err)
	}

	consumer.logger.Info("ScoreConsumer инициализирован")
	return consumer, nil
}

// setupChannelAndQueue создает канал и объявляет очередь.
func (c *ScoreConsumer) setupChannelAndQueue() error {
	var err error
	c.ch, err = c.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = c.ch.QueueDeclare(
		c.queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		_ = c.ch.Close()
		return fmt.Errorf("failed to declare queue '%s': %w", c.queueName, err)
	}

	// Обрабатываем по одному сообщению за раз
	err = c.ch.Qos(
		1,     // prefetch count
		0,     // prefetch size
		false, // global
	)
	if err != nil {
		_ = c.ch.Close()
		return fmt.Errorf("failed to set QoS: %w", err)
	}

	return nil
}

// StartConsuming запускает процесс получения и обработки сообщений.
// Блокирует выполнение до остановки консьюмера или ошибки канала.
func (c *ScoreConsumer) StartConsuming() error {
	if c.ch == nil {
		return fmt.Errorf("channel is not initialized")
	}
	c.logger.Info("Начало прослушивания очереди оценок отчетов...")

	deliveries, err := c.ch.Consume(
		c.queueName,
		c.consumerTag,
		false, // auto-ack (подтверждаем вручную)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register a consumer: %w", err)
	}

	go c.handleDeliveries(deliveries)

	go func() {
		notifyClose := make(chan *amqp091.Error)
		c.ch.NotifyClose(notifyClose)
		select {
		case chErr := <-notifyClose:
			if chErr != nil {
				c.logger.Error("RabbitMQ channel closed unexpectedly", zap.Error(chErr))
				c.done <- chErr
			} else {
				c.done <- nil
			}
		case <-c.done:
			c.logger.Info("Received stop signal while waiting for channel close")
		}
	}()

	return <-c.done
}

// handleDeliveries обрабатывает входящие сообщения.
func (c *ScoreConsumer) handleDeliveries(deliveries <-chan amqp091.Delivery) {
	for d := range deliveries {
		var payload ReportScorePayload
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			c.logger.Error("Failed to unmarshal score payload, discarding", zap.Error(err))
			_ = d.Nack(false, false) // Битое сообщение не возвращаем в очередь
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := c.reports.SetConfidenceScore(ctx, payload.ReportID, payload.ConfidenceScore)
		cancel()

		if err != nil {
			c.logger.Error("Failed to apply confidence score",
				zap.Error(err), zap.String("reportID", payload.ReportID.String()))
			_ = d.Nack(false, true) // Возвращаем в очередь для повторной попытки
			continue
		}

		c.logger.Info("Confidence score applied",
			zap.String("reportID", payload.ReportID.String()),
			zap.Float64("score", payload.ConfidenceScore))
		_ = d.Ack(false)
	}
	c.logger.Info("Delivery channel closed")
}

// Stop останавливает консьюмера и закрывает канал.
func (c *ScoreConsumer) Stop() error {
	c.logger.Info("Stopping score consumer...")
	if c.ch != nil {
		if err := c.ch.Cancel(c.consumerTag, false); err != nil {
			c.logger.Warn("Failed to cancel consumer", zap.Error(err))
		}
		if err := c.ch.Close(); err != nil {
			return fmt.Errorf("failed to close channel: %w", err)
		}
	}
	select {
	case c.done <- nil:
	default:
	}
	return nil
}
