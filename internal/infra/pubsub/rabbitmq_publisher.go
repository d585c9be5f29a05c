package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"tripbook/config"
	"tripbook/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// rabbitMQPublisher implements EventPublisher on a durable AMQP queue.
// The channel is reopened on the next publish after a failure.
type rabbitMQPublisher struct {
	url    string
	queue  string
	logger *slog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewRabbitMQPublisher dials the broker and declares the notification queue.
func NewRabbitMQPublisher(cfg *config.RabbitMQConfig, logger *slog.Logger) (service.EventPublisher, error) {
	p := &rabbitMQPublisher{
		url:    cfg.URL,
		queue:  cfg.Queue,
		logger: logger,
	}

	if err := p.connect(); err != nil {
		return nil, err
	}

	logger.Info("RabbitMQ publisher initialized", slog.String("queue", cfg.Queue))

	return p, nil
}

// connect must be called with mu held or before the publisher is shared.
func (p *rabbitMQPublisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return errors.Wrap(err, "failed to dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return errors.Wrap(err, "failed to open rabbitmq channel")
	}

	if err := DeclareQueue(ch, p.queue); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return err
	}

	p.conn = conn
	p.ch = ch

	return nil
}

func (p *rabbitMQPublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{}
	for k, v := range eventAttributes(event) {
		headers[k] = v
	}

	msg := amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		MessageId:     event.TaskID,
		CorrelationId: event.RequestID,
		Timestamp:     time.Now().UTC(),
		Headers:       headers,
		Body:          body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil || p.ch.IsClosed() {
		_ = p.closeLocked()
		if err := p.connect(); err != nil {
			return err
		}
	}

	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		_ = p.closeLocked()

		return errors.Wrap(err, "failed to publish to rabbitmq")
	}

	p.logger.Info("[RabbitMQ] Event published",
		slog.String("task_id", event.TaskID),
		slog.String("kind", string(event.Kind)),
	)

	return nil
}

func (p *rabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.closeLocked()
}

func (p *rabbitMQPublisher) closeLocked() error {
	var err error
	if p.ch != nil {
		err = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		if cerr := p.conn.Close(); cerr != nil && err == nil {
			err = cerr
		}
		p.conn = nil
	}
	if errors.Is(err, amqp.ErrClosed) {
		return nil
	}

	return errors.WithStack(err)
}

// DeclareQueue declares the durable notification queue. Publisher and consumer share it.
func DeclareQueue(ch *amqp.Channel, queue string) error {
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "failed to declare queue %s", queue)
	}

	return nil
}
