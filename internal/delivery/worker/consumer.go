package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"tripbook/config"
	"tripbook/internal/delivery"
	"tripbook/internal/delivery/worker/handler"
	"tripbook/internal/domain/constants"
	"tripbook/internal/infra/pubsub"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

const (
	retryHeader     = "x-retry-count"
	maxRetryBackoff = 30 * time.Second
	maxDialBackoff  = 30 * time.Second
)

type rabbitMQConsumer struct {
	cfg       *config.RabbitMQConfig
	processor *handler.Processor
	logger    *slog.Logger

	mu     sync.Mutex
	conn   *amqp.Connection
	cancel context.CancelFunc
}

// ConsumerParams holds dependencies for the RabbitMQ consumer
type ConsumerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Processor *handler.Processor
}

// NewRabbitMQConsumer creates the queue consumer. It is idle unless the
// rabbitmq provider is configured.
func NewRabbitMQConsumer(params ConsumerParams) (delivery.Delivery, error) {
	if params.Cfg.PubSub == nil || params.Cfg.PubSub.Provider != constants.PubSubProviderRabbitMQ {
		return idleDelivery{}, nil
	}
	if params.Cfg.RabbitMQ == nil || params.Cfg.RabbitMQ.URL == "" {
		return nil, errors.New("rabbitmq url is required for rabbitmq provider")
	}

	c := &rabbitMQConsumer{
		cfg:       params.Cfg.RabbitMQ,
		processor: params.Processor,
		logger:    params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: c.stop,
	})

	return c, nil
}

// Serve consumes until stopped, reconnecting with exponential backoff.
func (c *rabbitMQConsumer) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	c.cancel = cancel
	c.mu.Unlock()

	backoff := time.Second
	for ctx.Err() == nil {
		conn, err := amqp.Dial(c.cfg.URL)
		if err != nil {
			c.logger.Warn("[RabbitMQ] Failed to dial broker", slog.Any("error", err), slog.Duration("retry_in", backoff))
			if !sleep(ctx, backoff) {
				break
			}
			backoff = min(backoff*2, maxDialBackoff)

			continue
		}
		backoff = time.Second

		c.mu.Lock()
		c.conn = conn
		c.mu.Unlock()

		if err := c.consume(ctx, conn); err != nil && ctx.Err() == nil {
			c.logger.Warn("[RabbitMQ] Consume loop ended, reconnecting", slog.Any("error", err))
			_ = conn.Close()
			sleep(ctx, 2*time.Second)
		}
	}

	return nil
}

func (c *rabbitMQConsumer) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return errors.Wrap(err, "channel open")
	}
	defer func() { _ = ch.Close() }()

	if c.cfg.Prefetch > 0 {
		if err := ch.Qos(c.cfg.Prefetch, 0, false); err != nil {
			return errors.Wrap(err, "set qos")
		}
	}

	if err := pubsub.DeclareQueue(ch, c.cfg.Queue); err != nil {
		return err
	}

	msgs, err := ch.Consume(c.cfg.Queue, "", false, false, false, false, nil)
	if err != nil {
		return errors.Wrap(err, "queue consume")
	}

	c.logger.Info("[RabbitMQ] Consuming notification queue", slog.String("queue", c.cfg.Queue))

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := c.handle(ctx, ch, d); err != nil {
				return err
			}
		}
	}
}

// handle acks delivered or permanently failed messages. Retryable failures are
// republished with an incremented retry header until MaxRedelivery is reached.
func (c *rabbitMQConsumer) handle(ctx context.Context, ch *amqp.Channel, d amqp.Delivery) error {
	if c.processor.Process(ctx, d.Body, headerAttributes(d.Headers)) == handler.OutcomeAck {
		return errors.Wrap(d.Ack(false), "ack")
	}

	retries := retryCount(d.Headers)
	if retries >= c.cfg.MaxRedelivery {
		c.logger.Error("[RabbitMQ] Dropping message after max redeliveries",
			slog.String("message_id", d.MessageId),
			slog.Int("retries", retries),
		)

		return errors.Wrap(d.Ack(false), "ack")
	}

	if !sleep(ctx, retryBackoff(retries)) {
		// Shutting down: hand the message back untouched.
		return errors.Wrap(d.Nack(false, true), "nack")
	}

	headers := amqp.Table{}
	for k, v := range d.Headers {
		headers[k] = v
	}
	headers[retryHeader] = int32(retries + 1)

	err := ch.PublishWithContext(ctx, "", c.cfg.Queue, false, false, amqp.Publishing{
		ContentType:   d.ContentType,
		DeliveryMode:  amqp.Persistent,
		MessageId:     d.MessageId,
		CorrelationId: d.CorrelationId,
		Timestamp:     d.Timestamp,
		Headers:       headers,
		Body:          d.Body,
	})
	if err != nil {
		_ = d.Nack(false, true)

		return errors.Wrap(err, "republish")
	}

	return errors.Wrap(d.Ack(false), "ack")
}

func (c *rabbitMQConsumer) stop(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
	}
	if c.conn != nil && !c.conn.IsClosed() {
		return errors.WithStack(c.conn.Close())
	}

	return nil
}

func headerAttributes(headers amqp.Table) map[string]string {
	attributes := make(map[string]string, len(headers))
	for k, v := range headers {
		if s, ok := v.(string); ok {
			attributes[k] = s
		}
	}

	return attributes
}

func retryCount(headers amqp.Table) int {
	switch v := headers[retryHeader].(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	case string:
		var n int
		_, _ = fmt.Sscanf(v, "%d", &n)

		return n
	default:
		return 0
	}
}

func retryBackoff(retries int) time.Duration {
	if retries >= 5 {
		return maxRetryBackoff
	}

	return min(time.Second<<retries, maxRetryBackoff)
}

// sleep waits for d and reports false when ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// idleDelivery is registered when a transport is not configured.
type idleDelivery struct{}

func (idleDelivery) Serve(context.Context) error { return nil }
