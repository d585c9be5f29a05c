package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tripbook/config"
	"tripbook/internal/domain/constants"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewRabbitMQConsumer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("idle for other providers", func(t *testing.T) {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}

		d, err := NewRabbitMQConsumer(ConsumerParams{Lc: fxtest.NewLifecycle(t), Cfg: cfg, Logger: logger})

		require.NoError(t, err)
		assert.NoError(t, d.Serve(context.Background()))
	})

	t.Run("url required", func(t *testing.T) {
		cfg := &config.Config{
			PubSub:   &config.PubSubConfig{Provider: constants.PubSubProviderRabbitMQ},
			RabbitMQ: &config.RabbitMQConfig{Queue: "notifications"},
		}

		_, err := NewRabbitMQConsumer(ConsumerParams{Lc: fxtest.NewLifecycle(t), Cfg: cfg, Logger: logger})

		assert.Error(t, err)
	})
}

func TestRetryCount(t *testing.T) {
	assert.Equal(t, 0, retryCount(nil))
	assert.Equal(t, 2, retryCount(amqp.Table{retryHeader: int32(2)}))
	assert.Equal(t, 4, retryCount(amqp.Table{retryHeader: int64(4)}))
	assert.Equal(t, 3, retryCount(amqp.Table{retryHeader: "3"}))
}

func TestRetryBackoff(t *testing.T) {
	assert.Equal(t, time.Second, retryBackoff(0))
	assert.Equal(t, 4*time.Second, retryBackoff(2))
	assert.Equal(t, maxRetryBackoff, retryBackoff(9))
}

func TestHeaderAttributes(t *testing.T) {
	attrs := headerAttributes(amqp.Table{"request_id": "r-1", "task_id": "t-1", retryHeader: int32(1)})

	assert.Equal(t, map[string]string{"request_id": "r-1", "task_id": "t-1"}, attrs)
}
