package pubsub

import (
	"context"
	"log/slog"

	"tripbook/config"
	"tripbook/internal/domain/constants"
	"tripbook/internal/domain/service"
	"tripbook/internal/infra/auth"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher accepts every task without sending it. With no broker configured the
// outbox relay still marks tasks published, so nothing piles up in development.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishNotificationEvent(_ context.Context, event *service.NotificationEvent) error {
	p.logger.Debug("Notification publishing disabled, dropping task",
		slog.String("task_id", event.TaskID),
		slog.String("kind", string(event.Kind)),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the notification transport named by pubsub.provider.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("No notification transport configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	publisher, err := newPublisher(params.Ctx, params.Config, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("Notification publisher ready", slog.String("provider", cfg.Provider))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing notification publisher", slog.String("provider", cfg.Provider))

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.EventPublisher, error) {
	ps := cfg.PubSub

	switch ps.Provider {
	case constants.PubSubProviderLocal:
		if ps.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}

		return NewLocalHTTPPublisher(ps.LocalEndpoint, auth.NewPushTokenSigner(ps.PushSecret), logger), nil

	case constants.PubSubProviderGoogle:
		if ps.ProjectID == "" || ps.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		return NewGooglePubSubPublisher(ctx, ps.ProjectID, ps.TopicID, logger)

	case constants.PubSubProviderRabbitMQ:
		rmq := cfg.RabbitMQ
		if rmq == nil || rmq.URL == "" || rmq.Queue == "" {
			return nil, errors.New("rabbitmq.url and rabbitmq.queue are required for the rabbitmq provider")
		}

		return NewRabbitMQPublisher(rmq, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", ps.Provider)
	}
}

// Module provides the notification publisher
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
