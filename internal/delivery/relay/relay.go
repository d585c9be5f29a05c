// Package relay runs the outbox relay that republishes pending notification tasks.
package relay

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tripbook/config"
	"tripbook/internal/delivery"
	deliverycontext "tripbook/internal/delivery/context"
	"tripbook/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type outboxRelay struct {
	interval time.Duration
	notifier usecase.NotificationUsecase
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// Params holds dependencies for the outbox relay
type Params struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	Notifier usecase.NotificationUsecase
}

// NewOutboxRelay creates the relay. It returns immediately from Serve when the outbox is disabled.
func NewOutboxRelay(params Params) delivery.Delivery {
	oc := params.Cfg.Outbox
	if oc == nil || !oc.Enabled || oc.Interval <= 0 {
		params.Logger.Info("Outbox relay disabled")

		return disabled{}
	}

	r := &outboxRelay{
		interval: oc.Interval,
		notifier: params.Notifier,
		logger:   params.Logger,
		done:     make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: r.stop,
	})

	return r
}

// Serve relays pending tasks every interval until stopped.
func (r *outboxRelay) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	r.mu.Lock()
	r.cancel = cancel
	r.mu.Unlock()
	defer close(r.done)

	r.logger.Info("Starting outbox relay", slog.Duration("interval", r.interval))

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *outboxRelay) tick(ctx context.Context) {
	ctx, logger := deliverycontext.WithTracing(ctx, r.logger, uuid.New().String())

	published, err := r.notifier.RelayPending(ctx)
	if err != nil {
		logger.Error("Outbox relay pass failed", slog.Any("error", err))

		return
	}
	if published > 0 {
		logger.Info("Outbox relay republished tasks", slog.Int("published", published))
	}
}

func (r *outboxRelay) stop(ctx context.Context) error {
	r.mu.Lock()
	cancel := r.cancel
	r.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-r.done:
	case <-ctx.Done():
	}

	return nil
}

type disabled struct{}

func (disabled) Serve(context.Context) error { return nil }
