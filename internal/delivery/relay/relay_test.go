package relay

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"tripbook/config"
	"tripbook/internal/errors"
	mockusecase "tripbook/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOutboxRelay_Disabled(t *testing.T) {
	cfg := &config.Config{Outbox: &config.OutboxConfig{Enabled: false}}

	d := NewOutboxRelay(Params{Lc: fxtest.NewLifecycle(t), Cfg: cfg, Logger: discardLogger()})

	assert.NoError(t, d.Serve(context.Background()))
}

func TestOutboxRelay_RelaysUntilStopped(t *testing.T) {
	cfg := &config.Config{Outbox: &config.OutboxConfig{Enabled: true, Interval: 5 * time.Millisecond}}
	notifier := mockusecase.NewMockNotificationUsecase(t)

	var calls atomic.Int32
	notifier.EXPECT().RelayPending(mock.Anything).RunAndReturn(func(context.Context) (int, error) {
		if calls.Add(1) == 1 {
			return 0, errors.New("store unavailable")
		}

		return 2, nil
	})

	lc := fxtest.NewLifecycle(t)
	d := NewOutboxRelay(Params{Lc: lc, Cfg: cfg, Logger: discardLogger(), Notifier: notifier})
	lc.RequireStart()

	errCh := make(chan error, 1)
	go func() { errCh <- d.Serve(context.Background()) }()

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)

	lc.RequireStop()
	assert.NoError(t, <-errCh)
}
