package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tripbook/config"
	"tripbook/internal/delivery/worker/handler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestWorkerPort(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.Port = 8080
	assert.Equal(t, 8080, workerPort(cfg))

	cfg.Worker = &config.WorkerConfig{Port: 8081}
	assert.Equal(t, 8081, workerPort(cfg))
}

func TestNewServer_Health(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.Port = 8080
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	d, err := NewServer(ServerParams{
		Lc:          fxtest.NewLifecycle(t),
		Cfg:         cfg,
		Logger:      logger,
		PushHandler: &handler.PushHandler{},
	})
	require.NoError(t, err)

	srv, ok := d.(*mailWorkerServer)
	require.True(t, ok)
	assert.Equal(t, "0.0.0.0:8080", srv.addr)

	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mailworker")
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
