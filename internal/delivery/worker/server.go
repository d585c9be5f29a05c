package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"tripbook/config"
	"tripbook/internal/delivery"
	"tripbook/internal/delivery/middleware"
	"tripbook/internal/delivery/worker/handler"
	"tripbook/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// pushBodyLimit caps a Pub/Sub push envelope. Notification payloads are a few KB.
const pushBodyLimit = "256KB"

type mailWorkerServer struct {
	addr   string
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for the mail worker's HTTP surface.
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer builds the worker's HTTP server: a health probe and the push endpoint
// that Pub/Sub (or the local publisher) posts notification tasks to.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)

	e.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "mailworker"})
	})
	e.POST("/push", params.PushHandler.HandlePush, echomiddleware.BodyLimit(pushBodyLimit))

	srv := &mailWorkerServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(workerPort(params.Cfg))),
		logger: params.Logger,
		echo:   e,
	}

	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

// workerPort prefers worker.port so the API and the worker can share a host.
func workerPort(cfg *config.Config) int {
	if cfg.Worker != nil && cfg.Worker.Port != 0 {
		return cfg.Worker.Port
	}

	return cfg.HTTP.Port
}

// Serve blocks until the server is shut down.
func (s *mailWorkerServer) Serve(_ context.Context) error {
	s.logger.Info("Starting mail worker HTTP server", slog.String("host_port", s.addr))
	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *mailWorkerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down mail worker HTTP server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
