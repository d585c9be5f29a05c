// Package context carries per-request tracing data (request ID and a logger
// bound to it) from the transport layer down to the usecases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type tracingKey int

const (
	requestIDKey tracingKey = iota
	loggerKey
)

// echoRequestIDKey is the echo.Context store key for the request ID.
const echoRequestIDKey = "request_id"

// HeaderXRequestID is read from incoming requests and echoed on responses.
const HeaderXRequestID = "X-Request-Id"

// GetRequestID returns the ID the middleware stored on c. Handlers reached
// without the middleware (unit tests, probes) get a fresh UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID stores the request ID on c.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestIDFromContext returns the request ID on ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithRequestID returns ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault is GetLogger with a fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithTracing binds requestID to ctx together with a child of base that logs
// it on every record. Booking, relay and worker code all enter through here.
func WithTracing(ctx context.Context, base *slog.Logger, requestID string) (context.Context, *slog.Logger) {
	reqLogger := base.With(slog.String("request_id", requestID))
	ctx = context.WithValue(WithRequestID(ctx, requestID), loggerKey, reqLogger)

	return ctx, reqLogger
}
