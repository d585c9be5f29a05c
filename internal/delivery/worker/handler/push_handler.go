// Package handler contains the mail worker's message handlers.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"

	deliverycontext "tripbook/internal/delivery/context"
	"tripbook/internal/domain/service"
	"tripbook/internal/infra/auth"
	"tripbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// Outcome says what the broker should do with a message after processing.
type Outcome int

const (
	// OutcomeAck removes the message: it was delivered or can never be.
	OutcomeAck Outcome = iota
	// OutcomeRetry asks the broker to redeliver later.
	OutcomeRetry
)

// Processor delivers notification events independent of the transport.
type Processor struct {
	mailUC usecase.MailDeliveryUsecase
	logger *slog.Logger
}

// NewProcessor creates the transport independent event processor.
func NewProcessor(mailUC usecase.MailDeliveryUsecase, logger *slog.Logger) *Processor {
	return &Processor{mailUC: mailUC, logger: logger}
}

// Process decodes and delivers one event payload and classifies the result.
func (p *Processor) Process(ctx context.Context, data []byte, attributes map[string]string) Outcome {
	var event service.NotificationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		p.logger.Error("[Worker] Failed to parse notification event", slog.Any("error", err))

		return OutcomeAck
	}

	requestID := extractRequestID(ctx, attributes, &event)
	ctx, reqLogger := deliverycontext.WithTracing(ctx, p.logger, requestID)

	reqLogger.Info("[Worker] Processing notification event",
		slog.String("task_id", event.TaskID),
		slog.String("kind", string(event.Kind)),
	)

	if err := p.mailUC.Deliver(ctx, &event); err != nil {
		retryable := !errors.Is(err, service.ErrMailRejected)
		reqLogger.Error("[Worker] Failed to deliver notification",
			slog.String("task_id", event.TaskID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return OutcomeRetry
		}

		return OutcomeAck
	}

	return OutcomeAck
}

// extractRequestID picks the request id from attributes, then the event, then the context.
func extractRequestID(ctx context.Context, attributes map[string]string, event *service.NotificationEvent) string {
	if requestID, ok := attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// PushHandler handles Pub/Sub push messages carrying notification events
type PushHandler struct {
	verifier  auth.PushVerifier
	processor *Processor
	logger    *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Verifier  auth.PushVerifier
	Processor *Processor
	Logger    *slog.Logger
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		verifier:  params.Verifier,
		processor: params.Processor,
		logger:    params.Logger,
	}
}

// HandlePush answers 503 for retryable failures so the broker redelivers,
// and 200 for everything else to prevent infinite retries.
func (h *PushHandler) HandlePush(c echo.Context) error {
	if err := h.verifier.VerifyPush(c.Request()); err != nil {
		h.logger.Warn("[Worker] Invalid push token", slog.Any("error", err))

		return c.NoContent(http.StatusUnauthorized)
	}

	var pushMsg PubSubMessage
	if err := json.NewDecoder(c.Request().Body).Decode(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if h.processor.Process(c.Request().Context(), data, pushMsg.Message.Attributes) == OutcomeRetry {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}
