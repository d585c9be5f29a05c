package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"tripbook/internal/domain/service"
	"tripbook/internal/infra/auth"

	"github.com/pkg/errors"
)

// localHTTPPublisher posts notification tasks straight to the mail worker's /push
// endpoint in the Pub/Sub push envelope, so development needs no broker.
type localHTTPPublisher struct {
	endpoint   string
	signer     *auth.PushTokenSigner
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

const (
	localPushTimeout      = 10 * time.Second
	localSubscriptionName = "projects/local/subscriptions/tripbook-notifications"
)

// PushMessage is the envelope Google Pub/Sub uses when pushing to HTTP endpoints
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a local HTTP publisher. A nil signer sends unauthenticated pushes.
func NewLocalHTTPPublisher(endpoint string, signer *auth.PushTokenSigner, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		signer:   signer,
		httpClient: &http.Client{Timeout: localPushTimeout},
		logger: logger,
		now:    time.Now,
	}
}

// PublishNotificationEvent posts the event in a push envelope to the worker
func (p *localHTTPPublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	pushMsg := PushMessage{
		Subscription: localSubscriptionName,
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = event.TaskID
	pushMsg.Message.PublishTime = p.now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = eventAttributes(event)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	if p.signer != nil {
		token, err := p.signer.Sign(auth.PushAudience(req))
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	// 503 means the worker wants a redelivery; the outbox relay provides it.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("mail worker rejected task %s with status %d", event.TaskID, resp.StatusCode)
	}

	p.logger.Debug("Notification task published",
		slog.String("transport", "local"),
		slog.String("task_id", event.TaskID),
		slog.String("kind", string(event.Kind)),
	)

	return nil
}

// Close is a no-op.
func (p *localHTTPPublisher) Close() error {
	return nil
}
