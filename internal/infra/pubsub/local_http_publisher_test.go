package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tripbook/internal/domain/entity"
	"tripbook/internal/domain/service"
	"tripbook/internal/infra/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishNotificationEvent(t *testing.T) {
	signer := auth.NewPushTokenSigner("push-secret")
	var received PushMessage
	var authHeader, requestID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assert.NoError(t, signer.Verify(strings.TrimPrefix(authHeader, "Bearer "), "http://"+r.Host+r.URL.Path))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL+"/push", signer, discardLogger())
	event := &service.NotificationEvent{
		RequestID:      "req-9",
		TaskID:         "task-1",
		Kind:           entity.NotificationBookingConfirmed,
		Recipient:      "asha@example.com",
		TemplateParams: map[string]string{"booking_id": "bk-1"},
	}

	require.NoError(t, publisher.PublishNotificationEvent(context.Background(), event))

	assert.Equal(t, "req-9", requestID)
	assert.True(t, strings.HasPrefix(authHeader, "Bearer "))
	assert.Equal(t, "task-1", received.Message.MessageID)
	assert.Equal(t, "booking_confirmed", received.Message.Attributes["kind"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.NotificationEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, nil, discardLogger())

	err := publisher.PublishNotificationEvent(context.Background(), &service.NotificationEvent{TaskID: "t"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
