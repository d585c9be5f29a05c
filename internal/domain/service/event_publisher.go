package service

import (
	"context"

	"tripbook/internal/domain/entity"
)

// NotificationEvent is the message handed to the mail worker.
type NotificationEvent struct {
	RequestID      string                  `json:"request_id,omitempty"` // For distributed tracing
	TaskID         string                  `json:"task_id"`
	Kind           entity.NotificationKind `json:"kind"`
	Recipient      string                  `json:"recipient"`
	RecipientName  string                  `json:"recipient_name,omitempty"`
	TemplateParams map[string]string       `json:"template_params,omitempty"`
}

// NewNotificationEvent builds the broker message for an outbox task.
func NewNotificationEvent(task *entity.NotificationTask) *NotificationEvent {
	return &NotificationEvent{
		RequestID:      task.RequestID,
		TaskID:         task.TaskID,
		Kind:           task.Kind,
		Recipient:      task.Recipient,
		RecipientName:  task.RecipientName,
		TemplateParams: task.TemplateParams,
	}
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification event for async processing
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
