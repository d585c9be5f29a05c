package usecase

import (
	"context"

	"tripbook/internal/domain/entity"
	"tripbook/internal/domain/service"
)

// NotificationUsecase defines the durable email outbox.
type NotificationUsecase interface {
	// Enqueue persists the task and tries to publish it right away.
	// A publish failure leaves the task pending for the relay.
	Enqueue(ctx context.Context, task *entity.NotificationTask) error

	// RelayPending republishes pending tasks and returns how many were published.
	RelayPending(ctx context.Context) (int, error)
}

// MailDeliveryUsecase defines the worker side of the outbox.
type MailDeliveryUsecase interface {
	// Deliver renders and sends the email for one event.
	// Errors wrapping service.ErrMailRejected are permanent.
	Deliver(ctx context.Context, event *service.NotificationEvent) error
}
