package repository

import (
	"context"
	"errors"

	"tripbook/internal/domain/entity"
)

// ErrTaskNotFound is returned when no outbox task exists for an id.
var ErrTaskNotFound = errors.New("notification task not found")

// OutboxRepository persists notification tasks until they reach the broker.
type OutboxRepository interface {
	// Create stores a new pending task and assigns its TaskID when empty.
	Create(ctx context.Context, task *entity.NotificationTask) error

	// MarkPublished flags the task as handed to the broker.
	MarkPublished(ctx context.Context, taskID string) error

	// RecordFailure increments the attempt counter and stores the error.
	// The task moves to failed once attempts reach maxAttempts.
	RecordFailure(ctx context.Context, taskID, reason string, maxAttempts int) error

	// ListPending returns up to limit pending tasks, oldest first.
	ListPending(ctx context.Context, limit int) ([]*entity.NotificationTask, error)
}
