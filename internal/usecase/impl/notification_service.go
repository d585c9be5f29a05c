package impl

import (
	"context"
	"log/slog"
	"time"

	"tripbook/config"
	deliverycontext "tripbook/internal/delivery/context"
	"tripbook/internal/domain/entity"
	"tripbook/internal/domain/repository"
	"tripbook/internal/domain/service"
	"tripbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// backgroundPublishTimeout bounds the first publish attempt made after Enqueue returns.
const backgroundPublishTimeout = 30 * time.Second

type notificationService struct {
	outboxRepo  repository.OutboxRepository
	publisher   service.EventPublisher
	batchSize   int
	maxAttempts int
	logger      *slog.Logger
	now         func() time.Time
	// dispatch runs the first publish off the request path.
	dispatch func(func())
}

// NewNotificationService creates the outbox backed notification service.
func NewNotificationService(
	outboxRepo repository.OutboxRepository,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		outboxRepo:  outboxRepo,
		publisher:   publisher,
		batchSize:   cfg.Outbox.BatchSize,
		maxAttempts: cfg.Outbox.MaxAttempts,
		logger:      logger,
		now:         time.Now,
		dispatch:    func(f func()) { go f() },
	}
}

// Enqueue persists the task and returns. The first publish runs in the
// background so the caller never waits on the broker or the mail worker.
func (s *notificationService) Enqueue(ctx context.Context, task *entity.NotificationTask) error {
	if task.TaskID == "" {
		task.TaskID = uuid.New().String()
	}
	if task.RequestID == "" {
		task.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	task.Status = entity.OutboxPending
	task.Attempts = 0
	task.CreatedAt = s.now()

	if err := s.outboxRepo.Create(ctx, task); err != nil {
		return errors.Wrap(err, "failed to persist notification task")
	}

	// The task is durable from here on; a failed publish is retried by the relay.
	// The request context is detached so the publish outlives the response.
	pubCtx := context.WithoutCancel(ctx)
	s.dispatch(func() {
		pubCtx, cancel := context.WithTimeout(pubCtx, backgroundPublishTimeout)
		defer cancel()

		if err := s.publish(pubCtx, task); err != nil {
			loggerFrom(pubCtx, s.logger).Warn("Notification publish deferred to relay",
				slog.String("task_id", task.TaskID),
				slog.String("kind", string(task.Kind)),
				slog.Any("error", err),
			)
		}
	})

	return nil
}

// RelayPending republishes one batch of pending tasks.
func (s *notificationService) RelayPending(ctx context.Context) (int, error) {
	tasks, err := s.outboxRepo.ListPending(ctx, s.batchSize)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list pending notification tasks")
	}

	published := 0
	for _, task := range tasks {
		if ctx.Err() != nil {
			return published, errors.WithStack(ctx.Err())
		}

		if err := s.publish(ctx, task); err != nil {
			s.logger.Warn("Relay publish failed",
				slog.String("task_id", task.TaskID),
				slog.Int("attempts", task.Attempts+1),
				slog.Any("error", err),
			)

			continue
		}
		published++
	}

	return published, nil
}

// publish hands the task to the broker and records the outcome on the outbox document.
func (s *notificationService) publish(ctx context.Context, task *entity.NotificationTask) error {
	pubErr := s.publisher.PublishNotificationEvent(ctx, service.NewNotificationEvent(task))
	if pubErr != nil {
		if err := s.outboxRepo.RecordFailure(ctx, task.TaskID, pubErr.Error(), s.maxAttempts); err != nil {
			s.logger.Error("Failed to record publish failure", slog.String("task_id", task.TaskID), slog.Any("error", err))
		}

		return errors.Wrap(pubErr, "publish notification event")
	}

	if err := s.outboxRepo.MarkPublished(ctx, task.TaskID); err != nil {
		// The broker already has the message; a duplicate send on relay is acceptable.
		s.logger.Error("Failed to mark notification task published", slog.String("task_id", task.TaskID), slog.Any("error", err))
	}

	return nil
}

// enqueueNotification is used by the other use cases; delivery problems never fail their request.
func enqueueNotification(ctx context.Context, notifier usecase.NotificationUsecase, logger *slog.Logger, task *entity.NotificationTask) {
	if task.Recipient == "" {
		return
	}

	if err := notifier.Enqueue(ctx, task); err != nil {
		loggerFrom(ctx, logger).Error("Failed to enqueue notification",
			slog.String("kind", string(task.Kind)),
			slog.String("recipient", task.Recipient),
			slog.Any("error", err),
		)
	}
}
