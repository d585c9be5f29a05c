package firestoredb

import (
	"context"
	"slices"
	"time"

	"tripbook/internal/domain/constants"
	"tripbook/internal/domain/entity"
	"tripbook/internal/domain/repository"
	"tripbook/internal/errors"
	"tripbook/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
)

type outboxRepository struct {
	client *firestore.Client
	now    func() time.Time
}

// NewOutboxRepository creates the Firestore backed notification outbox.
func NewOutboxRepository(client *firestore.Client) repository.OutboxRepository {
	return &outboxRepository{client: client, now: time.Now}
}

func (repo *outboxRepository) tasks() *firestore.CollectionRef {
	return repo.client.Collection(constants.CollectionNotificationOutbox)
}

func (repo *outboxRepository) Create(ctx context.Context, task *entity.NotificationTask) error {
	if task.TaskID == "" {
		task.TaskID = uuid.New().String()
	}

	if _, err := repo.tasks().Doc(task.TaskID).Create(ctx, fromTaskDomain(task)); err != nil {
		return errors.Wrap(err, "failed to create notification task")
	}

	return nil
}

func (repo *outboxRepository) MarkPublished(ctx context.Context, taskID string) error {
	_, err := repo.tasks().Doc(taskID).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(entity.OutboxPublished)},
		{Path: "publishedAt", Value: repo.now()},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrTaskNotFound
		}

		return errors.Wrap(err, "failed to mark notification task published")
	}

	return nil
}

func (repo *outboxRepository) RecordFailure(ctx context.Context, taskID, reason string, maxAttempts int) error {
	_, err := updateInTx(ctx, repo.client, repo.tasks().Doc(taskID), repository.ErrTaskNotFound,
		toTaskDomain, fromTaskDomain,
		func(task *entity.NotificationTask) error {
			task.Attempts++
			task.LastError = reason
			if maxAttempts > 0 && task.Attempts >= maxAttempts {
				task.Status = entity.OutboxFailed
			}

			return nil
		})

	return err
}

// ListPending returns the oldest pending tasks. Sorting happens here to avoid a composite index.
func (repo *outboxRepository) ListPending(ctx context.Context, limit int) ([]*entity.NotificationTask, error) {
	snaps, err := repo.tasks().Where("status", "==", string(entity.OutboxPending)).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending notification tasks")
	}

	tasks, err := decodeAll(snaps, toTaskDomain)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(tasks, func(a, b *entity.NotificationTask) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	if limit > 0 && len(tasks) > limit {
		tasks = tasks[:limit]
	}

	return tasks, nil
}

func toTaskDomain(id string, m *model.NotificationTaskModel) *entity.NotificationTask {
	return &entity.NotificationTask{
		TaskID:         id,
		Kind:           entity.NotificationKind(m.Kind),
		Recipient:      m.Recipient,
		RecipientName:  m.RecipientName,
		TemplateParams: m.TemplateParams,
		Status:         entity.OutboxStatus(m.Status),
		Attempts:       m.Attempts,
		LastError:      m.LastError,
		RequestID:      m.RequestID,
		CreatedAt:      m.CreatedAt,
		PublishedAt:    m.PublishedAt,
	}
}

func fromTaskDomain(t *entity.NotificationTask) *model.NotificationTaskModel {
	return &model.NotificationTaskModel{
		Kind:           string(t.Kind),
		Recipient:      t.Recipient,
		RecipientName:  t.RecipientName,
		TemplateParams: t.TemplateParams,
		Status:         string(t.Status),
		Attempts:       t.Attempts,
		LastError:      t.LastError,
		RequestID:      t.RequestID,
		CreatedAt:      t.CreatedAt,
		PublishedAt:    t.PublishedAt,
	}
}
