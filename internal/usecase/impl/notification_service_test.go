package impl

import (
	"context"
	"testing"
	"time"

	"tripbook/config"
	deliverycontext "tripbook/internal/delivery/context"
	"tripbook/internal/domain/entity"
	"tripbook/internal/domain/service"
	mockRepo "tripbook/internal/mocks/repository"
	mockSvc "tripbook/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (*notificationService, *mockRepo.MockOutboxRepository, *mockSvc.MockEventPublisher) {
	outboxRepo := mockRepo.NewMockOutboxRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	cfg := &config.Config{Outbox: &config.OutboxConfig{Enabled: true, BatchSize: 10, MaxAttempts: 3}}

	svc := NewNotificationService(outboxRepo, publisher, cfg, discardLogger()).(*notificationService)
	svc.now = fixedClock
	svc.dispatch = func(f func()) { f() }

	return svc, outboxRepo, publisher
}

func TestNotificationService_Enqueue_PublishesImmediately(t *testing.T) {
	svc, outboxRepo, publisher := createTestNotificationService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	task := &entity.NotificationTask{
		Kind:           entity.NotificationBookingCancelled,
		Recipient:      "asha@example.com",
		TemplateParams: map[string]string{"booking_id": "bk-1"},
	}

	outboxRepo.EXPECT().Create(ctx, mock.MatchedBy(func(tk *entity.NotificationTask) bool {
		return tk.TaskID != "" && tk.Status == entity.OutboxPending && tk.RequestID == "req-1" && tk.CreatedAt.Equal(fixedNow)
	})).Return(nil)
	publisher.EXPECT().PublishNotificationEvent(mock.Anything, mock.MatchedBy(func(ev *service.NotificationEvent) bool {
		return ev.TaskID == task.TaskID && ev.Kind == entity.NotificationBookingCancelled && ev.RequestID == "req-1"
	})).Return(nil)
	outboxRepo.EXPECT().MarkPublished(mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, svc.Enqueue(ctx, task))
	assert.NotEmpty(t, task.TaskID)
}

func TestNotificationService_Enqueue_PublishFailureStaysPending(t *testing.T) {
	svc, outboxRepo, publisher := createTestNotificationService(t)
	ctx := context.Background()
	task := &entity.NotificationTask{TaskID: "task-1", Kind: entity.NotificationRoleAssigned, Recipient: "x@example.com"}

	outboxRepo.EXPECT().Create(ctx, task).Return(nil)
	publisher.EXPECT().PublishNotificationEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))
	outboxRepo.EXPECT().RecordFailure(mock.Anything, "task-1", mock.AnythingOfType("string"), 3).Return(nil)

	require.NoError(t, svc.Enqueue(ctx, task))
}

func TestNotificationService_Enqueue_DoesNotWaitForPublish(t *testing.T) {
	svc, outboxRepo, publisher := createTestNotificationService(t)
	svc.dispatch = func(f func()) { go f() }
	reqCtx, cancelRequest := context.WithCancel(context.Background())
	release := make(chan struct{})
	published := make(chan error, 1)

	outboxRepo.EXPECT().Create(reqCtx, mock.Anything).Return(nil)
	publisher.EXPECT().PublishNotificationEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *service.NotificationEvent) error {
			<-release
			published <- ctx.Err()

			return nil
		})
	marked := make(chan struct{})
	outboxRepo.EXPECT().MarkPublished(mock.Anything, "task-1").
		RunAndReturn(func(context.Context, string) error {
			close(marked)

			return nil
		})

	require.NoError(t, svc.Enqueue(reqCtx, &entity.NotificationTask{TaskID: "task-1", Recipient: "x@example.com"}))

	// The request finishes while the worker is still busy.
	cancelRequest()
	close(release)

	select {
	case err := <-published:
		assert.NoError(t, err, "publish must not inherit the request cancellation")
	case <-time.After(5 * time.Second):
		t.Fatal("background publish did not run")
	}
	select {
	case <-marked:
	case <-time.After(5 * time.Second):
		t.Fatal("task was not marked published")
	}
}

func TestNotificationService_Enqueue_PersistFailure(t *testing.T) {
	svc, outboxRepo, _ := createTestNotificationService(t)
	ctx := context.Background()

	outboxRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("unavailable"))

	err := svc.Enqueue(ctx, &entity.NotificationTask{Recipient: "x@example.com"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to persist notification task")
}

func TestNotificationService_RelayPending(t *testing.T) {
	svc, outboxRepo, publisher := createTestNotificationService(t)
	ctx := context.Background()
	tasks := []*entity.NotificationTask{
		{TaskID: "t1", Kind: entity.NotificationBookingConfirmed, Recipient: "a@example.com"},
		{TaskID: "t2", Kind: entity.NotificationBookingConfirmed, Recipient: "b@example.com", Attempts: 2},
	}

	outboxRepo.EXPECT().ListPending(ctx, 10).Return(tasks, nil)
	publisher.EXPECT().PublishNotificationEvent(ctx, mock.MatchedBy(func(ev *service.NotificationEvent) bool { return ev.TaskID == "t1" })).Return(nil)
	publisher.EXPECT().PublishNotificationEvent(ctx, mock.MatchedBy(func(ev *service.NotificationEvent) bool { return ev.TaskID == "t2" })).Return(errors.New("timeout"))
	outboxRepo.EXPECT().MarkPublished(ctx, "t1").Return(nil)
	outboxRepo.EXPECT().RecordFailure(ctx, "t2", mock.Anything, 3).Return(nil)

	published, err := svc.RelayPending(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, published)
}

func TestNotificationService_RelayPending_ListError(t *testing.T) {
	svc, outboxRepo, _ := createTestNotificationService(t)
	ctx := context.Background()

	outboxRepo.EXPECT().ListPending(ctx, 10).Return(nil, errors.New("unavailable"))

	_, err := svc.RelayPending(ctx)

	assert.Error(t, err)
}
