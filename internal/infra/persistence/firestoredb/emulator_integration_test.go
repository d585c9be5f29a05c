package firestoredb

import (
	"context"
	"os"
	"testing"
	"time"

	"tripbook/internal/domain/entity"
	"tripbook/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEmulatorClient connects to the Firestore emulator, skipping when it is not running.
func newEmulatorClient(t *testing.T) *firestore.Client {
	t.Helper()

	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestore.NewClient(context.Background(), "tripbook-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestBookingRepository_Emulator(t *testing.T) {
	client := newEmulatorClient(t)
	repo := NewBookingRepository(client)
	ctx := context.Background()
	created := time.Now().UTC().Truncate(time.Millisecond)
	bookingID := "bk-" + uuid.NewString()

	require.NoError(t, repo.Upsert(ctx, &entity.Booking{
		BookingID: bookingID,
		UserID:    "u1",
		AgencyID:  "ag-1",
		PackageID: "p1",
		Status:    entity.BookingConfirmed,
		Amount:    4999,
		CreatedAt: created,
	}, nil))

	updated, err := repo.Update(ctx, bookingID, func(b *entity.Booking) error {
		b.Cancel(time.Now())

		return nil
	})
	require.NoError(t, err)
	assert.True(t, updated.IsCancelled())

	stored, err := repo.FindByID(ctx, bookingID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingCancelled, stored.Status)
	assert.True(t, stored.CreatedAt.Equal(created))

	// A re-submission after cancellation keeps the owner and the cancellation.
	require.NoError(t, repo.Upsert(ctx, &entity.Booking{
		BookingID: bookingID,
		UserID:    "u2",
		AgencyID:  "ag-1",
		PackageID: "p1",
		Status:    entity.BookingConfirmed,
		Amount:    4999,
		CreatedAt: time.Now(),
	}, nil))
	stored, err = repo.FindByID(ctx, bookingID)
	require.NoError(t, err)
	assert.Equal(t, "u1", stored.UserID)
	assert.True(t, stored.IsCancelled())

	_, err = repo.FindByID(ctx, "missing-"+uuid.NewString())
	assert.ErrorIs(t, err, repository.ErrBookingNotFound)
}

func TestOutboxRepository_Emulator(t *testing.T) {
	client := newEmulatorClient(t)
	repo := NewOutboxRepository(client)
	ctx := context.Background()
	task := &entity.NotificationTask{
		Kind:      entity.NotificationBookingConfirmed,
		Recipient: "asha@example.com",
		Status:    entity.OutboxPending,
		CreatedAt: time.Now(),
	}

	require.NoError(t, repo.Create(ctx, task))
	require.NotEmpty(t, task.TaskID)

	require.NoError(t, repo.RecordFailure(ctx, task.TaskID, "broker down", 2))
	require.NoError(t, repo.RecordFailure(ctx, task.TaskID, "broker down", 2))

	pending, err := repo.ListPending(ctx, 100)
	require.NoError(t, err)
	for _, p := range pending {
		assert.NotEqual(t, task.TaskID, p.TaskID, "task should have moved to failed")
	}

	assert.ErrorIs(t, repo.MarkPublished(ctx, "missing-"+uuid.NewString()), repository.ErrTaskNotFound)
}
