package repository

import (
	"context"
	"errors"

	"tripbook/internal/domain/entity"
)

// ErrBookingNotFound is returned when no booking exists for an id.
var ErrBookingNotFound = errors.New("booking not found")

// BookingFilter narrows booking listings. Empty fields do not filter.
type BookingFilter struct {
	UserID     string
	AgencyID   string
	PackageIDs []string
}

// BookingRepository defines persistence operations for bookings.
// Stored documents are normalized on read: Status is always one of the entity values or an unknown lower-case string.
type BookingRepository interface {
	FindByID(ctx context.Context, bookingID string) (*entity.Booking, error)

	// Upsert merges the booking into the document keyed by BookingID. When the
	// document exists, guard sees the stored booking first and its error aborts
	// the write. The owner, createdAt and a cancellation are never overwritten.
	Upsert(ctx context.Context, booking *entity.Booking, guard func(existing *entity.Booking) error) error

	// Update applies fn to the stored booking atomically and persists the result.
	Update(ctx context.Context, bookingID string, fn func(*entity.Booking) error) (*entity.Booking, error)

	// List returns bookings matching the filter, newest first.
	List(ctx context.Context, filter BookingFilter) ([]*entity.Booking, error)
}
