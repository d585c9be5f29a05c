package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"tripbook/internal/domain/entity"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func fixedClock() time.Time {
	return fixedNow
}

func ptr[T any](v T) *T {
	return &v
}

// applyBooking mimics the repository Update contract against an in-memory copy.
func applyBooking(stored *entity.Booking) func(context.Context, string, func(*entity.Booking) error) (*entity.Booking, error) {
	return func(_ context.Context, _ string, fn func(*entity.Booking) error) (*entity.Booking, error) {
		b := *stored
		if err := fn(&b); err != nil {
			return nil, err
		}
		*stored = b

		return &b, nil
	}
}

func applyPackage(stored *entity.TourPackage) func(context.Context, string, func(*entity.TourPackage) error) (*entity.TourPackage, error) {
	return func(_ context.Context, _ string, fn func(*entity.TourPackage) error) (*entity.TourPackage, error) {
		p := *stored
		if err := fn(&p); err != nil {
			return nil, err
		}
		*stored = p

		return &p, nil
	}
}

func applyAgency(stored *entity.Agency) func(context.Context, string, func(*entity.Agency) error) (*entity.Agency, error) {
	return func(_ context.Context, _ string, fn func(*entity.Agency) error) (*entity.Agency, error) {
		a := *stored
		if err := fn(&a); err != nil {
			return nil, err
		}
		*stored = a

		return &a, nil
	}
}
