package firestoredb

import (
	"context"
	"slices"

	"tripbook/internal/domain/constants"
	"tripbook/internal/domain/entity"
	"tripbook/internal/domain/repository"
	"tripbook/internal/errors"
	"tripbook/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
)

type bookingRepository struct {
	client *firestore.Client
}

// NewBookingRepository creates the Firestore backed booking repository.
func NewBookingRepository(client *firestore.Client) repository.BookingRepository {
	return &bookingRepository{client: client}
}

func (repo *bookingRepository) bookings() *firestore.CollectionRef {
	return repo.client.Collection(constants.CollectionBookings)
}

func (repo *bookingRepository) FindByID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	snap, err := repo.bookings().Doc(bookingID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking by id")
	}

	var m model.BookingModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode booking")
	}

	return toBookingDomain(bookingID, &m), nil
}

// Upsert merges the booking into its document inside one transaction.
func (repo *bookingRepository) Upsert(ctx context.Context, booking *entity.Booking, guard func(existing *entity.Booking) error) error {
	ref := repo.bookings().Doc(booking.BookingID)

	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		var existing *entity.Booking

		snap, err := tx.Get(ref)
		switch {
		case err == nil:
			var m model.BookingModel
			if err := snap.DataTo(&m); err != nil {
				return errors.Wrap(err, "failed to decode booking")
			}
			existing = toBookingDomain(ref.ID, &m)
		case !isNotFound(err):
			return errors.Wrap(err, "failed to read booking")
		}

		fields, err := upsertFields(existing, booking, guard)
		if err != nil {
			return err
		}

		return tx.Set(ref, fields, firestore.MergeAll)
	})
	if err != nil {
		return errors.Wrap(err, "failed to upsert booking")
	}

	return nil
}

// upsertFields builds the merge for a create-or-resubmit. Against an existing
// document the owner and createdAt stay put, and a cancelled booking keeps its
// cancellation.
func upsertFields(existing, booking *entity.Booking, guard func(existing *entity.Booking) error) (map[string]any, error) {
	fields := bookingFields(fromBookingDomain(booking))
	if existing == nil {
		return fields, nil
	}

	if guard != nil {
		if err := guard(existing); err != nil {
			return nil, err
		}
	}

	delete(fields, "createdAt")
	delete(fields, "userId")
	if existing.IsCancelled() {
		delete(fields, "status")
		delete(fields, "cancelled")
		delete(fields, "cancelledAt")
	}

	return fields, nil
}

func (repo *bookingRepository) Update(ctx context.Context, bookingID string, fn func(*entity.Booking) error) (*entity.Booking, error) {
	return updateInTx(ctx, repo.client, repo.bookings().Doc(bookingID), repository.ErrBookingNotFound,
		toBookingDomain, fromBookingDomain, fn)
}

// List runs one query per chunk of package ids, since "in" filters are capped.
func (repo *bookingRepository) List(ctx context.Context, filter repository.BookingFilter) ([]*entity.Booking, error) {
	query := repo.bookings().Query
	if filter.UserID != "" {
		query = query.Where("userId", "==", filter.UserID)
	}
	if filter.AgencyID != "" {
		query = query.Where("agencyId", "==", filter.AgencyID)
	}

	queries := []firestore.Query{query}
	if len(filter.PackageIDs) > 0 {
		queries = queries[:0]
		for _, ids := range chunk(filter.PackageIDs, maxInValues) {
			queries = append(queries, query.Where("packageId", "in", ids))
		}
	}

	var bookings []*entity.Booking
	for _, q := range queries {
		snaps, err := q.Documents(ctx).GetAll()
		if err != nil {
			return nil, errors.Wrap(err, "failed to list bookings")
		}

		page, err := decodeAll(snaps, toBookingDomain)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, page...)
	}

	slices.SortStableFunc(bookings, func(a, b *entity.Booking) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return bookings, nil
}

// toBookingDomain reconciles the status string with the legacy cancelled flag.
func toBookingDomain(id string, m *model.BookingModel) *entity.Booking {
	bookingID := m.BookingID
	if bookingID == "" {
		bookingID = id
	}

	return &entity.Booking{
		BookingID:         bookingID,
		FullName:          m.FullName,
		Email:             m.Email,
		PhoneNumber:       m.PhoneNumber,
		Destination:       m.Destination,
		NumberOfTravelers: m.NumberOfTravelers,
		StartDate:         m.StartDate,
		EndDate:           m.EndDate,
		Accommodation:     m.Accommodation,
		Transportation:    m.Transportation,
		SpecialRequests:   m.SpecialRequests,
		Status:            entity.NormalizeBookingStatus(m.Status, m.Cancelled),
		UserID:            m.UserID,
		PackageID:         m.PackageID,
		AgencyID:          m.AgencyID,
		PaymentID:         m.PaymentID,
		OrderID:           m.OrderID,
		Amount:            m.Amount,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
		CancelledAt:       m.CancelledAt,
	}
}

// fromBookingDomain derives the cancelled flag from the status on every write.
func fromBookingDomain(b *entity.Booking) *model.BookingModel {
	return &model.BookingModel{
		BookingID:         b.BookingID,
		FullName:          b.FullName,
		Email:             b.Email,
		PhoneNumber:       b.PhoneNumber,
		Destination:       b.Destination,
		NumberOfTravelers: b.NumberOfTravelers,
		StartDate:         b.StartDate,
		EndDate:           b.EndDate,
		Accommodation:     b.Accommodation,
		Transportation:    b.Transportation,
		SpecialRequests:   b.SpecialRequests,
		Status:            string(b.Status),
		Cancelled:         b.IsCancelled(),
		UserID:            b.UserID,
		PackageID:         b.PackageID,
		AgencyID:          b.AgencyID,
		PaymentID:         b.PaymentID,
		OrderID:           b.OrderID,
		Amount:            b.Amount,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
		CancelledAt:       b.CancelledAt,
	}
}

// bookingFields is the merge form of a booking document. MergeAll only accepts maps.
func bookingFields(m *model.BookingModel) map[string]any {
	fields := map[string]any{
		"bookingId":         m.BookingID,
		"fullName":          m.FullName,
		"email":             m.Email,
		"phoneNumber":       m.PhoneNumber,
		"destination":       m.Destination,
		"numberOfTravelers": m.NumberOfTravelers,
		"startDate":         m.StartDate,
		"endDate":           m.EndDate,
		"accommodation":     m.Accommodation,
		"transportation":    m.Transportation,
		"specialRequests":   m.SpecialRequests,
		"status":            m.Status,
		"cancelled":         m.Cancelled,
		"userId":            m.UserID,
		"packageId":         m.PackageID,
		"agencyId":          m.AgencyID,
		"paymentId":         m.PaymentID,
		"orderId":           m.OrderID,
		"amount":            m.Amount,
		"createdAt":         m.CreatedAt,
	}
	if m.UpdatedAt != nil {
		fields["updatedAt"] = *m.UpdatedAt
	}
	if m.CancelledAt != nil {
		fields["cancelledAt"] = *m.CancelledAt
	}

	return fields
}
