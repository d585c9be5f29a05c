package usecase

import (
	"context"

	"tripbook/internal/domain/entity"
)

// BookingUsecase defines the booking lifecycle.
type BookingUsecase interface {
	// CreateBooking writes a confirmed booking keyed by the client supplied id.
	CreateBooking(ctx context.Context, actor Actor, input *CreateBookingInput) (*entity.Booking, error)

	// CancelBooking moves a booking to cancelled. Repeated calls leave the same outcome.
	CancelBooking(ctx context.Context, actor Actor, bookingID string) (*entity.Booking, error)

	// UpdateBooking applies a typed patch to a booking that is not cancelled.
	UpdateBooking(ctx context.Context, actor Actor, bookingID string, patch *UpdateBookingInput) (*entity.Booking, error)

	ListUserBookings(ctx context.Context, actor Actor, userID string) ([]*entity.Booking, error)

	ListAgencyBookings(ctx context.Context, agencyID string) ([]*entity.Booking, error)

	// GetTicket returns the QR code e-ticket PNG for a booking.
	GetTicket(ctx context.Context, actor Actor, bookingID string) ([]byte, error)
}

// --- Input DTOs ---

// CreateBookingInput defines the data required to record a paid booking.
type CreateBookingInput struct {
	BookingID         string  `json:"bookingId" validate:"required"`
	PackageID         string  `json:"packageId" validate:"required"`
	AgencyID          string  `json:"agencyId" validate:"required"`
	Amount            float64 `json:"amount" validate:"gte=0"`
	OrderID           string  `json:"orderId" validate:"required"`
	PaymentID         string  `json:"paymentId" validate:"required"`
	PaymentSignature  string  `json:"paymentSignature,omitempty"`
	Destination       string  `json:"destination"`
	FullName          string  `json:"fullName" validate:"required"`
	Email             string  `json:"email" validate:"omitempty,email"`
	PhoneNumber       string  `json:"phoneNumber"`
	NumberOfTravelers int     `json:"numberOfTravelers" validate:"gte=0"`
	StartDate         string  `json:"startDate"`
	EndDate           string  `json:"endDate"`
	Accommodation     string  `json:"accommodation"`
	Transportation    string  `json:"transportation"`
	SpecialRequests   string  `json:"specialRequests"`
}

// UpdateBookingInput is the typed patch accepted for a booking.
type UpdateBookingInput struct {
	FullName          *string `json:"fullName,omitempty" validate:"omitempty,min=1"`
	Email             *string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber       *string `json:"phoneNumber,omitempty"`
	NumberOfTravelers *int    `json:"numberOfTravelers,omitempty" validate:"omitempty,gte=1"`
	StartDate         *string `json:"startDate,omitempty"`
	EndDate           *string `json:"endDate,omitempty"`
	Accommodation     *string `json:"accommodation,omitempty"`
	Transportation    *string `json:"transportation,omitempty"`
	SpecialRequests   *string `json:"specialRequests,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p *UpdateBookingInput) IsEmpty() bool {
	return p.FullName == nil && p.Email == nil && p.PhoneNumber == nil &&
		p.NumberOfTravelers == nil && p.StartDate == nil && p.EndDate == nil &&
		p.Accommodation == nil && p.Transportation == nil && p.SpecialRequests == nil
}
