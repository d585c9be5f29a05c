package entity

import (
	"strings"
	"time"
)

// BookingStatus is the single source of truth for a booking's state.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// IsValid checks if the status is one of the known values.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	default:
		return false
	}
}

// NormalizeBookingStatus maps a stored status string and cancelled flag to a
// BookingStatus. The flag wins over the string; an empty string reads as pending.
// Unknown strings are returned lower-cased and fail IsValid.
func NormalizeBookingStatus(raw string, cancelled bool) BookingStatus {
	if cancelled {
		return BookingCancelled
	}

	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return BookingPending
	}

	return BookingStatus(s)
}

// Booking is a customer's reservation of a package, created after payment capture.
type Booking struct {
	BookingID         string        `json:"bookingId"`
	FullName          string        `json:"fullName"`
	Email             string        `json:"email"`
	PhoneNumber       string        `json:"phoneNumber"`
	Destination       string        `json:"destination"`
	NumberOfTravelers int           `json:"numberOfTravelers"`
	StartDate         string        `json:"startDate"`
	EndDate           string        `json:"endDate"`
	Accommodation     string        `json:"accommodation"`
	Transportation    string        `json:"transportation"`
	SpecialRequests   string        `json:"specialRequests"`
	Status            BookingStatus `json:"status"`
	UserID            string        `json:"userId"`
	PackageID         string        `json:"packageId"`
	AgencyID          string        `json:"agencyId"`
	PaymentID         string        `json:"paymentId"`
	OrderID           string        `json:"orderId"`
	Amount            float64       `json:"amount"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         *time.Time    `json:"updatedAt,omitempty"`
	CancelledAt       *time.Time    `json:"cancelledAt,omitempty"`
}

// IsCancelled reports whether the booking has been cancelled.
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingCancelled
}

// Travelers returns the number of travellers, counting a missing value as one.
func (b *Booking) Travelers() int {
	if b.NumberOfTravelers <= 0 {
		return 1
	}

	return b.NumberOfTravelers
}

// Cancel moves the booking to cancelled. The first cancellation time is kept.
func (b *Booking) Cancel(now time.Time) {
	b.Status = BookingCancelled
	if b.CancelledAt == nil {
		b.CancelledAt = &now
	}
	b.UpdatedAt = &now
}

// CanBeAccessedBy reports whether the caller may view or change the booking:
// the customer who booked it, the agency fulfilling it, or an admin.
func (b *Booking) CanBeAccessedBy(uid string, role Role) bool {
	return role == RoleAdmin || b.UserID == uid || b.AgencyID == uid
}
