package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBookingStatus(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		cancelled bool
		want      BookingStatus
	}{
		{"confirmed", "confirmed", false, BookingConfirmed},
		{"mixed case with spaces", "  Confirmed ", false, BookingConfirmed},
		{"upper cancelled", "CANCELLED", false, BookingCancelled},
		{"flag wins over status", "confirmed", true, BookingCancelled},
		{"empty is pending", "", false, BookingPending},
		{"completed", "Completed", false, BookingCompleted},
		{"unknown kept", "On-Hold", false, BookingStatus("on-hold")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeBookingStatus(tt.raw, tt.cancelled))
		})
	}

	assert.False(t, NormalizeBookingStatus("on-hold", false).IsValid())
}

func TestBooking_CancelKeepsFirstCancelTime(t *testing.T) {
	first := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)
	b := &Booking{Status: BookingConfirmed}

	b.Cancel(first)
	b.Cancel(second)

	assert.True(t, b.IsCancelled())
	assert.Equal(t, first, *b.CancelledAt)
	assert.Equal(t, second, *b.UpdatedAt)
}

func TestBooking_Travelers(t *testing.T) {
	assert.Equal(t, 1, (&Booking{}).Travelers())
	assert.Equal(t, 4, (&Booking{NumberOfTravelers: 4}).Travelers())
}

func TestBooking_CanBeAccessedBy(t *testing.T) {
	b := &Booking{UserID: "user-1", AgencyID: "agency-1"}

	assert.True(t, b.CanBeAccessedBy("user-1", RoleCustomer))
	assert.True(t, b.CanBeAccessedBy("agency-1", RoleAgency))
	assert.True(t, b.CanBeAccessedBy("someone", RoleAdmin))
	assert.False(t, b.CanBeAccessedBy("user-2", RoleCustomer))
}

func TestRoleFromClaim(t *testing.T) {
	assert.Equal(t, RoleAgency, RoleFromClaim("agency"))
	assert.Equal(t, RoleAdmin, RoleFromClaim("admin"))
	assert.Equal(t, RoleCustomer, RoleFromClaim(nil))
	assert.Equal(t, RoleCustomer, RoleFromClaim("superuser"))
	assert.Equal(t, RoleCustomer, RoleFromClaim(42))
}
