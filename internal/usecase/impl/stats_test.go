package impl

import (
	"testing"
	"time"

	"tripbook/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func booking(pkgID string, status entity.BookingStatus, amount float64, paymentID string, travellers int) *entity.Booking {
	return &entity.Booking{
		PackageID:         pkgID,
		Status:            status,
		Amount:            amount,
		PaymentID:         paymentID,
		NumberOfTravelers: travellers,
	}
}

func TestComputePackageStats_Buckets(t *testing.T) {
	bookings := []*entity.Booking{
		booking("p1", entity.BookingConfirmed, 1000, "pay_1", 2),
		booking("p1", entity.BookingCompleted, 500, "pay_2", 0),
		booking("p1", entity.BookingCancelled, 9999, "pay_3", 4),
		booking("p1", entity.BookingPending, 300, "", 1),
		booking("p1", entity.BookingStatus("on-hold"), 200, "pay_4", 1),
	}

	stats := computePackageStats(bookings)

	assert.Equal(t, 5, stats.TotalBookings)
	assert.Equal(t, 2, stats.ConfirmedBookings)
	assert.Equal(t, 1, stats.CancelledBookings)
	assert.Equal(t, 1, stats.PendingBookings)
	// Pending has no payment id, cancelled never counts.
	assert.InDelta(t, 1700.0, stats.TotalRevenue, 0.001)
	// 2 + default 1 + 1 + 1; the cancelled booking is excluded.
	assert.Equal(t, 5, stats.TotalTravelers)
	assert.LessOrEqual(t, stats.ConfirmedBookings+stats.CancelledBookings+stats.PendingBookings, stats.TotalBookings)
}

func TestComputePackageStats_CancelRemovesRevenue(t *testing.T) {
	b := booking("p1", entity.BookingConfirmed, 5000, "pay_1", 2)

	before := computePackageStats([]*entity.Booking{b})
	assert.InDelta(t, 5000.0, before.TotalRevenue, 0.001)

	b.Cancel(fixedNow)
	after := computePackageStats([]*entity.Booking{b})

	assert.InDelta(t, 0.0, after.TotalRevenue, 0.001)
	assert.Equal(t, 1, after.TotalBookings)
	assert.Equal(t, 1, after.CancelledBookings)
	assert.Equal(t, 0, after.TotalTravelers)
}

func TestComputePackageStats_Empty(t *testing.T) {
	assert.Equal(t, entity.PackageStats{}, computePackageStats(nil))
}

func TestAttachPackageStats_SortsNewestFirstAndJoins(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	pkgs := []*entity.TourPackage{
		{PackageID: "old", CreatedAt: base, IsActive: true},
		{PackageID: "new", CreatedAt: base.Add(48 * time.Hour), IsActive: false},
		{PackageID: "mid", CreatedAt: base.Add(24 * time.Hour), IsActive: true},
	}
	bookings := []*entity.Booking{
		booking("new", entity.BookingConfirmed, 100, "pay", 1),
		booking("old", entity.BookingConfirmed, 50, "pay", 1),
		booking("old", entity.BookingCancelled, 50, "pay", 1),
		booking("gone", entity.BookingConfirmed, 70, "pay", 1),
	}

	out := attachPackageStats(pkgs, bookings)

	assert.Len(t, out, 3)
	assert.Equal(t, "new", out[0].PackageID)
	assert.Equal(t, "mid", out[1].PackageID)
	assert.Equal(t, "old", out[2].PackageID)
	assert.Equal(t, 1, out[0].Stats.TotalBookings)
	assert.Equal(t, 0, out[1].Stats.TotalBookings)
	assert.Equal(t, 2, out[2].Stats.TotalBookings)
	assert.InDelta(t, 50.0, out[2].Stats.TotalRevenue, 0.001)

	summary := summarizeAgency("agency-1", out)
	assert.Equal(t, 3, summary.PackageCount)
	assert.Equal(t, 2, summary.ActivePackages)
	assert.Equal(t, 3, summary.Totals.TotalBookings)
	assert.InDelta(t, 150.0, summary.Totals.TotalRevenue, 0.001)
}

func TestComputeAdminStats(t *testing.T) {
	in := adminStatsInput{
		users: []*entity.User{
			{UID: "u1", Role: entity.RoleCustomer},
			{UID: "a1", Role: entity.RoleAgency},
			{UID: "admin", Role: entity.RoleAdmin},
			{UID: "blank"},
		},
		accounts: []*entity.IdentityAccount{
			{UID: "u1", Role: entity.RoleCustomer},
			{UID: "a1", Role: entity.RoleCustomer},
			{UID: "fresh", Role: entity.RoleCustomer},
			{UID: "fresh-agency", Role: entity.RoleAgency},
			{UID: "blank", Role: entity.RoleAdmin},
		},
		agencies: []*entity.Agency{
			{UID: "a1", Approved: true},
			{UID: "a2"},
			{UID: "a3"},
		},
		packages: []*entity.TourPackage{
			{PackageID: "p1", IsActive: true},
			{PackageID: "p2", IsActive: false},
		},
		bookings: []*entity.Booking{
			booking("p1", entity.BookingConfirmed, 1000, "pay", 1),
			booking("p1", entity.BookingCompleted, 400, "", 1),
			booking("p1", entity.BookingPending, 100, "", 1),
			booking("p1", entity.BookingCancelled, 5000, "pay", 1),
		},
	}

	stats := computeAdminStats(in, fixedNow)

	assert.Equal(t, fixedNow, stats.GeneratedAt)
	assert.Equal(t, 4, stats.TotalBookings)
	assert.Equal(t, 1, stats.ConfirmedBookings)
	assert.Equal(t, 1, stats.CompletedBookings)
	assert.Equal(t, 1, stats.PendingBookings)
	assert.Equal(t, 1, stats.CancelledBookings)
	assert.InDelta(t, 1500.0, stats.TotalRevenue, 0.001)

	assert.Equal(t, 3, stats.TotalAgencies)
	assert.Equal(t, 1, stats.ApprovedAgencies)
	assert.Equal(t, 2, stats.PendingAgencies)

	assert.Equal(t, 2, stats.TotalPackages)
	assert.Equal(t, 1, stats.ActivePackages)
	assert.Equal(t, 1, stats.InactivePackages)

	// u1, a1, admin, blank, fresh, fresh-agency
	assert.Equal(t, 6, stats.TotalUsers)
	assert.Equal(t, 2, stats.Customers)
	assert.Equal(t, 2, stats.AgencyUsers)
	assert.Equal(t, 2, stats.Admins)
}
