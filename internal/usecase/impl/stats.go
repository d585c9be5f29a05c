package impl

import (
	"cmp"
	"slices"
	"time"

	"tripbook/internal/domain/entity"
)

// computePackageStats partitions bookings into status buckets and sums revenue
// and travellers. Cancelled bookings never contribute revenue or travellers, and
// revenue only counts bookings that carry a payment id.
func computePackageStats(bookings []*entity.Booking) entity.PackageStats {
	var stats entity.PackageStats
	for _, b := range bookings {
		stats.TotalBookings++

		switch b.Status {
		case entity.BookingConfirmed, entity.BookingCompleted:
			stats.ConfirmedBookings++
		case entity.BookingCancelled:
			stats.CancelledBookings++
		case entity.BookingPending:
			stats.PendingBookings++
		}

		if b.IsCancelled() {
			continue
		}

		if b.PaymentID != "" {
			stats.TotalRevenue += b.Amount
		}
		stats.TotalTravelers += b.Travelers()
	}

	return stats
}

func addPackageStats(total *entity.PackageStats, s entity.PackageStats) {
	total.TotalBookings += s.TotalBookings
	total.ConfirmedBookings += s.ConfirmedBookings
	total.CancelledBookings += s.CancelledBookings
	total.PendingBookings += s.PendingBookings
	total.TotalRevenue += s.TotalRevenue
	total.TotalTravelers += s.TotalTravelers
}

// attachPackageStats joins bookings to their packages and orders the result by
// creation time, newest first. Bookings for packages not in pkgs are ignored.
func attachPackageStats(pkgs []*entity.TourPackage, bookings []*entity.Booking) []*entity.PackageWithStats {
	byPackage := make(map[string][]*entity.Booking, len(pkgs))
	for _, b := range bookings {
		byPackage[b.PackageID] = append(byPackage[b.PackageID], b)
	}

	out := make([]*entity.PackageWithStats, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, &entity.PackageWithStats{
			TourPackage: *p,
			Stats:       computePackageStats(byPackage[p.PackageID]),
		})
	}

	slices.SortStableFunc(out, func(a, b *entity.PackageWithStats) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return out
}

// summarizeAgency totals the per-package stats of one agency.
func summarizeAgency(agencyID string, pkgs []*entity.PackageWithStats) *entity.AgencySummary {
	summary := &entity.AgencySummary{
		AgencyID:     agencyID,
		PackageCount: len(pkgs),
	}

	for _, p := range pkgs {
		if p.IsActive {
			summary.ActivePackages++
		}
		addPackageStats(&summary.Totals, p.Stats)
	}

	return summary
}

// adminStatsInput is everything the admin dashboard aggregates over.
type adminStatsInput struct {
	users    []*entity.User
	accounts []*entity.IdentityAccount
	agencies []*entity.Agency
	packages []*entity.TourPackage
	bookings []*entity.Booking
}

// computeAdminStats builds the marketplace counters. Identity accounts without
// a user document are counted by their role claim.
func computeAdminStats(in adminStatsInput, now time.Time) *entity.AdminStats {
	stats := &entity.AdminStats{GeneratedAt: now}

	for _, b := range in.bookings {
		stats.TotalBookings++
		switch b.Status {
		case entity.BookingConfirmed:
			stats.ConfirmedBookings++
		case entity.BookingCancelled:
			stats.CancelledBookings++
		case entity.BookingPending:
			stats.PendingBookings++
		case entity.BookingCompleted:
			stats.CompletedBookings++
		}

		if !b.IsCancelled() {
			stats.TotalRevenue += b.Amount
		}
	}

	for _, a := range in.agencies {
		stats.TotalAgencies++
		if a.Approved {
			stats.ApprovedAgencies++
		} else {
			stats.PendingAgencies++
		}
	}

	for _, p := range in.packages {
		stats.TotalPackages++
		if p.IsActive {
			stats.ActivePackages++
		} else {
			stats.InactivePackages++
		}
	}

	for _, role := range reconcileRoles(in.users, in.accounts) {
		stats.TotalUsers++
		switch role {
		case entity.RoleAgency:
			stats.AgencyUsers++
		case entity.RoleAdmin:
			stats.Admins++
		default:
			stats.Customers++
		}
	}

	return stats
}

// reconcileRoles merges stored users with identity accounts keyed by uid.
// A valid stored role wins; otherwise the account claim is used, then customer.
func reconcileRoles(users []*entity.User, accounts []*entity.IdentityAccount) map[string]entity.Role {
	roles := make(map[string]entity.Role, max(len(users), len(accounts)))
	for _, a := range accounts {
		roles[a.UID] = cmp.Or(a.Role, entity.RoleCustomer)
	}
	for _, u := range users {
		if u.Role.IsValid() {
			roles[u.UID] = u.Role
		} else if _, ok := roles[u.UID]; !ok {
			roles[u.UID] = entity.RoleCustomer
		}
	}

	return roles
}
