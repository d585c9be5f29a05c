package entity

import "time"

// PackageStats summarises the bookings that reference one package.
type PackageStats struct {
	TotalBookings     int     `json:"totalBookings"`
	ConfirmedBookings int     `json:"confirmedBookings"`
	CancelledBookings int     `json:"cancelledBookings"`
	PendingBookings   int     `json:"pendingBookings"`
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalTravelers    int     `json:"totalTravelers"`
}

// PackageWithStats is a package together with its booking statistics.
type PackageWithStats struct {
	TourPackage
	Stats PackageStats `json:"stats"`
}

// AgencySummary totals booking statistics across an agency's packages.
type AgencySummary struct {
	AgencyID       string       `json:"agencyId"`
	PackageCount   int          `json:"packageCount"`
	ActivePackages int          `json:"activePackages"`
	Totals         PackageStats `json:"totals"`
}

// AdminStats holds marketplace-wide counters for the admin dashboard.
type AdminStats struct {
	TotalRevenue      float64   `json:"totalRevenue"`
	TotalBookings     int       `json:"totalBookings"`
	ConfirmedBookings int       `json:"confirmedBookings"`
	CancelledBookings int       `json:"cancelledBookings"`
	PendingBookings   int       `json:"pendingBookings"`
	CompletedBookings int       `json:"completedBookings"`
	TotalAgencies     int       `json:"totalAgencies"`
	ApprovedAgencies  int       `json:"approvedAgencies"`
	PendingAgencies   int       `json:"pendingAgencies"`
	TotalUsers        int       `json:"totalUsers"`
	Customers         int       `json:"customers"`
	AgencyUsers       int       `json:"agencyUsers"`
	Admins            int       `json:"admins"`
	TotalPackages     int       `json:"totalPackages"`
	ActivePackages    int       `json:"activePackages"`
	InactivePackages  int       `json:"inactivePackages"`
	GeneratedAt       time.Time `json:"generatedAt"`
}
