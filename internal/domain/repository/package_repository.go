package repository

import (
	"context"
	"errors"

	"tripbook/internal/domain/entity"
)

// ErrPackageNotFound is returned when no package exists for an id.
var ErrPackageNotFound = errors.New("package not found")

// PackageFilter narrows package listings. Empty fields do not filter.
type PackageFilter struct {
	AgencyID    string
	ActiveOnly  bool
	Destination string
}

// PackageRepository defines persistence operations for tour packages.
type PackageRepository interface {
	FindByID(ctx context.Context, packageID string) (*entity.TourPackage, error)

	// Create stores a new package and assigns its PackageID.
	Create(ctx context.Context, pkg *entity.TourPackage) error

	// Update applies fn to the stored package atomically and persists the result.
	Update(ctx context.Context, packageID string, fn func(*entity.TourPackage) error) (*entity.TourPackage, error)

	// List returns packages matching the filter ordered by creation time, newest first.
	List(ctx context.Context, filter PackageFilter) ([]*entity.TourPackage, error)
}
