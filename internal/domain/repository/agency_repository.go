package repository

import (
	"context"
	"errors"

	"tripbook/internal/domain/entity"
)

// ErrAgencyNotFound is returned when no agency record exists for an id.
var ErrAgencyNotFound = errors.New("agency not found")

// AgencyFilter narrows agency listings. A nil Approved lists all agencies.
type AgencyFilter struct {
	Approved *bool
}

// AgencyRepository defines persistence operations for agencies.
type AgencyRepository interface {
	FindByID(ctx context.Context, uid string) (*entity.Agency, error)

	// Create stores a new agency record keyed by its uid.
	Create(ctx context.Context, agency *entity.Agency) error

	// Update applies fn to the stored agency atomically and persists the result.
	// Returns ErrAgencyNotFound when the record does not exist.
	Update(ctx context.Context, uid string, fn func(*entity.Agency) error) (*entity.Agency, error)

	// Delete removes the agency record. Deleting a missing record is not an error.
	Delete(ctx context.Context, uid string) error

	List(ctx context.Context, filter AgencyFilter) ([]*entity.Agency, error)
}
