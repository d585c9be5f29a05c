package usecase

import (
	"context"

	"tripbook/internal/domain/entity"
)

// AdminUsecase defines the admin dashboard operations.
type AdminUsecase interface {
	// GetStats returns marketplace-wide counters.
	GetStats(ctx context.Context) (*entity.AdminStats, error)
}
