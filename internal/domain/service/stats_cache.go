package service

import (
	"context"

	"tripbook/internal/domain/entity"
)

// StatsCache keeps a short-lived copy of the admin dashboard counters.
type StatsCache interface {
	// GetAdminStats returns the cached stats, or nil on a cache miss.
	GetAdminStats(ctx context.Context) (*entity.AdminStats, error)

	SetAdminStats(ctx context.Context, stats *entity.AdminStats) error

	// Invalidate drops the cached stats.
	Invalidate(ctx context.Context) error
}
