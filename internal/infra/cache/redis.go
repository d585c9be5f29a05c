// Package cache holds the Redis connection and the admin stats cache built on it.
package cache

import (
	"context"
	"log/slog"

	"tripbook/config"
	"tripbook/internal/domain/entity"
	"tripbook/internal/domain/lifecycle"
	"tripbook/internal/domain/service"
	"tripbook/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the dependencies of the stats cache.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewStatsCache returns the Redis backed cache when redis is enabled, otherwise a no-op cache.
func NewStatsCache(params Params) (service.StatsCache, error) {
	rc := params.Config.Redis
	if rc == nil || !rc.Enabled {
		params.Logger.Info("Redis disabled, admin stats are computed on every request")

		return noopStatsCache{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     rc.Addr,
		Password: rc.Password,
		DB:       rc.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return NewRedisStatsCache(client, rc.StatsTTL, params.Logger), nil
}

// noopStatsCache always misses.
type noopStatsCache struct{}

func (noopStatsCache) GetAdminStats(context.Context) (*entity.AdminStats, error) { return nil, nil }

func (noopStatsCache) SetAdminStats(context.Context, *entity.AdminStats) error { return nil }

func (noopStatsCache) Invalidate(context.Context) error { return nil }

// Module provides the cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStatsCache),
)
