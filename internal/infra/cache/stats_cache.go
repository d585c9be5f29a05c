package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"tripbook/internal/domain/entity"
	"tripbook/internal/domain/service"
	"tripbook/internal/errors"

	"github.com/redis/go-redis/v9"
)

const adminStatsKey = "tripbook:stats:admin"

type redisStatsCache struct {
	client redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisStatsCache stores the admin stats as JSON under a single key with a TTL.
func NewRedisStatsCache(client redis.Cmdable, ttl time.Duration, logger *slog.Logger) service.StatsCache {
	return &redisStatsCache{client: client, ttl: ttl, logger: logger}
}

func (c *redisStatsCache) GetAdminStats(ctx context.Context) (*entity.AdminStats, error) {
	raw, err := c.client.Get(ctx, adminStatsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cached stats")
	}

	var stats entity.AdminStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		// A corrupt entry is treated as a miss and overwritten by the next Set.
		c.logger.Warn("Discarding undecodable cached stats", slog.Any("error", err))

		return nil, nil
	}

	return &stats, nil
}

func (c *redisStatsCache) SetAdminStats(ctx context.Context, stats *entity.AdminStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := c.client.Set(ctx, adminStatsKey, raw, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to cache stats")
	}

	return nil
}

func (c *redisStatsCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, adminStatsKey).Err(); err != nil {
		return errors.Wrap(err, "failed to invalidate cached stats")
	}

	return nil
}
