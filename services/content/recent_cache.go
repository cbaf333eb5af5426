package content

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Omoefe-bazunu/hhaven/models"
	"github.com/Omoefe-bazunu/hhaven/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const recentCacheKey = "content:recent"

// RecentCache shares the landing-page bundle across processes through Redis.
// Staleness tolerance matches the in-memory snapshot caches.
type RecentCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRecentCache wraps a Redis client.
func NewRecentCache(client *redis.Client, ttl time.Duration) *RecentCache {
	return &RecentCache{client: client, ttl: ttl}
}

// Get returns the cached bundle if present and fresh.
func (c *RecentCache) Get(ctx context.Context) (models.RecentContent, bool) {
	var bundle models.RecentContent

	val, err := c.client.Get(ctx, recentCacheKey).Result()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("Recent cache read failed", zap.Error(err))
		}
		return bundle, false
	}
	if err := json.Unmarshal([]byte(val), &bundle); err != nil {
		return bundle, false
	}
	return bundle, true
}

// Set stores the bundle with the configured TTL.
func (c *RecentCache) Set(ctx context.Context, bundle models.RecentContent) {
	data, err := json.Marshal(bundle)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, recentCacheKey, data, c.ttl).Err(); err != nil {
		utils.GetLogger().Warn("Recent cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached bundle so the next read refetches.
func (c *RecentCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, recentCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("Recent cache invalidation failed", zap.Error(err))
	}
}
