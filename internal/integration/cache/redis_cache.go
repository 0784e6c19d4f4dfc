// Package cache implements the entity cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finanzas-dashboard/backend/internal/application/adapter"
)

// redisCache implements adapter.EntityCache on a Redis client. All
// operations are best effort: a Redis failure degrades to a store read,
// never to a request error.
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a new Redis-backed entity cache.
func NewRedisCache(client *redis.Client, ttl time.Duration) adapter.EntityCache {
	return &redisCache{
		client: client,
		ttl:    ttl,
	}
}

// GetList loads the cached list for kind into dest. Any failure counts as a
// miss.
func (c *redisCache) GetList(ctx context.Context, kind string, dest any) bool {
	payload, err := c.client.Get(ctx, key(kind)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("cache read failed", "kind", kind, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		slog.Warn("cache payload corrupt", "kind", kind, "error", err)
		return false
	}
	return true
}

// SetList stores the list for kind with the configured TTL.
func (c *redisCache) SetList(ctx context.Context, kind string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		slog.Warn("cache encode failed", "kind", kind, "error", err)
		return
	}

	if err := c.client.Set(ctx, key(kind), payload, c.ttl).Err(); err != nil {
		slog.Warn("cache write failed", "kind", kind, "error", err)
	}
}

// Invalidate drops the cached lists for the given kinds.
func (c *redisCache) Invalidate(ctx context.Context, kinds ...string) {
	if len(kinds) == 0 {
		return
	}

	keys := make([]string, len(kinds))
	for i, kind := range kinds {
		keys[i] = key(kind)
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("cache invalidation failed", "kinds", kinds, "error", err)
	}
}

func key(kind string) string {
	return "dashboard:list:" + kind
}
