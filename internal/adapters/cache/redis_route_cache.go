package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"itinerary-planner-service/internal/domain"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis-backed cache for externally optimized route orderings.
//
// Entries expire after the configured TTL so stale road data ages out.
// Keys are expected to be stable digests produced by the orderer.
type RedisRouteCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRouteCache(client *redis.Client, ttl time.Duration) *RedisRouteCache {
	return &RedisRouteCache{client: client, ttl: ttl}
}

// Get fetches a cached ordering. A miss returns (nil, nil).
func (c *RedisRouteCache) Get(ctx context.Context, key string) ([]domain.RouteOrderedStop, error) {
	if c.client == nil {
		return nil, errors.New("route cache: client is nil")
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get route cache: redis get %q: %w", key, err)
	}

	var ordered []domain.RouteOrderedStop
	if err := json.Unmarshal(raw, &ordered); err != nil {
		return nil, fmt.Errorf("get route cache: decode entry %q: %w", key, err)
	}

	return ordered, nil
}

// Put stores an ordering under the given key with the cache TTL.
func (c *RedisRouteCache) Put(ctx context.Context, key string, ordered []domain.RouteOrderedStop) error {
	if c.client == nil {
		return errors.New("route cache: client is nil")
	}

	raw, err := json.Marshal(ordered)
	if err != nil {
		return fmt.Errorf("insert route cache: encode entry %q: %w", key, err)
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("insert route cache: redis set %q: %w", key, err)
	}

	return nil
}
