// Package idempotency implements the idempotency cache port on Redis.
package idempotency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

// RedisCache remembers created order IDs under their idempotency key.
// Entries expire after the configured TTL; an expired entry just means
// the retry falls through to the insert-conflict path.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a Redis-backed idempotency cache.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    ttl,
	}
}

// Lookup returns the order ID remembered for the key, if any.
func (c *RedisCache) Lookup(ctx context.Context, ownerID kernel.UUID, key string) (kernel.UUID, bool, error) {
	value, err := c.client.Get(ctx, cacheKey(ownerID, key)).Result()
	if errors.Is(err, redis.Nil) {
		return kernel.UUID{}, false, nil
	}
	if err != nil {
		return kernel.UUID{}, false, err
	}

	orderID, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, false, err
	}

	return orderID, true, nil
}

// Remember associates the key with the created order's ID.
func (c *RedisCache) Remember(ctx context.Context, ownerID kernel.UUID, key string, orderID kernel.UUID) error {
	return c.client.Set(ctx, cacheKey(ownerID, key), orderID.String(), c.ttl).Err()
}

func cacheKey(ownerID kernel.UUID, key string) string {
	return fmt.Sprintf("ordering:create:%s:%s", ownerID.String(), key)
}
