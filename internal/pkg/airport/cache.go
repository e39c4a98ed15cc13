package airport

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// Cache stores airport search results in redis keyed by normalized query,
// with a SetNX lock so concurrent misses on the same query hit the upstream
// only once.
type Cache struct {
	redis RedisClient
}

func NewCache(redis RedisClient) *Cache {
	return &Cache{redis: redis}
}

func (c *Cache) CacheKey(query string) string {
	return fmt.Sprintf("airport:cache:v1:%s", strings.ToLower(strings.TrimSpace(query)))
}

func (c *Cache) LockKey(query string) string {
	return fmt.Sprintf("airport:lock:v1:%s", strings.ToLower(strings.TrimSpace(query)))
}

func (c *Cache) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	return c.redis.SetNX(ctx, key, "1", timeout).Result()
}

func (c *Cache) ReleaseLock(ctx context.Context, key string) error {
	return c.redis.Del(ctx, key).Err()
}

func (c *Cache) Set(ctx context.Context, key string, airports []Airport, expiration time.Duration) error {
	data, err := json.Marshal(airports)
	if err != nil {
		return fmt.Errorf("failed to marshal airports: %w", err)
	}

	if err := c.redis.Set(ctx, key, data, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set airports: %w", err)
	}

	return nil
}

func (c *Cache) Get(ctx context.Context, key string) ([]Airport, error) {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var airports []Airport
	if err := json.Unmarshal(data, &airports); err != nil {
		return nil, err
	}

	return airports, nil
}
