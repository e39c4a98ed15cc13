package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key scheme is versioned: a schema change bumps the v1 component instead of
// migrating blobs in place.
const (
	contextKeyPrefix  = "booking:ctx:v1:"
	contextLockPrefix = "booking:lock:v1:"
	recentKeyPrefix   = "search:recent:v1:"

	recentSearchLimit = 10
)

type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	LTrim(ctx context.Context, key string, start, stop int64) *redis.StatusCmd
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
}

// RedisStore persists booking contexts and recent searches as JSON blobs
// under versioned keys.
type RedisStore struct {
	redis RedisClient
}

func NewRedisStore(redis RedisClient) *RedisStore {
	return &RedisStore{redis: redis}
}

func (s *RedisStore) contextKey(id string) string {
	return contextKeyPrefix + id
}

func (s *RedisStore) lockKey(id string) string {
	return contextLockPrefix + id
}

// Save writes a booking context. Write-once from the caller's perspective;
// the TTL bounds how long a confirmation screen can read it back.
func (s *RedisStore) Save(ctx context.Context, bookingCtx Context, expiration time.Duration) error {
	data, err := json.Marshal(bookingCtx)
	if err != nil {
		return fmt.Errorf("failed to marshal booking context: %w", err)
	}

	if err := s.redis.Set(ctx, s.contextKey(bookingCtx.ID), data, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set booking context: %w", err)
	}

	return nil
}

// Get reads a booking context back. redis.Nil propagates so callers can map
// a missing key to the "no confirmation found" state instead of an error page.
func (s *RedisStore) Get(ctx context.Context, id string) (Context, error) {
	data, err := s.redis.Get(ctx, s.contextKey(id)).Bytes()
	if err != nil {
		return Context{}, err
	}

	var bookingCtx Context
	if err := json.Unmarshal(data, &bookingCtx); err != nil {
		return Context{}, fmt.Errorf("failed to unmarshal booking context: %w", err)
	}

	return bookingCtx, nil
}

// AcquireLock guards the PNR read-modify-write merge.
func (s *RedisStore) AcquireLock(ctx context.Context, id string, timeout time.Duration) (bool, error) {
	return s.redis.SetNX(ctx, s.lockKey(id), "1", timeout).Result()
}

func (s *RedisStore) ReleaseLock(ctx context.Context, id string) error {
	return s.redis.Del(ctx, s.lockKey(id)).Err()
}

// RecentSearch is one entry of an agent's recent-searches list.
type RecentSearch struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	TripType    string `json:"trip_type"`
}

// PushRecentSearch prepends a search to the agent's capped list.
func (s *RedisStore) PushRecentSearch(ctx context.Context, agentID string, search RecentSearch) error {
	data, err := json.Marshal(search)
	if err != nil {
		return fmt.Errorf("failed to marshal recent search: %w", err)
	}

	key := recentKeyPrefix + agentID

	if err := s.redis.LPush(ctx, key, data).Err(); err != nil {
		return fmt.Errorf("failed to push recent search: %w", err)
	}

	if err := s.redis.LTrim(ctx, key, 0, recentSearchLimit-1).Err(); err != nil {
		return fmt.Errorf("failed to trim recent searches: %w", err)
	}

	return nil
}

// RecentSearches lists the agent's recent searches, newest first. Entries
// that fail to parse are skipped, not surfaced.
func (s *RedisStore) RecentSearches(ctx context.Context, agentID string) ([]RecentSearch, error) {
	values, err := s.redis.LRange(ctx, recentKeyPrefix+agentID, 0, recentSearchLimit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read recent searches: %w", err)
	}

	searches := make([]RecentSearch, 0, len(values))
	for _, value := range values {
		var search RecentSearch
		if err := json.Unmarshal([]byte(value), &search); err != nil {
			continue
		}
		searches = append(searches, search)
	}

	return searches, nil
}
