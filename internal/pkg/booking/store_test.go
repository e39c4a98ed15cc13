//go:build unit

package booking_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tripdesk/fareview-service/internal/pkg/booking"
)

func TestRedisStore_SaveAndGet(t *testing.T) {
	t.Parallel()

	bookingCtx := booking.Context{
		ID:        "bkg-123",
		PNR:       "AB12CD",
		CreatedAt: time.Date(2026, 1, 10, 14, 0, 0, 0, time.UTC),
	}
	data, err := json.Marshal(bookingCtx)
	assert.NoError(t, err)

	t.Run("save writes versioned key", func(t *testing.T) {
		t.Parallel()

		client := booking.NewMockRedisClient(t)
		client.On("Set", mock.Anything, "booking:ctx:v1:bkg-123", mock.Anything, 30*time.Minute).
			Return(redis.NewStatusResult("OK", nil))

		store := booking.NewRedisStore(client)
		assert.NoError(t, store.Save(context.Background(), bookingCtx, 30*time.Minute))
	})

	t.Run("save surfaces redis error", func(t *testing.T) {
		t.Parallel()

		client := booking.NewMockRedisClient(t)
		client.On("Set", mock.Anything, "booking:ctx:v1:bkg-123", mock.Anything, 30*time.Minute).
			Return(redis.NewStatusResult("", errors.New("connection refused")))

		store := booking.NewRedisStore(client)
		assert.Error(t, store.Save(context.Background(), bookingCtx, 30*time.Minute))
	})

	t.Run("get round trips the stored blob", func(t *testing.T) {
		t.Parallel()

		client := booking.NewMockRedisClient(t)
		client.On("Get", mock.Anything, "booking:ctx:v1:bkg-123").
			Return(redis.NewStringResult(string(data), nil))

		store := booking.NewRedisStore(client)
		got, err := store.Get(context.Background(), "bkg-123")
		assert.NoError(t, err)
		if diff := cmp.Diff(bookingCtx, got); diff != "" {
			t.Errorf("context mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("get propagates redis nil for missing keys", func(t *testing.T) {
		t.Parallel()

		client := booking.NewMockRedisClient(t)
		client.On("Get", mock.Anything, "booking:ctx:v1:gone").
			Return(redis.NewStringResult("", redis.Nil))

		store := booking.NewRedisStore(client)
		_, err := store.Get(context.Background(), "gone")
		assert.ErrorIs(t, err, redis.Nil)
	})

	t.Run("get rejects corrupt blob", func(t *testing.T) {
		t.Parallel()

		client := booking.NewMockRedisClient(t)
		client.On("Get", mock.Anything, "booking:ctx:v1:bkg-123").
			Return(redis.NewStringResult("{not json", nil))

		store := booking.NewRedisStore(client)
		_, err := store.Get(context.Background(), "bkg-123")
		assert.Error(t, err)
	})
}

func TestRedisStore_Locking(t *testing.T) {
	t.Parallel()

	t.Run("acquire uses setnx with timeout", func(t *testing.T) {
		t.Parallel()

		client := booking.NewMockRedisClient(t)
		client.On("SetNX", mock.Anything, "booking:lock:v1:bkg-123", "1", 5*time.Second).
			Return(redis.NewBoolResult(true, nil))

		store := booking.NewRedisStore(client)
		acquired, err := store.AcquireLock(context.Background(), "bkg-123", 5*time.Second)
		assert.NoError(t, err)
		assert.True(t, acquired)
	})

	t.Run("contended lock reports false", func(t *testing.T) {
		t.Parallel()

		client := booking.NewMockRedisClient(t)
		client.On("SetNX", mock.Anything, "booking:lock:v1:bkg-123", "1", 5*time.Second).
			Return(redis.NewBoolResult(false, nil))

		store := booking.NewRedisStore(client)
		acquired, err := store.AcquireLock(context.Background(), "bkg-123", 5*time.Second)
		assert.NoError(t, err)
		assert.False(t, acquired)
	})

	t.Run("release deletes the lock key", func(t *testing.T) {
		t.Parallel()

		client := booking.NewMockRedisClient(t)
		client.On("Del", mock.Anything, "booking:lock:v1:bkg-123").
			Return(redis.NewIntResult(1, nil))

		store := booking.NewRedisStore(client)
		assert.NoError(t, store.ReleaseLock(context.Background(), "bkg-123"))
	})
}

func TestRedisStore_RecentSearches(t *testing.T) {
	t.Parallel()

	search := booking.RecentSearch{
		Origin:      "DEL",
		Destination: "BOM",
		Date:        "2026-01-10",
		TripType:    "ROUND",
	}
	data, err := json.Marshal(search)
	assert.NoError(t, err)

	t.Run("push prepends and trims to cap", func(t *testing.T) {
		t.Parallel()

		client := booking.NewMockRedisClient(t)
		client.On("LPush", mock.Anything, "search:recent:v1:agent-9", mock.Anything).
			Return(redis.NewIntResult(1, nil))
		client.On("LTrim", mock.Anything, "search:recent:v1:agent-9", int64(0), int64(9)).
			Return(redis.NewStatusResult("OK", nil))

		store := booking.NewRedisStore(client)
		assert.NoError(t, store.PushRecentSearch(context.Background(), "agent-9", search))
	})

	t.Run("list decodes newest first and skips corrupt entries", func(t *testing.T) {
		t.Parallel()

		client := booking.NewMockRedisClient(t)
		client.On("LRange", mock.Anything, "search:recent:v1:agent-9", int64(0), int64(9)).
			Return(redis.NewStringSliceResult([]string{string(data), "{broken"}, nil))

		store := booking.NewRedisStore(client)
		got, err := store.RecentSearches(context.Background(), "agent-9")
		assert.NoError(t, err)
		if diff := cmp.Diff([]booking.RecentSearch{search}, got); diff != "" {
			t.Errorf("searches mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("list surfaces redis error", func(t *testing.T) {
		t.Parallel()

		client := booking.NewMockRedisClient(t)
		client.On("LRange", mock.Anything, "search:recent:v1:agent-9", int64(0), int64(9)).
			Return(redis.NewStringSliceResult(nil, errors.New("connection refused")))

		store := booking.NewRedisStore(client)
		_, err := store.RecentSearches(context.Background(), "agent-9")
		assert.Error(t, err)
	})
}
