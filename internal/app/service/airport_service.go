package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tripdesk/fareview-service/internal/app/dto"
	"github.com/tripdesk/fareview-service/internal/pkg/airport"
)

type AirportCacher interface {
	CacheKey(query string) string
	LockKey(query string) string
	AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key string) error
	Set(ctx context.Context, key string, airports []airport.Airport, expiration time.Duration) error
	Get(ctx context.Context, key string) ([]airport.Airport, error)
}

// AirportService proxies the airport-search upstream behind a redis cache.
// Concurrent cache misses on the same query are single-flighted with a
// SetNX lock: only the lock holder writes the cache, everyone still gets a
// live answer.
type AirportService struct {
	Provider        airport.Provider
	Cache           AirportCacher
	CacheExpiration time.Duration
	LockTimeout     time.Duration
}

func NewAirportService(provider airport.Provider, cache AirportCacher,
	cacheExpiration, lockTimeout time.Duration) *AirportService {
	return &AirportService{
		Provider:        provider,
		Cache:           cache,
		CacheExpiration: cacheExpiration,
		LockTimeout:     lockTimeout,
	}
}

// Search godoc
// @Summary      Search airports
// @Tags         Airports
// @Description  Search airports by free-text query via the upstream provider
// @Param        q  query     string  true  "Search query"
// @Success      200  {object}  dto.AirportSearchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/airports [get]
func (s *AirportService) Search(ctx context.Context, query string) (dto.AirportSearchResponse, error) {
	cacheKey := s.Cache.CacheKey(query)
	lockKey := s.Cache.LockKey(query)

	airports, err := s.Cache.Get(ctx, cacheKey)
	if err == nil {
		return dto.AirportSearchResponse{
			Query:    query,
			Airports: airports,
			CacheHit: true,
		}, nil
	}

	slog.WarnContext(ctx, "failed to get airports from cache", slog.String("error", err.Error()))

	airports, err = s.Provider.Search(ctx, query)
	if err != nil {
		return dto.AirportSearchResponse{}, fmt.Errorf("failed to search airports: %w", err)
	}

	if len(airports) == 0 {
		return dto.AirportSearchResponse{}, ErrNoAirportsFound
	}

	acquired, err := s.Cache.AcquireLock(ctx, lockKey, s.LockTimeout)
	if err != nil {
		return dto.AirportSearchResponse{}, fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer s.Cache.ReleaseLock(ctx, lockKey)

	if acquired {
		if err := s.Cache.Set(ctx, cacheKey, airports, s.CacheExpiration); err != nil {
			return dto.AirportSearchResponse{}, fmt.Errorf("failed to set airports to cache: %w", err)
		}
	}

	return dto.AirportSearchResponse{
		Query:    query,
		Airports: airports,
	}, nil
}
