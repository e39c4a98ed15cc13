package airport

import (
	"context"
	"net/http"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/tripdesk/fareview-service/internal/pkg/exception"
)

// Airport is one airport-search result.
type Airport struct {
	IATA    string `json:"iata"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// ProviderConfig configures an upstream airport-search provider.
type ProviderConfig struct {
	SearchAPIURL string
	APIKey       string
	Timeout      time.Duration
	MaxRetries   int
	RateLimitRPS int
	Limiter      *redis_rate.Limiter
}

// Provider searches airports by free-text query.
type Provider interface {
	Search(ctx context.Context, query string) ([]Airport, error)
}

var ErrUpstreamUnavailable = exception.ApplicationError{
	StatusCode: http.StatusInternalServerError,
	Message:    "airport data provider unavailable",
}

var ErrRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "airport data provider rate limit exceeded",
}
