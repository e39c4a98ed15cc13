package airport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-redis/redis_rate/v10"
)

const AviationstackProviderName = "aviationstack"

// AviationstackProvider proxies the Aviationstack airports API. The API key
// comes from configuration; retries use exponential backoff and the shared
// redis rate limiter caps requests per second.
type AviationstackProvider struct {
	Name         string
	SearchAPIURL string
	APIKey       string
	Timeout      time.Duration
	MaxRetries   int
	Limiter      *redis_rate.Limiter
	RateLimitRPS int
	HTTPClient   *http.Client
}

func NewAviationstackProvider(config ProviderConfig) *AviationstackProvider {
	return &AviationstackProvider{
		Name:         AviationstackProviderName,
		SearchAPIURL: config.SearchAPIURL,
		APIKey:       config.APIKey,
		Timeout:      config.Timeout,
		MaxRetries:   config.MaxRetries,
		Limiter:      config.Limiter,
		RateLimitRPS: config.RateLimitRPS,
		HTTPClient:   &http.Client{Timeout: config.Timeout},
	}
}

type aviationstackResponse struct {
	Data []struct {
		IATACode    string `json:"iata_code"`
		AirportName string `json:"airport_name"`
		CityName    string `json:"city_name"`
		CountryName string `json:"country_name"`
	} `json:"data"`
}

// Search queries the upstream airports endpoint with retry and rate
// limiting. A non-2xx upstream status is retried with exponential backoff
// before giving up with ErrUpstreamUnavailable.
func (p *AviationstackProvider) Search(ctx context.Context, query string) ([]Airport, error) {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	if p.Limiter != nil {
		res, err := p.Limiter.Allow(ctx, fmt.Sprintf("limit:%s", p.Name),
			redis_rate.PerSecond(p.RateLimitRPS))
		if err != nil {
			return nil, fmt.Errorf("failed to rate limit: %w", err)
		}

		if res.Allowed == 0 {
			return nil, ErrRateLimitExceeded
		}
	}

	var lastErr error
	for attempt := 0; attempt <= p.MaxRetries; attempt++ {
		airports, err := p.doSearch(ctx, query)
		if err == nil {
			return airports, nil
		}

		lastErr = err
		slog.ErrorContext(ctx, "failed to call airport search API",
			"attempt", attempt+1, "error", lastErr)

		if attempt < p.MaxRetries {
			// Exponential backoff: 200ms * 2^attempt
			backoff := time.Duration(200*(1<<attempt)) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, fmt.Errorf("context cancelled or timeout: %w", ctx.Err())
			}
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, lastErr)
}

func (p *AviationstackProvider) doSearch(ctx context.Context, query string) ([]Airport, error) {
	endpoint, err := url.Parse(p.SearchAPIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid search API URL: %w", err)
	}

	params := endpoint.Query()
	params.Set("access_key", p.APIKey)
	params.Set("search", query)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call upstream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("upstream status %d: %s", resp.StatusCode, string(body))
	}

	var response aviationstackResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode upstream response: %w", err)
	}

	airports := make([]Airport, len(response.Data))
	for i, entry := range response.Data {
		airports[i] = Airport{
			IATA:    entry.IATACode,
			Name:    entry.AirportName,
			City:    entry.CityName,
			Country: entry.CountryName,
		}
	}

	return airports, nil
}
