package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP     HTTP       `mapstructure:",squash"`
	Redis    Redis      `mapstructure:",squash"`
	Booking  Booking    `mapstructure:",squash"`
	Airports Airports   `mapstructure:",squash"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// Booking controls the booking-context store.
type Booking struct {
	ContextTTL  time.Duration `mapstructure:"BOOKING_CONTEXT_TTL"`
	LockTimeout time.Duration `mapstructure:"BOOKING_LOCK_TIMEOUT"`
}

// Airports configures the airport-search proxy. SearchAPIURL routes to the
// upstream provider; UseMock swaps in the stubbed Amadeus provider.
type Airports struct {
	SearchAPIURL    string        `mapstructure:"AIRPORT_SEARCH_API_URL"`
	APIKey          string        `mapstructure:"AIRPORT_SEARCH_API_KEY"`
	Timeout         time.Duration `mapstructure:"AIRPORT_SEARCH_TIMEOUT"`
	MaxRetries      int           `mapstructure:"AIRPORT_SEARCH_MAX_RETRIES"`
	RateLimitRPS    int           `mapstructure:"AIRPORT_SEARCH_RATE_LIMIT"`
	UseMock         bool          `mapstructure:"AIRPORT_SEARCH_USE_MOCK"`
	CacheExpiration time.Duration `mapstructure:"AIRPORT_CACHE_EXPIRATION"`
	LockTimeout     time.Duration `mapstructure:"AIRPORT_LOCK_TIMEOUT"`
}
