package dto

import (
	"github.com/tripdesk/fareview-service/internal/pkg/airport"
)

// AirportSearchResponse matches the proxy contract: a data array on
// success, an {error} body with HTTP 500 on upstream failure.
type AirportSearchResponse struct {
	Query    string            `json:"query"`
	Airports []airport.Airport `json:"airports"`
	CacheHit bool              `json:"cache_hit"`
}
