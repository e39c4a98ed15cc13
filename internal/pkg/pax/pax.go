package pax

import (
	"github.com/tripdesk/fareview-service/internal/pkg/utils"
)

// Passenger counts arrive under as many spellings as segment fields do, so
// the same priority-probe pattern applies.
var (
	adultKeys  = []string{"adults", "adult", "adt", "ADT", "adultCount", "adult_count"}
	childKeys  = []string{"children", "child", "chd", "CHD", "childCount", "child_count"}
	infantKeys = []string{"infants", "infant", "inf", "INF", "infantCount", "infant_count"}
)

// Config is the normalized passenger configuration.
type Config struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

// SeatCount is the number of fare-paying seats. Infants travel on a lap and
// are excluded.
func (c Config) SeatCount() int {
	return max(1, c.Adults+c.Children)
}

// Normalize reconciles a raw passenger-count shape into a Config. An
// all-blank or unparseable query normalizes to a single adult.
func Normalize(raw map[string]interface{}) Config {
	cfg := Config{
		Adults:   probeCount(raw, adultKeys),
		Children: probeCount(raw, childKeys),
		Infants:  probeCount(raw, infantKeys),
	}

	if cfg.Adults == 0 && cfg.Children == 0 && cfg.Infants == 0 {
		cfg.Adults = 1
	}

	return cfg
}

func probeCount(raw map[string]interface{}, keys []string) int {
	for _, key := range keys {
		if value, ok := raw[key]; ok && value != nil {
			if n := utils.SafeNumber(value); n > 0 {
				return int(n)
			}
		}
	}

	return 0
}
