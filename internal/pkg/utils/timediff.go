package utils

import (
	"fmt"
	"math"
	"time"
)

// upstream payloads carry date and time as separate strings
const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// ParseDateTimeUTC parses a "YYYY-MM-DD" date and "HH:MM" time pair as UTC.
// The ambient local zone is never consulted so client and server data
// compare consistently.
func ParseDateTimeUTC(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation(dateTimeLayout, fmt.Sprintf("%s %s", date, clock), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse datetime %q %q: %w", date, clock, err)
	}

	return t, nil
}

// DiffMinutes returns the whole minutes between two date/time pairs,
// clamped to zero. Malformed input yields 0 rather than an error:
// a negative or unknown layover must never surface as real data.
func DiffMinutes(aDate, aTime, bDate, bTime string) int {
	a, err := ParseDateTimeUTC(aDate, aTime)
	if err != nil {
		return 0
	}

	b, err := ParseDateTimeUTC(bDate, bTime)
	if err != nil {
		return 0
	}

	minutes := int(math.Round(b.Sub(a).Minutes()))
	if minutes < 0 {
		return 0
	}

	return minutes
}
