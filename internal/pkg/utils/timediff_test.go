//go:build unit

package utils

import (
	"testing"
)

func TestDiffMinutes_Closure(t *testing.T) {
	diffRequest := func(aDate, aTime, bDate, bTime string, want int) func(t *testing.T) {
		return func(t *testing.T) {
			got := DiffMinutes(aDate, aTime, bDate, bTime)
			if got != want {
				t.Fatalf("DiffMinutes = %d, want %d", got, want)
			}
		}
	}

	t.Run("same_day_layover", diffRequest("2026-01-10", "14:00", "2026-01-10", "16:30", 150))
	t.Run("overnight", diffRequest("2026-01-10", "23:30", "2026-01-11", "01:00", 90))
	t.Run("out_of_order_clamped", diffRequest("2026-01-10", "16:30", "2026-01-10", "14:00", 0))
	t.Run("malformed_date", diffRequest("10/01/2026", "14:00", "2026-01-10", "16:30", 0))
	t.Run("missing_time", diffRequest("2026-01-10", "", "2026-01-10", "16:30", 0))
	t.Run("zero_diff", diffRequest("2026-01-10", "14:00", "2026-01-10", "14:00", 0))
}

func TestParseDateTimeUTC_Closure(t *testing.T) {
	parseRequest := func(date, clock string, wantErr bool, wantUnix int64) func(t *testing.T) {
		return func(t *testing.T) {
			got, err := ParseDateTimeUTC(date, clock)
			if (err != nil) != wantErr {
				t.Fatalf("ParseDateTimeUTC error = %v, wantErr %v", err, wantErr)
			}

			if !wantErr && got.Unix() != wantUnix {
				t.Fatalf("ParseDateTimeUTC unix = %d, want %d", got.Unix(), wantUnix)
			}
		}
	}

	// 2026-01-10T14:00:00Z
	t.Run("valid", parseRequest("2026-01-10", "14:00", false, 1768053600))
	t.Run("invalid", parseRequest("2026-13-40", "99:99", true, 0))
}
