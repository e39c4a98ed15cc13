//go:build unit

package utils

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConvertMinutesToDuration_Closure(t *testing.T) {
	durationRequest := func(minutes int64, want string) func(t *testing.T) {
		return func(t *testing.T) {
			got := ConvertMinutesToDuration(minutes)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("ConvertMinutesToDuration mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("hours_and_minutes", durationRequest(125, "2h 5m"))
	t.Run("exact_hours", durationRequest(120, "2h"))
	t.Run("minutes_only", durationRequest(45, "45m"))
	t.Run("zero", durationRequest(0, "0h"))
}

func TestFormatINR_Closure(t *testing.T) {
	formatRequest := func(amount int64, want string) func(t *testing.T) {
		return func(t *testing.T) {
			got := FormatINR(amount)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("FormatINR mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("zero", formatRequest(0, "₹0"))
	t.Run("small", formatRequest(500, "₹500"))
	t.Run("thousands", formatRequest(4500, "₹4,500"))
	t.Run("lakhs", formatRequest(123456, "₹1,23,456"))
	t.Run("crores", formatRequest(12345678, "₹1,23,45,678"))
	t.Run("negative", formatRequest(-4500, "₹-4,500"))
}

func TestSafeNumber_Closure(t *testing.T) {
	safeRequest := func(value interface{}, want int64) func(t *testing.T) {
		return func(t *testing.T) {
			got := SafeNumber(value)
			if got != want {
				t.Fatalf("SafeNumber(%v) = %d, want %d", value, got, want)
			}
		}
	}

	t.Run("int", safeRequest(42, 42))
	t.Run("float", safeRequest(42.6, 43))
	t.Run("numeric_string", safeRequest("150", 150))
	t.Run("float_string", safeRequest("2.5", 3))
	t.Run("garbage_string", safeRequest("2h 30m", 0))
	t.Run("empty_string", safeRequest("", 0))
	t.Run("nil", safeRequest(nil, 0))
	t.Run("bool", safeRequest(true, 0))
}
