package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ConvertMinutesToDuration convert minutes to duration format string
// Example: 125 -> "2h 5m"
func ConvertMinutesToDuration(durationInMinutes int64) string {

	h := durationInMinutes / 60
	m := durationInMinutes % 60

	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}

// FormatINR renders an integer rupee amount with Indian-system digit grouping.
// Example: 123456 -> "₹1,23,456"
func FormatINR(amount int64) string {
	if amount == 0 {
		return "₹0"
	}

	negative := amount < 0
	if negative {
		amount = -amount
	}

	str := strconv.FormatInt(amount, 10)

	// rightmost group of three, groups of two before that
	var groups []string
	if len(str) > 3 {
		head := str[:len(str)-3]
		groups = append(groups, str[len(str)-3:])
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
	} else {
		groups = []string{str}
	}

	if negative {
		return "₹-" + strings.Join(groups, ",")
	}

	return "₹" + strings.Join(groups, ",")
}

// SafeNumber coerces an untyped upstream value to int64.
// Returns 0 for anything non-finite or unparseable.
func SafeNumber(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return int64(math.Round(v))
	case float32:
		return SafeNumber(float64(v))
	case json.Number:
		return SafeNumber(string(v))
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return SafeNumber(f)
		}
		return 0
	default:
		return 0
	}
}
