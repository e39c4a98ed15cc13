package itinerary

import (
	"github.com/tripdesk/fareview-service/internal/pkg/utils"
)

// StopItem is the layover detail between two adjacent segments of a leg.
type StopItem struct {
	At          string `json:"at"`
	City        string `json:"city"`
	Mins        int    `json:"mins"`
	ArrDate     string `json:"arr_date"`
	ArrTime     string `json:"arr_time"`
	DepDate     string `json:"dep_date"`
	DepTime     string `json:"dep_time"`
	TerminalArr string `json:"terminal_arr"`
	TerminalDep string `json:"terminal_dep"`
}

// StopSummary is the per-leg stop breakdown. FallbackOnly means no per-stop
// detail could be computed and only a row-level stop count/label applies.
type StopSummary struct {
	Stops        int        `json:"stops"`
	Items        []StopItem `json:"items"`
	FallbackOnly bool       `json:"fallback_only"`
}

// BuildStopSummary derives layover durations for each pair of adjacent
// segments in a leg. An explicit layover hint on the earlier segment wins;
// otherwise the duration is the UTC-safe diff between its arrival and the
// next segment's departure, clamped to zero for out-of-order or malformed
// timestamps.
func BuildStopSummary(leg []Segment) StopSummary {
	if len(leg) < 2 {
		return StopSummary{Stops: 0, Items: []StopItem{}}
	}

	summary := StopSummary{
		Stops: len(leg) - 1,
		Items: make([]StopItem, 0, len(leg)-1),
	}

	detailed := false

	for i := 0; i < len(leg)-1; i++ {
		current, next := leg[i], leg[i+1]

		mins := int(current.LayoverMins)
		if mins <= 0 {
			mins = utils.DiffMinutes(current.To.Date, current.To.Time, next.From.Date, next.From.Time)
		}

		at := current.LayoverAt
		if at == "" {
			at = current.To.Code
		}

		if mins > 0 || current.To.Date != "" {
			detailed = true
		}

		summary.Items = append(summary.Items, StopItem{
			At:          at,
			City:        current.To.City,
			Mins:        mins,
			ArrDate:     current.To.Date,
			ArrTime:     current.To.Time,
			DepDate:     next.From.Date,
			DepTime:     next.From.Time,
			TerminalArr: current.To.Terminal,
			TerminalDep: next.From.Terminal,
		})
	}

	summary.FallbackOnly = !detailed

	return summary
}

// SummaryWithFallback builds a stop summary for a leg, falling back to a
// row-level stop count inferred from a free-text label when the leg itself
// carries no usable detail.
func SummaryWithFallback(leg []Segment, stopLabel string) StopSummary {
	summary := BuildStopSummary(leg)
	if !summary.FallbackOnly && len(summary.Items) > 0 {
		return summary
	}

	if inferred := InferStops(stopLabel); inferred > summary.Stops {
		return StopSummary{Stops: inferred, Items: []StopItem{}, FallbackOnly: true}
	}

	return summary
}
