package itinerary

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildStopSummary(t *testing.T) {
	summaryRequest := func(leg []Segment, want StopSummary) func(t *testing.T) {
		return func(t *testing.T) {
			got := BuildStopSummary(leg)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("BuildStopSummary mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("direct_leg_has_no_stops", summaryRequest(
		[]Segment{{ID: "1"}},
		StopSummary{Stops: 0, Items: []StopItem{}},
	))

	t.Run("computed_layover", summaryRequest(
		[]Segment{
			{
				ID: "1",
				To: Endpoint{Code: "DXB", City: "Dubai", Date: "2026-01-10", Time: "14:00", Terminal: "T1"},
			},
			{
				ID:   "2",
				From: Endpoint{Code: "DXB", City: "Dubai", Date: "2026-01-10", Time: "16:30", Terminal: "T3"},
			},
		},
		StopSummary{
			Stops: 1,
			Items: []StopItem{{
				At:          "DXB",
				City:        "Dubai",
				Mins:        150,
				ArrDate:     "2026-01-10",
				ArrTime:     "14:00",
				DepDate:     "2026-01-10",
				DepTime:     "16:30",
				TerminalArr: "T1",
				TerminalDep: "T3",
			}},
		},
	))

	t.Run("explicit_hint_wins", summaryRequest(
		[]Segment{
			{
				ID:          "1",
				LayoverMins: 75,
				LayoverAt:   "SIN",
				To:          Endpoint{Code: "SIN", Date: "2026-01-10", Time: "14:00"},
			},
			{
				ID:   "2",
				From: Endpoint{Code: "SIN", Date: "2026-01-10", Time: "20:00"},
			},
		},
		StopSummary{
			Stops: 1,
			Items: []StopItem{{
				At:      "SIN",
				Mins:    75,
				ArrDate: "2026-01-10",
				ArrTime: "14:00",
				DepDate: "2026-01-10",
				DepTime: "20:00",
			}},
		},
	))

	t.Run("malformed_dates_clamp_to_zero", summaryRequest(
		[]Segment{
			{ID: "1", To: Endpoint{Code: "BLR"}},
			{ID: "2", From: Endpoint{Code: "BLR"}},
		},
		StopSummary{
			Stops: 1,
			Items: []StopItem{{
				At: "BLR",
			}},
			FallbackOnly: true,
		},
	))

	t.Run("out_of_order_timestamps_clamp", summaryRequest(
		[]Segment{
			{ID: "1", To: Endpoint{Code: "MAA", Date: "2026-01-10", Time: "18:00"}},
			{ID: "2", From: Endpoint{Code: "MAA", Date: "2026-01-10", Time: "12:00"}},
		},
		StopSummary{
			Stops: 1,
			Items: []StopItem{{
				At:      "MAA",
				Mins:    0,
				ArrDate: "2026-01-10",
				ArrTime: "18:00",
				DepDate: "2026-01-10",
				DepTime: "12:00",
			}},
		},
	))
}

func TestSummaryWithFallback(t *testing.T) {
	fallbackRequest := func(leg []Segment, label string, want StopSummary) func(t *testing.T) {
		return func(t *testing.T) {
			got := SummaryWithFallback(leg, label)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("SummaryWithFallback mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("label_fills_missing_detail", fallbackRequest(
		[]Segment{{ID: "1"}},
		"2 Stops",
		StopSummary{Stops: 2, Items: []StopItem{}, FallbackOnly: true},
	))

	t.Run("detail_beats_label", fallbackRequest(
		[]Segment{
			{ID: "1", To: Endpoint{Code: "DXB", Date: "2026-01-10", Time: "14:00"}},
			{ID: "2", From: Endpoint{Code: "DXB", Date: "2026-01-10", Time: "16:30"}},
		},
		"non-stop",
		StopSummary{
			Stops: 1,
			Items: []StopItem{{
				At:      "DXB",
				Mins:    150,
				ArrDate: "2026-01-10",
				ArrTime: "14:00",
				DepDate: "2026-01-10",
				DepTime: "16:30",
			}},
		},
	))
}
