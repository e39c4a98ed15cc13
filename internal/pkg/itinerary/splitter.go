package itinerary

import (
	"log/slog"
	"strings"
)

// SplitStrategy records which partition rule actually fired, so the
// heuristic fallbacks are visible to callers and in logs instead of silent.
type SplitStrategy string

const (
	StrategyIDPrefix       SplitStrategy = "id_prefix"
	StrategyDirectionField SplitStrategy = "direction_field"
	StrategyMidpoint       SplitStrategy = "midpoint"
	StrategyOnewayOnly     SplitStrategy = "oneway_only"
)

// TripHint carries the signals that mark a payload as a round trip.
type TripHint struct {
	TripType          string // explicit "ROUND" marker from the search query
	HasInboundPayload bool   // raw payload carried a separate inbound array
}

func (h TripHint) IsRoundTrip() bool {
	return strings.EqualFold(strings.TrimSpace(h.TripType), "ROUND") || h.HasInboundPayload
}

// SplitResult is the partitioned itinerary.
type SplitResult struct {
	Outbound []Segment     `json:"outbound"`
	Inbound  []Segment     `json:"inbound"`
	Strategy SplitStrategy `json:"strategy"`
}

// SplitRoundTrip partitions a flat segment list into outbound/inbound legs
// using ordered fallback strategies:
//
//  1. explicit OB-/IB- id prefixes
//  2. an explicit direction/bound/leg field containing OUT/IN, captured by
//     the normalizer into Segment.Direction
//  3. midpoint split at ceil(n/2) when the trip is flagged round-trip
//  4. everything outbound (oneway)
//
// Re-splitting an already-prefixed list reproduces the same partition, so
// the operation is idempotent. The midpoint strategy can misclassify
// asymmetric itineraries; it is logged at warn for that reason.
func SplitRoundTrip(segments []Segment, hint TripHint) SplitResult {
	if byPrefix, ok := splitByIDPrefix(segments); ok {
		return byPrefix
	}

	if byDirection, ok := splitByDirection(segments); ok {
		return byDirection
	}

	if hint.IsRoundTrip() && len(segments) >= 2 {
		mid := (len(segments) + 1) / 2

		slog.Warn("round-trip partition fell back to midpoint split",
			slog.Int("segments", len(segments)),
			slog.Int("midpoint", mid))

		return SplitResult{
			Outbound: segments[:mid],
			Inbound:  segments[mid:],
			Strategy: StrategyMidpoint,
		}
	}

	return SplitResult{
		Outbound: segments,
		Strategy: StrategyOnewayOnly,
	}
}

func splitByIDPrefix(segments []Segment) (SplitResult, bool) {
	prefixed := false
	result := SplitResult{Strategy: StrategyIDPrefix}

	for _, segment := range segments {
		id := strings.ToUpper(segment.ID)
		switch {
		case strings.HasPrefix(id, "OB-"):
			prefixed = true
			result.Outbound = append(result.Outbound, segment)
		case strings.HasPrefix(id, "IB-"):
			prefixed = true
			result.Inbound = append(result.Inbound, segment)
		default:
			// a single unprefixed segment invalidates the whole strategy
			return SplitResult{}, false
		}
	}

	if !prefixed || len(segments) == 0 {
		return SplitResult{}, false
	}

	return result, true
}

func splitByDirection(segments []Segment) (SplitResult, bool) {
	result := SplitResult{Strategy: StrategyDirectionField}
	tagged := false

	for _, segment := range segments {
		switch segment.Direction {
		case DirectionOutbound:
			tagged = true
			result.Outbound = append(result.Outbound, segment)
		case DirectionInbound:
			tagged = true
			result.Inbound = append(result.Inbound, segment)
		default:
			return SplitResult{}, false
		}
	}

	if !tagged || len(segments) == 0 {
		return SplitResult{}, false
	}

	return result, true
}
