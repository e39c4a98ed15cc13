package service

import (
	"context"

	"github.com/tripdesk/fareview-service/internal/app/dto"
	"github.com/tripdesk/fareview-service/internal/pkg/itinerary"
	"github.com/tripdesk/fareview-service/internal/pkg/pax"
)

// ItineraryService turns raw upstream search rows into the canonical
// itinerary view: normalized segments, outbound/inbound partition and
// per-stop layover summaries.
type ItineraryService struct{}

func NewItineraryService() *ItineraryService {
	return &ItineraryService{}
}

// Normalize godoc
// @Summary      Normalize a raw itinerary
// @Tags         Itineraries
// @Description  Normalize raw segments, partition round trips and build layover summaries
// @Param        request  body      dto.NormalizeItineraryRequest  true  "Raw itinerary"
// @Success      200      {object}  dto.NormalizeItineraryResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/v1/itineraries/normalize [post]
func (s *ItineraryService) Normalize(
	_ context.Context,
	req dto.NormalizeItineraryRequest,
) (dto.NormalizeItineraryResponse, error) {
	segments := itinerary.NormalizeSegments(req.Segments)

	// a separate inbound array is itself a round-trip signal; its segments
	// join the flat list pre-tagged so the direction strategy wins
	if len(req.InboundSegments) > 0 {
		for _, raw := range req.InboundSegments {
			segment := itinerary.NormalizeSegment(raw)
			segment.Direction = itinerary.DirectionInbound
			segments = append(segments, segment)
		}

		for i := range segments {
			if segments[i].Direction == "" {
				segments[i].Direction = itinerary.DirectionOutbound
			}
		}
	}

	split := itinerary.SplitRoundTrip(segments, itinerary.TripHint{
		TripType:          req.TripType,
		HasInboundPayload: len(req.InboundSegments) > 0,
	})

	legs := []dto.Leg{{
		Direction: itinerary.DirectionOutbound,
		Segments:  split.Outbound,
		Stops:     itinerary.SummaryWithFallback(split.Outbound, req.StopLabel),
	}}

	if len(split.Inbound) > 0 {
		legs = append(legs, dto.Leg{
			Direction: itinerary.DirectionInbound,
			Segments:  split.Inbound,
			Stops:     itinerary.SummaryWithFallback(split.Inbound, req.StopLabel),
		})
	}

	paxConfig := pax.Normalize(req.Passengers)

	return dto.NormalizeItineraryResponse{
		Legs:       legs,
		Strategy:   split.Strategy,
		Passengers: paxConfig,
		SeatCount:  paxConfig.SeatCount(),
	}, nil
}
