package dto

import (
	"fmt"
	"net/http"

	"github.com/tripdesk/fareview-service/internal/pkg/exception"
	"github.com/tripdesk/fareview-service/internal/pkg/itinerary"
	"github.com/tripdesk/fareview-service/internal/pkg/pax"
)

// NormalizeItineraryRequest carries one raw search-result row. Segments are
// untyped maps on purpose: field naming varies per upstream source and the
// normalizer is the only adapter boundary.
type NormalizeItineraryRequest struct {
	TripType        string                   `json:"trip_type" validate:"omitempty,oneof=ONEWAY ROUND"`
	Segments        []map[string]interface{} `json:"segments" validate:"required,min=1"`
	InboundSegments []map[string]interface{} `json:"inbound_segments,omitempty"`
	StopLabel       string                   `json:"stop_label,omitempty"`
	Passengers      map[string]interface{}   `json:"passengers,omitempty"`
}

func (r *NormalizeItineraryRequest) Bind(_ *http.Request) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (r *NormalizeItineraryRequest) Validate() error {
	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

// Leg is one direction of the normalized itinerary.
type Leg struct {
	Direction string                `json:"direction"`
	Segments  []itinerary.Segment   `json:"segments"`
	Stops     itinerary.StopSummary `json:"stops"`
}

// NormalizeItineraryResponse is the canonical view the result screens render.
type NormalizeItineraryResponse struct {
	Legs       []Leg                   `json:"legs"`
	Strategy   itinerary.SplitStrategy `json:"strategy"`
	Passengers pax.Config              `json:"passengers"`
	SeatCount  int                     `json:"seat_count"`
}
