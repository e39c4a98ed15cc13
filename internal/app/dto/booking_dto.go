package dto

import (
	"fmt"
	"net/http"

	"github.com/tripdesk/fareview-service/internal/pkg/booking"
	"github.com/tripdesk/fareview-service/internal/pkg/exception"
	"github.com/tripdesk/fareview-service/internal/pkg/fare"
	"github.com/tripdesk/fareview-service/internal/pkg/share"
)

// LegSelectionInput is the chosen flight+fare for one direction, with the
// raw segments of that flight so the snapshot carries the canonical records.
type LegSelectionInput struct {
	Flight   fare.Row                 `json:"flight" validate:"required"`
	FareCode string                   `json:"fare_code" validate:"required"`
	Segments []map[string]interface{} `json:"segments" validate:"required,min=1"`
}

// CreateBookingRequest snapshots the final selection at "Book Now" time.
type CreateBookingRequest struct {
	Outbound   LegSelectionInput      `json:"outbound" validate:"required"`
	Inbound    *LegSelectionInput     `json:"inbound,omitempty"`
	Passengers map[string]interface{} `json:"passengers,omitempty"`
	AgentID    string                 `json:"agent_id,omitempty"`
}

func (r *CreateBookingRequest) Bind(_ *http.Request) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (r *CreateBookingRequest) Validate() error {
	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	if _, ok := r.Outbound.Flight.FareByCode(r.Outbound.FareCode); !ok {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    fmt.Sprintf("fare code %s not present on outbound flight", r.Outbound.FareCode),
		}
	}

	if r.Inbound != nil {
		if _, ok := r.Inbound.Flight.FareByCode(r.Inbound.FareCode); !ok {
			return exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message:    fmt.Sprintf("fare code %s not present on inbound flight", r.Inbound.FareCode),
			}
		}
	}

	return nil
}

type BookingResponse struct {
	Booking booking.Context `json:"booking"`
}

// SetPNRRequest merges a PNR into an existing booking context.
type SetPNRRequest struct {
	PNR string `json:"pnr" validate:"required,alphanum,min=5,max=8"`
}

func (r *SetPNRRequest) Bind(_ *http.Request) error {
	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

type SharePayloadResponse struct {
	Share share.Payload `json:"share"`
}

// SeatSelectionRequest applies one seat pick against the selection cap.
type SeatSelectionRequest struct {
	Passengers map[string]interface{} `json:"passengers,omitempty"`
	RoundTrip  bool                   `json:"round_trip"`
	Selected   map[string][]string    `json:"selected,omitempty"`
	Leg        string                 `json:"leg" validate:"required,oneof=onward return"`
	Seat       string                 `json:"seat" validate:"required"`
}

func (r *SeatSelectionRequest) Bind(_ *http.Request) error {
	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

// SeatSelectionResponse returns the updated selection. Warning carries the
// advisory cap message; when set, the selection is returned unchanged.
type SeatSelectionResponse struct {
	Cap      int                 `json:"cap"`
	Selected map[string][]string `json:"selected"`
	Warning  string              `json:"warning,omitempty"`
}

// RecentSearchRequest records one search in the agent's recent list.
type RecentSearchRequest struct {
	AgentID string `json:"agent_id" validate:"required"`
	booking.RecentSearch
}

func (r *RecentSearchRequest) Bind(_ *http.Request) error {
	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

type RecentSearchesResponse struct {
	Searches []booking.RecentSearch `json:"searches"`
}
