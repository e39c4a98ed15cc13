package pax

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/tripdesk/fareview-service/internal/pkg/exception"
)

// Leg keys for seat selections. Oneway trips only use LegOnward.
const (
	LegOnward = "onward"
	LegReturn = "return"
)

// SeatSelection holds picked seat labels per leg, capped at the seat count
// of the passenger configuration. The cap violation is advisory: it rejects
// the pick with a user-visible message and leaves the selection untouched.
type SeatSelection struct {
	Cap  int                 `json:"cap"`
	Legs map[string][]string `json:"legs"`
}

// NewSeatSelection builds an empty selection for a passenger configuration.
// Round trips get both legs, oneway only the onward leg.
func NewSeatSelection(cfg Config, roundTrip bool) *SeatSelection {
	legs := map[string][]string{LegOnward: {}}
	if roundTrip {
		legs[LegReturn] = []string{}
	}

	return &SeatSelection{
		Cap:  cfg.SeatCount(),
		Legs: legs,
	}
}

// Select adds a seat to a leg. Picking a seat twice removes it (toggle).
// Picking beyond the cap returns an advisory error and does not mutate the
// selection.
func (s *SeatSelection) Select(leg, seat string) error {
	current, ok := s.Legs[leg]
	if !ok {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    fmt.Sprintf("unknown leg %q", leg),
		}
	}

	if idx := slices.Index(current, seat); idx >= 0 {
		s.Legs[leg] = slices.Delete(current, idx, idx+1)

		return nil
	}

	if len(current) >= s.Cap {
		return exception.ApplicationError{
			StatusCode: http.StatusUnprocessableEntity,
			Message:    fmt.Sprintf("you can select up to %d seat(s) for this leg", s.Cap),
		}
	}

	s.Legs[leg] = append(current, seat)

	return nil
}

// Selected returns the picked seats for a leg.
func (s *SeatSelection) Selected(leg string) []string {
	return s.Legs[leg]
}
