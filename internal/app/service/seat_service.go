package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/tripdesk/fareview-service/internal/app/dto"
	"github.com/tripdesk/fareview-service/internal/pkg/exception"
	"github.com/tripdesk/fareview-service/internal/pkg/pax"
)

// SeatService applies seat picks against the per-leg cap. Cap violations
// are advisory: the response carries a warning and the unchanged selection
// instead of an error status, so the screen stays interactive.
type SeatService struct{}

func NewSeatService() *SeatService {
	return &SeatService{}
}

// ApplySelection godoc
// @Summary      Apply a seat pick
// @Tags         Seats
// @Description  Toggle a seat on a leg, enforcing the adults+children cap
// @Param        request  body      dto.SeatSelectionRequest  true  "Current selection and pick"
// @Success      200      {object}  dto.SeatSelectionResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/v1/seats/selection [post]
func (s *SeatService) ApplySelection(
	_ context.Context,
	req dto.SeatSelectionRequest,
) (dto.SeatSelectionResponse, error) {
	cfg := pax.Normalize(req.Passengers)

	selection := pax.NewSeatSelection(cfg, req.RoundTrip)
	for leg, seats := range req.Selected {
		if _, ok := selection.Legs[leg]; ok {
			selection.Legs[leg] = append([]string{}, seats...)
		}
	}

	if err := selection.Select(req.Leg, req.Seat); err != nil {
		var appErr exception.ApplicationError
		if errors.As(err, &appErr) && appErr.StatusCode == http.StatusUnprocessableEntity {
			return dto.SeatSelectionResponse{
				Cap:      selection.Cap,
				Selected: selection.Legs,
				Warning:  appErr.Message,
			}, nil
		}

		return dto.SeatSelectionResponse{}, err
	}

	return dto.SeatSelectionResponse{
		Cap:      selection.Cap,
		Selected: selection.Legs,
	}, nil
}
