package service

import (
	"context"

	"github.com/tripdesk/fareview-service/internal/app/dto"
	"github.com/tripdesk/fareview-service/internal/pkg/fare"
)

// PricingService resolves fare options into displayed pricing views and
// keeps selections in sync with refreshed row lists.
type PricingService struct{}

func NewPricingService() *PricingService {
	return &PricingService{}
}

// Quote godoc
// @Summary      Resolve a pricing view
// @Tags         Fares
// @Description  Compute the displayed amount for a fare under a price mode and fare view
// @Param        request  body      dto.QuoteRequest  true  "Fare and display mode"
// @Success      200      {object}  dto.QuoteResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/v1/fares/quote [post]
func (s *PricingService) Quote(_ context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error) {
	view := fare.ResolveView(req.Fare, req.Mode, req.Seats, req.View)

	return dto.QuoteResponse{
		View:              view,
		MainDisplay:       view.Main.Display(),
		NetDisplay:        view.Net.Display(),
		CommissionDisplay: view.Commission.Display(),
	}, nil
}

// SyncSelection godoc
// @Summary      Sync a fare selection
// @Tags         Fares
// @Description  Re-evaluate a selection against the latest row list
// @Param        request  body      dto.SyncSelectionRequest  true  "Rows and current selection"
// @Success      200      {object}  dto.SyncSelectionResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/v1/selections/sync [post]
func (s *PricingService) SyncSelection(
	_ context.Context,
	req dto.SyncSelectionRequest,
) (dto.SyncSelectionResponse, error) {
	selection, transition := fare.Sync(req.Rows, req.Current)

	return dto.SyncSelectionResponse{
		Selection:  selection,
		Transition: transition,
	}, nil
}
