package dto

import (
	"fmt"
	"net/http"

	"github.com/tripdesk/fareview-service/internal/pkg/exception"
	"github.com/tripdesk/fareview-service/internal/pkg/fare"
)

// QuoteRequest resolves one fare option into its displayed pricing view.
type QuoteRequest struct {
	Fare  fare.Option    `json:"fare" validate:"required"`
	Mode  fare.PriceMode `json:"mode" validate:"required,oneof=SELL NET COMM BOTH"`
	Seats int            `json:"seats" validate:"omitempty,min=0,max=18"`
	View  fare.View      `json:"view" validate:"required,oneof=SINGLE FULL"`
}

func (r *QuoteRequest) Bind(_ *http.Request) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (r *QuoteRequest) Validate() error {
	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	if r.Fare.SellINR <= 0 {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "fare sell price must be positive",
		}
	}

	return nil
}

// QuoteResponse wraps the resolved view with the formatted strings the UI
// shows directly.
type QuoteResponse struct {
	View              fare.PricingView `json:"view"`
	MainDisplay       string           `json:"main_display"`
	NetDisplay        string           `json:"net_display"`
	CommissionDisplay string           `json:"commission_display"`
}

// SyncSelectionRequest re-evaluates a selection against the latest row list.
type SyncSelectionRequest struct {
	Rows    []fare.Row     `json:"rows" validate:"required,min=1"`
	Current fare.Selection `json:"current"`
}

func (r *SyncSelectionRequest) Bind(_ *http.Request) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (r *SyncSelectionRequest) Validate() error {
	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

type SyncSelectionResponse struct {
	Selection  fare.Selection  `json:"selection"`
	Transition fare.Transition `json:"transition"`
}
