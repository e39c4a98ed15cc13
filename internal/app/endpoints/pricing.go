package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/tripdesk/fareview-service/internal/app/dto"
)

type PricingService interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
	SyncSelection(ctx context.Context, req dto.SyncSelectionRequest) (dto.SyncSelectionResponse, error)
}

type SeatService interface {
	ApplySelection(ctx context.Context, req dto.SeatSelectionRequest) (dto.SeatSelectionResponse, error)
}

func MakePricingEndpoint(service PricingService) PricingEndpoint {
	return PricingEndpoint{
		Quote:         makeQuoteEndpoint(service),
		SyncSelection: makeSyncSelectionEndpoint(service),
	}
}

func MakeSeatEndpoint(service SeatService) SeatEndpoint {
	return SeatEndpoint{
		ApplySelection: makeApplySelectionEndpoint(service),
	}
}

func makeQuoteEndpoint(service PricingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.QuoteRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.Quote(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("pricing service: %w", err)
		}

		return response, nil
	}
}

func makeSyncSelectionEndpoint(service PricingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SyncSelectionRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.SyncSelection(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("pricing service: %w", err)
		}

		return response, nil
	}
}

func makeApplySelectionEndpoint(service SeatService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SeatSelectionRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.ApplySelection(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("seat service: %w", err)
		}

		return response, nil
	}
}
