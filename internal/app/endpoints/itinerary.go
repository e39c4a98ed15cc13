package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/tripdesk/fareview-service/internal/app/dto"
)

type ItineraryService interface {
	Normalize(ctx context.Context, req dto.NormalizeItineraryRequest) (dto.NormalizeItineraryResponse, error)
}

func MakeItineraryEndpoint(service ItineraryService) ItineraryEndpoint {
	return ItineraryEndpoint{
		Normalize: makeNormalizeEndpoint(service),
	}
}

func makeNormalizeEndpoint(service ItineraryService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.NormalizeItineraryRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.Normalize(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("itinerary service: %w", err)
		}

		return response, nil
	}
}
