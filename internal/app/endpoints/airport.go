package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/tripdesk/fareview-service/internal/app/dto"
)

type AirportService interface {
	Search(ctx context.Context, query string) (dto.AirportSearchResponse, error)
}

// AirportSearchRequest carries the q query parameter.
type AirportSearchRequest struct {
	Query string
}

func MakeAirportEndpoint(service AirportService) AirportEndpoint {
	return AirportEndpoint{
		Search: makeAirportSearchEndpoint(service),
	}
}

func makeAirportSearchEndpoint(service AirportService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(AirportSearchRequest)
		if !ok {
			return nil, errors.New("invalid type")
		}

		response, err := service.Search(ctx, request.Query)
		if err != nil {
			return nil, fmt.Errorf("airport service: %w", err)
		}

		return response, nil
	}
}
