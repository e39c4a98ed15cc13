package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/tripdesk/fareview-service/internal/app/dto"
)

type BookingService interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	SetPNR(ctx context.Context, id, pnr string) (dto.BookingResponse, error)
	Share(ctx context.Context, id string) (dto.SharePayloadResponse, error)
	AddRecentSearch(ctx context.Context, req dto.RecentSearchRequest) error
	ListRecentSearches(ctx context.Context, agentID string) (dto.RecentSearchesResponse, error)
}

// BookingIDRequest is a path-parameter-only request.
type BookingIDRequest struct {
	ID string
}

// SetPNRRequest pairs the path id with the PNR body.
type SetPNRRequest struct {
	ID   string
	Body dto.SetPNRRequest
}

// AgentIDRequest is a query-parameter-only request.
type AgentIDRequest struct {
	AgentID string
}

func MakeBookingEndpoint(service BookingService) BookingEndpoint {
	return BookingEndpoint{
		Create:             makeCreateBookingEndpoint(service),
		Get:                makeGetBookingEndpoint(service),
		SetPNR:             makeSetPNREndpoint(service),
		Share:              makeShareEndpoint(service),
		AddRecentSearch:    makeAddRecentSearchEndpoint(service),
		ListRecentSearches: makeListRecentSearchesEndpoint(service),
	}
}

func makeCreateBookingEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.CreateBookingRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.Create(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return response, nil
	}
}

func makeGetBookingEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(BookingIDRequest)
		if !ok {
			return nil, errors.New("invalid type")
		}

		response, err := service.Get(ctx, request.ID)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return response, nil
	}
}

func makeSetPNREndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(SetPNRRequest)
		if !ok {
			return nil, errors.New("invalid type")
		}

		response, err := service.SetPNR(ctx, request.ID, request.Body.PNR)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return response, nil
	}
}

func makeShareEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(BookingIDRequest)
		if !ok {
			return nil, errors.New("invalid type")
		}

		response, err := service.Share(ctx, request.ID)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return response, nil
	}
}

func makeAddRecentSearchEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.RecentSearchRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		if err := service.AddRecentSearch(ctx, *request); err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return dto.Response{Message: "recorded"}, nil
	}
}

func makeListRecentSearchesEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(AgentIDRequest)
		if !ok {
			return nil, errors.New("invalid type")
		}

		response, err := service.ListRecentSearches(ctx, request.AgentID)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return response, nil
	}
}
