package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/tripdesk/fareview-service/internal/app/dto"
	"github.com/tripdesk/fareview-service/internal/pkg/booking"
	"github.com/tripdesk/fareview-service/internal/pkg/fare"
	"github.com/tripdesk/fareview-service/internal/pkg/itinerary"
	"github.com/tripdesk/fareview-service/internal/pkg/pax"
	"github.com/tripdesk/fareview-service/internal/pkg/share"
)

// BookingStorer is the typed, versioned replacement for the portal's ad hoc
// session-storage access.
type BookingStorer interface {
	Save(ctx context.Context, bookingCtx booking.Context, expiration time.Duration) error
	Get(ctx context.Context, id string) (booking.Context, error)
	AcquireLock(ctx context.Context, id string, timeout time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, id string) error
	PushRecentSearch(ctx context.Context, agentID string, search booking.RecentSearch) error
	RecentSearches(ctx context.Context, agentID string) ([]booking.RecentSearch, error)
}

type BookingService struct {
	Store       BookingStorer
	ContextTTL  time.Duration
	LockTimeout time.Duration
}

func NewBookingService(store BookingStorer, contextTTL, lockTimeout time.Duration) *BookingService {
	return &BookingService{
		Store:       store,
		ContextTTL:  contextTTL,
		LockTimeout: lockTimeout,
	}
}

// Create godoc
// @Summary      Create a booking context
// @Tags         Bookings
// @Description  Snapshot the selected flights, fares and pricing breakdown
// @Param        request  body      dto.CreateBookingRequest  true  "Selection snapshot"
// @Success      200      {object}  dto.BookingResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/bookings [post]
func (s *BookingService) Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error) {
	paxConfig := pax.Normalize(req.Passengers)

	outbound := buildLegSelection(req.Outbound)
	fares := []fare.Option{outbound.Fare}

	bookingCtx := booking.Context{
		ID:        uuid.New().String(),
		Outbound:  outbound,
		PaxConfig: paxConfig,
		CreatedAt: time.Now().UTC(),
	}

	if req.Inbound != nil {
		inbound := buildLegSelection(*req.Inbound)
		bookingCtx.Inbound = &inbound
		fares = append(fares, inbound.Fare)
	}

	bookingCtx.Pricing = booking.BuildPricing(fares, paxConfig)

	if err := s.Store.Save(ctx, bookingCtx, s.ContextTTL); err != nil {
		return dto.BookingResponse{}, fmt.Errorf("failed to save booking context: %w", err)
	}

	if req.AgentID != "" && len(outbound.Segments) > 0 {
		first := outbound.Segments[0]
		last := outbound.Segments[len(outbound.Segments)-1]

		search := booking.RecentSearch{
			Origin:      first.From.Code,
			Destination: last.To.Code,
			Date:        first.From.Date,
			TripType:    tripTypeOf(req),
		}

		// best effort, a failed recent-search write never fails the booking
		_ = s.Store.PushRecentSearch(ctx, req.AgentID, search)
	}

	return dto.BookingResponse{Booking: bookingCtx}, nil
}

// Get godoc
// @Summary      Read a booking context
// @Tags         Bookings
// @Success      200  {object}  dto.BookingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/bookings/{id} [get]
func (s *BookingService) Get(ctx context.Context, id string) (dto.BookingResponse, error) {
	bookingCtx, err := s.Store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return dto.BookingResponse{}, ErrBookingNotFound
		}

		return dto.BookingResponse{}, fmt.Errorf("failed to get booking context: %w", err)
	}

	return dto.BookingResponse{Booking: bookingCtx}, nil
}

// SetPNR merges a PNR into an existing booking context. The read-modify-
// write runs under the store lock so two confirmation edits cannot clobber
// each other.
func (s *BookingService) SetPNR(ctx context.Context, id, pnr string) (dto.BookingResponse, error) {
	acquired, err := s.Store.AcquireLock(ctx, id, s.LockTimeout)
	if err != nil {
		return dto.BookingResponse{}, fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !acquired {
		return dto.BookingResponse{}, ErrBookingLocked
	}
	defer s.Store.ReleaseLock(ctx, id)

	bookingCtx, err := s.Store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return dto.BookingResponse{}, ErrBookingNotFound
		}

		return dto.BookingResponse{}, fmt.Errorf("failed to get booking context: %w", err)
	}

	bookingCtx.PNR = pnr

	if err := s.Store.Save(ctx, bookingCtx, s.ContextTTL); err != nil {
		return dto.BookingResponse{}, fmt.Errorf("failed to save booking context: %w", err)
	}

	return dto.BookingResponse{Booking: bookingCtx}, nil
}

// Share builds the wa.me/mailto/clipboard payload for a booking.
func (s *BookingService) Share(ctx context.Context, id string) (dto.SharePayloadResponse, error) {
	bookingCtx, err := s.Store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return dto.SharePayloadResponse{}, ErrBookingNotFound
		}

		return dto.SharePayloadResponse{}, fmt.Errorf("failed to get booking context: %w", err)
	}

	return dto.SharePayloadResponse{Share: share.Build(bookingCtx)}, nil
}

// AddRecentSearch records a search in the agent's recent list.
func (s *BookingService) AddRecentSearch(ctx context.Context, req dto.RecentSearchRequest) error {
	if err := s.Store.PushRecentSearch(ctx, req.AgentID, req.RecentSearch); err != nil {
		return fmt.Errorf("failed to push recent search: %w", err)
	}

	return nil
}

// ListRecentSearches returns the agent's recent searches, newest first.
func (s *BookingService) ListRecentSearches(ctx context.Context, agentID string) (dto.RecentSearchesResponse, error) {
	searches, err := s.Store.RecentSearches(ctx, agentID)
	if err != nil {
		return dto.RecentSearchesResponse{}, fmt.Errorf("failed to list recent searches: %w", err)
	}

	return dto.RecentSearchesResponse{Searches: searches}, nil
}

func buildLegSelection(input dto.LegSelectionInput) booking.LegSelection {
	option, _ := input.Flight.FareByCode(input.FareCode)
	segments := itinerary.NormalizeSegments(input.Segments)

	return booking.LegSelection{
		Flight:   input.Flight,
		Fare:     option,
		Segments: segments,
		Stops:    itinerary.SummaryWithFallback(segments, input.Flight.StopLabel),
	}
}

func tripTypeOf(req dto.CreateBookingRequest) string {
	if req.Inbound != nil {
		return "ROUND"
	}

	return "ONEWAY"
}
