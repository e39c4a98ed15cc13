//go:build unit

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tripdesk/fareview-service/internal/app/dto"
	"github.com/tripdesk/fareview-service/internal/app/service"
	"github.com/tripdesk/fareview-service/internal/pkg/booking"
	"github.com/tripdesk/fareview-service/internal/pkg/fare"
)

func sampleOutbound() dto.LegSelectionInput {
	return dto.LegSelectionInput{
		Flight: fare.Row{
			ID:      "6E-204",
			Airline: "IndiGo",
			Fares: []fare.Option{
				{Code: "SAVER", SellINR: 4500},
			},
		},
		FareCode: "SAVER",
		Segments: []map[string]interface{}{
			{
				"id":       "6E-204",
				"fromIata": "DEL",
				"toIata":   "BOM",
				"depDate":  "2026-01-10",
				"depTime":  "06:30",
			},
		},
	}
}

func TestBookingService_Create(t *testing.T) {
	t.Parallel()

	t.Run("saves snapshot with computed pricing", func(t *testing.T) {
		t.Parallel()

		store := service.NewMockBookingStorer(t)
		store.On("Save", mock.Anything, mock.MatchedBy(func(ctx booking.Context) bool {
			return ctx.ID != "" &&
				ctx.Outbound.Fare.Code == "SAVER" &&
				ctx.Pricing.PerTraveller == 4500 &&
				ctx.Pricing.TotalFare == 9000 &&
				ctx.Pricing.Pax == 2
		}), 30*time.Minute).Return(nil)

		svc := service.NewBookingService(store, 30*time.Minute, 5*time.Second)
		resp, err := svc.Create(context.Background(), dto.CreateBookingRequest{
			Outbound:   sampleOutbound(),
			Passengers: map[string]interface{}{"adults": 2},
		})

		assert.NoError(t, err)
		assert.Equal(t, "SAVER", resp.Booking.Outbound.Fare.Code)
		assert.Nil(t, resp.Booking.Inbound)
	})

	t.Run("records recent search for the agent", func(t *testing.T) {
		t.Parallel()

		store := service.NewMockBookingStorer(t)
		store.On("Save", mock.Anything, mock.Anything, 30*time.Minute).Return(nil)
		store.On("PushRecentSearch", mock.Anything, "agent-9", booking.RecentSearch{
			Origin:      "DEL",
			Destination: "BOM",
			Date:        "2026-01-10",
			TripType:    "ONEWAY",
		}).Return(nil)

		svc := service.NewBookingService(store, 30*time.Minute, 5*time.Second)
		_, err := svc.Create(context.Background(), dto.CreateBookingRequest{
			Outbound: sampleOutbound(),
			AgentID:  "agent-9",
		})

		assert.NoError(t, err)
	})

	t.Run("recent search failure never fails the booking", func(t *testing.T) {
		t.Parallel()

		store := service.NewMockBookingStorer(t)
		store.On("Save", mock.Anything, mock.Anything, 30*time.Minute).Return(nil)
		store.On("PushRecentSearch", mock.Anything, "agent-9", mock.Anything).
			Return(errors.New("connection refused"))

		svc := service.NewBookingService(store, 30*time.Minute, 5*time.Second)
		_, err := svc.Create(context.Background(), dto.CreateBookingRequest{
			Outbound: sampleOutbound(),
			AgentID:  "agent-9",
		})

		assert.NoError(t, err)
	})

	t.Run("save failure surfaces", func(t *testing.T) {
		t.Parallel()

		store := service.NewMockBookingStorer(t)
		store.On("Save", mock.Anything, mock.Anything, 30*time.Minute).
			Return(errors.New("connection refused"))

		svc := service.NewBookingService(store, 30*time.Minute, 5*time.Second)
		_, err := svc.Create(context.Background(), dto.CreateBookingRequest{
			Outbound: sampleOutbound(),
		})

		assert.Error(t, err)
	})
}

func TestBookingService_Get(t *testing.T) {
	t.Parallel()

	t.Run("returns stored context", func(t *testing.T) {
		t.Parallel()

		store := service.NewMockBookingStorer(t)
		store.On("Get", mock.Anything, "bkg-123").
			Return(booking.Context{ID: "bkg-123"}, nil)

		svc := service.NewBookingService(store, 30*time.Minute, 5*time.Second)
		resp, err := svc.Get(context.Background(), "bkg-123")

		assert.NoError(t, err)
		assert.Equal(t, "bkg-123", resp.Booking.ID)
	})

	t.Run("missing context maps to not found", func(t *testing.T) {
		t.Parallel()

		store := service.NewMockBookingStorer(t)
		store.On("Get", mock.Anything, "gone").
			Return(booking.Context{}, redis.Nil)

		svc := service.NewBookingService(store, 30*time.Minute, 5*time.Second)
		_, err := svc.Get(context.Background(), "gone")

		assert.ErrorIs(t, err, service.ErrBookingNotFound)
	})
}

func TestBookingService_SetPNR(t *testing.T) {
	t.Parallel()

	t.Run("merges pnr under lock", func(t *testing.T) {
		t.Parallel()

		store := service.NewMockBookingStorer(t)
		store.On("AcquireLock", mock.Anything, "bkg-123", 5*time.Second).Return(true, nil)
		store.On("Get", mock.Anything, "bkg-123").
			Return(booking.Context{ID: "bkg-123"}, nil)
		store.On("Save", mock.Anything, mock.MatchedBy(func(ctx booking.Context) bool {
			return ctx.PNR == "AB12CD"
		}), 30*time.Minute).Return(nil)
		store.On("ReleaseLock", mock.Anything, "bkg-123").Return(nil)

		svc := service.NewBookingService(store, 30*time.Minute, 5*time.Second)
		resp, err := svc.SetPNR(context.Background(), "bkg-123", "AB12CD")

		assert.NoError(t, err)
		assert.Equal(t, "AB12CD", resp.Booking.PNR)
	})

	t.Run("missing context maps to not found", func(t *testing.T) {
		t.Parallel()

		store := service.NewMockBookingStorer(t)
		store.On("AcquireLock", mock.Anything, "gone", 5*time.Second).Return(true, nil)
		store.On("Get", mock.Anything, "gone").Return(booking.Context{}, redis.Nil)
		store.On("ReleaseLock", mock.Anything, "gone").Return(nil)

		svc := service.NewBookingService(store, 30*time.Minute, 5*time.Second)
		_, err := svc.SetPNR(context.Background(), "gone", "AB12CD")

		assert.ErrorIs(t, err, service.ErrBookingNotFound)
	})

	t.Run("contended lock rejects the edit", func(t *testing.T) {
		t.Parallel()

		store := service.NewMockBookingStorer(t)
		store.On("AcquireLock", mock.Anything, "bkg-123", 5*time.Second).Return(false, nil)

		svc := service.NewBookingService(store, 30*time.Minute, 5*time.Second)
		_, err := svc.SetPNR(context.Background(), "bkg-123", "AB12CD")

		assert.ErrorIs(t, err, service.ErrBookingLocked)
		store.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("lock error surfaces", func(t *testing.T) {
		t.Parallel()

		store := service.NewMockBookingStorer(t)
		store.On("AcquireLock", mock.Anything, "bkg-123", 5*time.Second).
			Return(false, errors.New("connection refused"))

		svc := service.NewBookingService(store, 30*time.Minute, 5*time.Second)
		_, err := svc.SetPNR(context.Background(), "bkg-123", "AB12CD")

		assert.Error(t, err)
	})
}

func TestBookingService_Share(t *testing.T) {
	t.Parallel()

	store := service.NewMockBookingStorer(t)
	store.On("Get", mock.Anything, "bkg-123").Return(booking.Context{
		ID: "bkg-123",
		Outbound: booking.LegSelection{
			Flight: fare.Row{Airline: "IndiGo"},
		},
		Pricing: booking.Pricing{TotalFare: 9000, Pax: 2},
	}, nil)

	svc := service.NewBookingService(store, 30*time.Minute, 5*time.Second)
	resp, err := svc.Share(context.Background(), "bkg-123")

	assert.NoError(t, err)
	assert.Contains(t, resp.Share.Text, "Total fare: ₹9,000 for 2 traveller(s)")
	assert.Contains(t, resp.Share.WhatsAppURL, "https://wa.me/?text=")
}

func TestBookingService_RecentSearches(t *testing.T) {
	t.Parallel()

	search := booking.RecentSearch{Origin: "DEL", Destination: "BOM", Date: "2026-01-10", TripType: "ONEWAY"}

	t.Run("add delegates to the store", func(t *testing.T) {
		t.Parallel()

		store := service.NewMockBookingStorer(t)
		store.On("PushRecentSearch", mock.Anything, "agent-9", search).Return(nil)

		svc := service.NewBookingService(store, 30*time.Minute, 5*time.Second)
		assert.NoError(t, svc.AddRecentSearch(context.Background(), dto.RecentSearchRequest{
			AgentID:      "agent-9",
			RecentSearch: search,
		}))
	})

	t.Run("list returns newest first", func(t *testing.T) {
		t.Parallel()

		store := service.NewMockBookingStorer(t)
		store.On("RecentSearches", mock.Anything, "agent-9").
			Return([]booking.RecentSearch{search}, nil)

		svc := service.NewBookingService(store, 30*time.Minute, 5*time.Second)
		resp, err := svc.ListRecentSearches(context.Background(), "agent-9")

		assert.NoError(t, err)
		assert.Len(t, resp.Searches, 1)
		assert.Equal(t, "DEL", resp.Searches[0].Origin)
	})
}
