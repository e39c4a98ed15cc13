package transport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/tripdesk/fareview-service/internal/app/config"
	"github.com/tripdesk/fareview-service/internal/app/dto"
	"github.com/tripdesk/fareview-service/internal/app/endpoints"
	"github.com/tripdesk/fareview-service/internal/pkg/exception"
	httptransport "github.com/tripdesk/fareview-service/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Post("/itineraries/normalize", httptransport.MakeHandlerFunc(
			endpts.Itinerary.Normalize,
			httptransport.DecodeRequest[dto.NormalizeItineraryRequest],
			httptransport.ResponseWithBody,
		))

		router.Post("/fares/quote", httptransport.MakeHandlerFunc(
			endpts.Pricing.Quote,
			httptransport.DecodeRequest[dto.QuoteRequest],
			httptransport.ResponseWithBody,
		))

		router.Post("/selections/sync", httptransport.MakeHandlerFunc(
			endpts.Pricing.SyncSelection,
			httptransport.DecodeRequest[dto.SyncSelectionRequest],
			httptransport.ResponseWithBody,
		))

		router.Post("/seats/selection", httptransport.MakeHandlerFunc(
			endpts.Seat.ApplySelection,
			httptransport.DecodeRequest[dto.SeatSelectionRequest],
			httptransport.ResponseWithBody,
		))

		router.Post("/bookings", httptransport.MakeHandlerFunc(
			endpts.Booking.Create,
			httptransport.DecodeRequest[dto.CreateBookingRequest],
			httptransport.ResponseWithBody,
		))

		router.Get("/bookings/{id}", httptransport.MakeHandlerFunc(
			endpts.Booking.Get,
			decodeBookingID,
			httptransport.ResponseWithBody,
		))

		router.Patch("/bookings/{id}/pnr", httptransport.MakeHandlerFunc(
			endpts.Booking.SetPNR,
			decodeSetPNR,
			httptransport.ResponseWithBody,
		))

		router.Get("/bookings/{id}/share", httptransport.MakeHandlerFunc(
			endpts.Booking.Share,
			decodeBookingID,
			httptransport.ResponseWithBody,
		))

		router.Post("/searches/recent", httptransport.MakeHandlerFunc(
			endpts.Booking.AddRecentSearch,
			httptransport.DecodeRequest[dto.RecentSearchRequest],
			httptransport.ResponseWithBody,
		))

		router.Get("/searches/recent", httptransport.MakeHandlerFunc(
			endpts.Booking.ListRecentSearches,
			decodeAgentID,
			httptransport.ResponseWithBody,
		))

		router.Get("/airports", httptransport.MakeHandlerFunc(
			endpts.Airport.Search,
			decodeAirportQuery,
			httptransport.ResponseWithBody,
		))
	})

	return router
}

func decodeBookingID(_ context.Context, r *http.Request) (interface{}, error) {
	id := chi.URLParam(r, "id")
	if id == "" {
		return nil, exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "booking id is required",
		}
	}

	return endpoints.BookingIDRequest{ID: id}, nil
}

func decodeSetPNR(ctx context.Context, r *http.Request) (interface{}, error) {
	idReq, err := decodeBookingID(ctx, r)
	if err != nil {
		return nil, err
	}

	body, err := httptransport.DecodeRequest[dto.SetPNRRequest](ctx, r)
	if err != nil {
		return nil, err
	}

	return endpoints.SetPNRRequest{
		ID:   idReq.(endpoints.BookingIDRequest).ID,
		Body: *body.(*dto.SetPNRRequest),
	}, nil
}

func decodeAgentID(_ context.Context, r *http.Request) (interface{}, error) {
	agentID := r.URL.Query().Get("agent_id")
	if agentID == "" {
		return nil, exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "agent_id is required",
		}
	}

	return endpoints.AgentIDRequest{AgentID: agentID}, nil
}

func decodeAirportQuery(_ context.Context, r *http.Request) (interface{}, error) {
	query := r.URL.Query().Get("q")
	if query == "" {
		return nil, exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "q is required",
		}
	}

	return endpoints.AirportSearchRequest{Query: query}, nil
}
