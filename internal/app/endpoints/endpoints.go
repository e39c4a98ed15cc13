package endpoints

import (
	"github.com/go-kit/kit/endpoint"
)

// Endpoints collects every service endpoint exposed over HTTP.
type Endpoints struct {
	Itinerary ItineraryEndpoint
	Pricing   PricingEndpoint
	Seat      SeatEndpoint
	Booking   BookingEndpoint
	Airport   AirportEndpoint
}

type ItineraryEndpoint struct {
	Normalize endpoint.Endpoint
}

type PricingEndpoint struct {
	Quote         endpoint.Endpoint
	SyncSelection endpoint.Endpoint
}

type SeatEndpoint struct {
	ApplySelection endpoint.Endpoint
}

type BookingEndpoint struct {
	Create             endpoint.Endpoint
	Get                endpoint.Endpoint
	SetPNR             endpoint.Endpoint
	Share              endpoint.Endpoint
	AddRecentSearch    endpoint.Endpoint
	ListRecentSearches endpoint.Endpoint
}

type AirportEndpoint struct {
	Search endpoint.Endpoint
}
