package booking

import (
	"time"

	"github.com/tripdesk/fareview-service/internal/pkg/fare"
	"github.com/tripdesk/fareview-service/internal/pkg/itinerary"
	"github.com/tripdesk/fareview-service/internal/pkg/pax"
)

// LegSelection snapshots one direction of the chosen trip.
type LegSelection struct {
	Flight   fare.Row              `json:"flight"`
	Fare     fare.Option           `json:"fare"`
	Segments []itinerary.Segment   `json:"segments"`
	Stops    itinerary.StopSummary `json:"stops"`
}

// Pricing is the full agent-facing breakdown for a booking. Per-pax values
// scale by seat count; margin equals commission by the sell identity.
type Pricing struct {
	PerTraveller     int64       `json:"per_traveller"`
	TotalFare        int64       `json:"total_fare"`
	Pax              int         `json:"pax"`
	AgentNetPerPax   fare.Amount `json:"agent_net_per_pax"`
	AgentNetTotal    fare.Amount `json:"agent_net_total"`
	CommissionPerPax fare.Amount `json:"commission_per_pax"`
	CommissionTotal  fare.Amount `json:"commission_total"`
	MarginPerPax     fare.Amount `json:"margin_per_pax"`
	MarginTotal      fare.Amount `json:"margin_total"`
}

// Context is the write-once handoff snapshot taken at "Book Now" time. The
// only later mutation is the confirmation screen's PNR merge.
type Context struct {
	ID        string        `json:"id"`
	Outbound  LegSelection  `json:"outbound"`
	Inbound   *LegSelection `json:"inbound,omitempty"`
	Pricing   Pricing       `json:"pricing"`
	PaxConfig pax.Config    `json:"pax_config"`
	PNR       string        `json:"pnr,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// BuildPricing computes the booking breakdown across one or two legs.
// Sell values always sum; net/commission stay unknown if any leg's fare
// cannot resolve them, so a partially known trip never shows a number that
// undercounts.
func BuildPricing(fares []fare.Option, cfg pax.Config) Pricing {
	seats := cfg.SeatCount()

	var (
		perTraveller int64
		netPerPax    int64
		commPerPax   int64
		netKnown     = true
		commKnown    = true
	)

	for _, option := range fares {
		perTraveller += option.SellINR

		if value, ok := option.Net(); ok {
			netPerPax += value
		} else {
			netKnown = false
		}

		if value, ok := option.Commission(); ok {
			commPerPax += value
		} else {
			commKnown = false
		}
	}

	pricing := Pricing{
		PerTraveller: perTraveller,
		TotalFare:    perTraveller * int64(seats),
		Pax:          seats,
	}

	if netKnown && len(fares) > 0 {
		pricing.AgentNetPerPax = fare.Amount{Value: netPerPax, Known: true}
		pricing.AgentNetTotal = fare.Amount{Value: netPerPax * int64(seats), Known: true}
	}

	if commKnown && len(fares) > 0 {
		pricing.CommissionPerPax = fare.Amount{Value: commPerPax, Known: true}
		pricing.CommissionTotal = fare.Amount{Value: commPerPax * int64(seats), Known: true}
		pricing.MarginPerPax = pricing.CommissionPerPax
		pricing.MarginTotal = pricing.CommissionTotal
	}

	return pricing
}
