package itinerary

// Endpoint is one side of a flown segment. Date and time are kept as the
// separate strings the upstream payloads deliver; joining them happens only
// inside the UTC-safe diff helpers.
type Endpoint struct {
	Code     string `json:"code"`
	City     string `json:"city"`
	Terminal string `json:"terminal"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

type Baggage struct {
	CheckIn string `json:"check_in"`
	Cabin   string `json:"cabin"`
}

// Segment is the canonical record every upstream segment shape normalizes
// into. Segments are immutable once built; downstream code only derives
// views from them.
type Segment struct {
	ID           string   `json:"id"`
	AirlineName  string   `json:"airline_name"`
	AirlineCode  string   `json:"airline_code"`
	FlightNo     string   `json:"flight_no"`
	Aircraft     string   `json:"aircraft"`
	Cabin        string   `json:"cabin"`
	From         Endpoint `json:"from"`
	To           Endpoint `json:"to"`
	DurationMins int64    `json:"duration_mins"`
	Baggage      Baggage  `json:"baggage"`
	LayoverMins  int64    `json:"layover_mins"`
	LayoverAt    string   `json:"layover_at"`
	Refundable   bool     `json:"refundable"`
	Direction    string   `json:"direction,omitempty"`
}

// Direction labels for a partitioned leg.
const (
	DirectionOutbound = "outbound"
	DirectionInbound  = "inbound"
)
