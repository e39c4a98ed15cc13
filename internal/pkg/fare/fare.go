package fare

// Option is one priced, rules-bound purchase choice on a flight row.
// SellINR is authoritative. AgentNetINR and CommissionINR are optional;
// whenever both are known the identity sell = net + commission holds, and
// when only one is known the other derives from the same identity. The
// reverse (recomputing sell) never happens.
type Option struct {
	Code          string  `json:"code"`
	Label         string  `json:"label"`
	SellINR       int64   `json:"sell_inr"`
	AgentNetINR   *int64  `json:"agent_net_inr,omitempty"`
	CommissionINR *int64  `json:"commission_inr,omitempty"`
	Refundable    bool    `json:"refundable"`
	Cabin         string  `json:"cabin"`
	Meal          string  `json:"meal"`
	BaggageKg     string  `json:"baggage_kg"`
}

// Net resolves the agent net cost: explicit value first, else derived from
// commission. Second return reports whether the value is known at all.
func (o Option) Net() (int64, bool) {
	if o.AgentNetINR != nil {
		return *o.AgentNetINR, true
	}

	if o.CommissionINR != nil {
		return o.SellINR - *o.CommissionINR, true
	}

	return 0, false
}

// Commission resolves the agent commission: explicit value first, else
// derived from net.
func (o Option) Commission() (int64, bool) {
	if o.CommissionINR != nil {
		return *o.CommissionINR, true
	}

	if o.AgentNetINR != nil {
		return o.SellINR - *o.AgentNetINR, true
	}

	return 0, false
}

// Row is one flight offer: a schedule with one or more fare options.
type Row struct {
	ID        string   `json:"id"`
	Airline   string   `json:"airline"`
	LogoURL   string   `json:"logo_url"`
	FlightNos []string `json:"flight_nos"`
	StopLabel string   `json:"stop_label"`
	Baggage   string   `json:"baggage"`
	Fares     []Option `json:"fares"`
}

// CheapestFare returns the lowest-sell fare of a row, false when the row
// has no fares.
func (r Row) CheapestFare() (Option, bool) {
	if len(r.Fares) == 0 {
		return Option{}, false
	}

	cheapest := r.Fares[0]
	for _, option := range r.Fares[1:] {
		if option.SellINR < cheapest.SellINR {
			cheapest = option
		}
	}

	return cheapest, true
}

// FareByCode looks a fare option up by its code.
func (r Row) FareByCode(code string) (Option, bool) {
	for _, option := range r.Fares {
		if option.Code == code {
			return option, true
		}
	}

	return Option{}, false
}
