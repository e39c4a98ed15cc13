package fare

import (
	"github.com/tripdesk/fareview-service/internal/pkg/utils"
)

// PriceMode selects which amount an agent sees as the headline value.
type PriceMode string

const (
	ModeSell PriceMode = "SELL"
	ModeNet  PriceMode = "NET"
	ModeComm PriceMode = "COMM"
	ModeBoth PriceMode = "BOTH"
)

// View selects per-traveller vs trip-total display.
type View string

const (
	ViewSingle View = "SINGLE"
	ViewFull   View = "FULL"
)

// Amount is a money value that may be unknown. Unknown renders as "—",
// never as zero: zero would assert a known value.
type Amount struct {
	Value int64 `json:"value"`
	Known bool  `json:"known"`
}

// Display formats an amount for rendering.
func (a Amount) Display() string {
	if !a.Known {
		return "—"
	}

	return utils.FormatINR(a.Value)
}

func knownAmount(v int64) Amount { return Amount{Value: v, Known: true} }

// PricingView is the resolved display state for one fare option.
type PricingView struct {
	Mode       PriceMode `json:"mode"`
	View       View      `json:"view"`
	Seats      int       `json:"seats"`
	Main       Amount    `json:"main"`
	Sell       Amount    `json:"sell"`
	Net        Amount    `json:"net"`
	Commission Amount    `json:"commission"`
	// NetFallback marks a NET-mode headline that fell back to the sell
	// price because no net value was resolvable. The headline must never
	// be blank, but the substitution is flagged rather than silent.
	NetFallback bool `json:"net_fallback"`
}

// ResolveView computes the displayed amounts for a fare option under a
// price mode and a per-pax/trip-total view. Missing inputs degrade to
// unknown amounts; unknown commission stays unknown instead of showing a
// fabricated zero.
func ResolveView(option Option, mode PriceMode, seats int, view View) PricingView {
	scale := int64(1)
	if view == ViewFull {
		scale = int64(max(1, seats))
	}

	sell := knownAmount(option.SellINR * scale)

	net := Amount{}
	if value, ok := option.Net(); ok {
		net = knownAmount(value * scale)
	}

	commission := Amount{}
	if value, ok := option.Commission(); ok {
		commission = knownAmount(value * scale)
	}

	resolved := PricingView{
		Mode:       mode,
		View:       view,
		Seats:      max(1, seats),
		Sell:       sell,
		Net:        net,
		Commission: commission,
	}

	switch mode {
	case ModeNet:
		if net.Known {
			resolved.Main = net
		} else {
			resolved.Main = sell
			resolved.NetFallback = true
		}
	case ModeComm:
		resolved.Main = commission
	default: // ModeSell, ModeBoth
		resolved.Main = sell
	}

	return resolved
}

// Margin is what the agency retains: sell minus net, i.e. the commission.
// Unknown when neither net nor commission is resolvable.
func Margin(option Option) Amount {
	if value, ok := option.Commission(); ok {
		return knownAmount(value)
	}

	return Amount{}
}
