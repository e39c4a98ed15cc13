// Package share builds the text payloads behind the result screen's share
// buttons: a wa.me deep link, a mailto: URI and plain clipboard text.
package share

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tripdesk/fareview-service/internal/pkg/booking"
	"github.com/tripdesk/fareview-service/internal/pkg/utils"
)

// Payload carries the same trip summary in the three share formats.
type Payload struct {
	Text        string `json:"text"`
	WhatsAppURL string `json:"whatsapp_url"`
	MailtoURI   string `json:"mailto_uri"`
}

// Build renders the share formats for a booking context.
func Build(bookingCtx booking.Context) Payload {
	text := summaryText(bookingCtx)
	subject := fmt.Sprintf("Flight booking %s", routeLabel(bookingCtx))

	return Payload{
		Text:        text,
		WhatsAppURL: "https://wa.me/?text=" + url.QueryEscape(text),
		MailtoURI: fmt.Sprintf("mailto:?subject=%s&body=%s",
			url.QueryEscape(subject), url.QueryEscape(text)),
	}
}

func summaryText(bookingCtx booking.Context) string {
	var b strings.Builder

	writeLeg := func(label string, leg booking.LegSelection) {
		if len(leg.Segments) == 0 {
			return
		}

		first := leg.Segments[0]
		last := leg.Segments[len(leg.Segments)-1]

		fmt.Fprintf(&b, "%s: %s %s → %s on %s %s",
			label, leg.Flight.Airline, first.From.Code, last.To.Code,
			first.From.Date, first.From.Time)

		if stops := leg.Stops.Stops; stops > 0 {
			fmt.Fprintf(&b, " (%d stop(s))", stops)
		}

		b.WriteString("\n")
	}

	writeLeg("Onward", bookingCtx.Outbound)
	if bookingCtx.Inbound != nil {
		writeLeg("Return", *bookingCtx.Inbound)
	}

	fmt.Fprintf(&b, "Total fare: %s for %d traveller(s)",
		utils.FormatINR(bookingCtx.Pricing.TotalFare), bookingCtx.Pricing.Pax)

	if bookingCtx.PNR != "" {
		fmt.Fprintf(&b, "\nPNR: %s", bookingCtx.PNR)
	}

	return b.String()
}

func routeLabel(bookingCtx booking.Context) string {
	segs := bookingCtx.Outbound.Segments
	if len(segs) == 0 {
		return ""
	}

	return fmt.Sprintf("%s-%s", segs[0].From.Code, segs[len(segs)-1].To.Code)
}
