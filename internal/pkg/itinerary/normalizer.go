package itinerary

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/tripdesk/fareview-service/internal/pkg/utils"
)

// Upstream search results arrive with highly variable field naming depending
// on which source produced them. Each canonical field probes a fixed priority
// list of source names and takes the first defined value. Normalization never
// fails: missing data becomes empty-string/zero and is rendered as "—"
// downstream, never here.

var (
	idKeys          = []string{"id", "segmentId", "segment_id", "key"}
	airlineNameKeys = []string{"airlineName", "airline_name", "airline", "carrierName", "carrier_name"}
	airlineCodeKeys = []string{"airlineCode", "airline_code", "carrierCode", "carrier_code", "iata"}
	flightNoKeys    = []string{"flightNo", "flight_no", "flightNumber", "flight_number", "number"}
	aircraftKeys    = []string{"aircraft", "aircraftType", "aircraft_type", "equipment", "planeType", "plane_type"}
	cabinKeys       = []string{"cabin", "cabinClass", "cabin_class", "class"}
	durationKeys    = []string{"durationMins", "duration_mins", "durationMinutes", "duration_minutes", "duration", "flightTime", "flight_time"}
	layoverMinKeys  = []string{"layoverMin", "layover_min", "layoverMins", "layoverMinutes", "layover_minutes"}
	layoverAtKeys   = []string{"layoverAt", "layover_at", "layoverCity", "layover_city"}
	refundableKeys  = []string{"refundable", "isRefundable", "is_refundable"}
	checkInBagKeys  = []string{"checkInBaggage", "check_in_baggage", "checkedBaggage", "checked_baggage", "baggage"}
	cabinBagKeys    = []string{"cabinBaggage", "cabin_baggage", "handBaggage", "hand_baggage", "carryOn", "carry_on"}

	fromObjectKeys = []string{"from", "origin", "departure", "dep"}
	toObjectKeys   = []string{"to", "destination", "arrival", "arr"}

	fromCodeKeys     = []string{"fromIata", "from_iata", "fromCode", "from_code", "origin", "originCode", "departureAirport"}
	fromCityKeys     = []string{"fromCity", "from_city", "originCity", "origin_city"}
	fromTerminalKeys = []string{"fromTerminal", "from_terminal", "departureTerminal", "depTerminal"}
	fromDateKeys     = []string{"departDate", "depart_date", "depDate", "dep_date", "departureDate", "departure_date", "fromDate"}
	fromTimeKeys     = []string{"departTime", "depart_time", "depTime", "dep_time", "departureTime", "departure_time", "fromTime"}

	toCodeKeys     = []string{"toIata", "to_iata", "toCode", "to_code", "destination", "destinationCode", "arrivalAirport"}
	toCityKeys     = []string{"toCity", "to_city", "destinationCity", "destination_city"}
	toTerminalKeys = []string{"toTerminal", "to_terminal", "arrivalTerminal", "arrTerminal"}
	toDateKeys     = []string{"arriveDate", "arrive_date", "arrDate", "arr_date", "arrivalDate", "arrival_date", "toDate"}
	toTimeKeys     = []string{"arriveTime", "arrive_time", "arrTime", "arr_time", "arrivalTime", "arrival_time", "toTime"}

	endpointCodeKeys     = []string{"code", "iata", "airport", "airportCode"}
	endpointCityKeys     = []string{"city", "cityName", "name"}
	endpointTerminalKeys = []string{"terminal"}
	endpointDateKeys     = []string{"date"}
	endpointTimeKeys     = []string{"time"}
)

// NormalizeSegment converts one raw upstream segment shape into the canonical
// record. It never returns an error.
func NormalizeSegment(raw map[string]interface{}) Segment {
	return Segment{
		ID:           probeString(raw, idKeys),
		AirlineName:  probeString(raw, airlineNameKeys),
		AirlineCode:  probeString(raw, airlineCodeKeys),
		FlightNo:     probeString(raw, flightNoKeys),
		Aircraft:     probeString(raw, aircraftKeys),
		Cabin:        probeString(raw, cabinKeys),
		From:         normalizeEndpoint(raw, fromObjectKeys, fromCodeKeys, fromCityKeys, fromTerminalKeys, fromDateKeys, fromTimeKeys),
		To:           normalizeEndpoint(raw, toObjectKeys, toCodeKeys, toCityKeys, toTerminalKeys, toDateKeys, toTimeKeys),
		DurationMins: probeNumber(raw, durationKeys),
		Baggage: Baggage{
			CheckIn: probeString(raw, checkInBagKeys),
			Cabin:   probeString(raw, cabinBagKeys),
		},
		LayoverMins: probeNumber(raw, layoverMinKeys),
		LayoverAt:   probeString(raw, layoverAtKeys),
		Refundable:  probeBool(raw, refundableKeys),
		Direction:   probeDirection(raw),
	}
}

// probeDirection reads an explicit direction marker (direction/bound/leg
// containing an OUT/IN token). Empty when absent.
func probeDirection(raw map[string]interface{}) string {
	for _, key := range []string{"direction", "bound", "leg"} {
		value, ok := raw[key].(string)
		if !ok {
			continue
		}

		upper := strings.ToUpper(strings.TrimSpace(value))
		switch {
		case strings.Contains(upper, "OUT"):
			return DirectionOutbound
		case strings.Contains(upper, "IN"):
			return DirectionInbound
		}
	}

	return ""
}

// NormalizeSegments normalizes a whole raw segment list, preserving order.
func NormalizeSegments(raws []map[string]interface{}) []Segment {
	segments := make([]Segment, len(raws))
	for i, raw := range raws {
		segments[i] = NormalizeSegment(raw)
	}

	return segments
}

// normalizeEndpoint probes the nested object shape first, then the flat
// field shape of the same side.
func normalizeEndpoint(raw map[string]interface{},
	objectKeys, codeKeys, cityKeys, terminalKeys, dateKeys, timeKeys []string,
) Endpoint {
	for _, key := range objectKeys {
		if nested, ok := raw[key].(map[string]interface{}); ok {
			return Endpoint{
				Code:     probeString(nested, endpointCodeKeys),
				City:     probeString(nested, endpointCityKeys),
				Terminal: probeString(nested, endpointTerminalKeys),
				Date:     firstNonEmpty(probeString(nested, endpointDateKeys), probeString(raw, dateKeys)),
				Time:     firstNonEmpty(probeString(nested, endpointTimeKeys), probeString(raw, timeKeys)),
			}
		}
	}

	return Endpoint{
		Code:     probeString(raw, codeKeys),
		City:     probeString(raw, cityKeys),
		Terminal: probeString(raw, terminalKeys),
		Date:     probeString(raw, dateKeys),
		Time:     probeString(raw, timeKeys),
	}
}

var stopCountPattern = regexp.MustCompile(`(\d+)\s*stop`)

// InferStops derives a stop count from a free-text label when structured
// data is absent. "non-stop"/"direct" -> 0, "1 stop" -> 1, "2 Stops" -> 2.
// Unrecognized labels report 0 stops.
func InferStops(label string) int {
	normalized := strings.ToLower(strings.TrimSpace(label))
	if normalized == "" {
		return 0
	}

	if strings.Contains(normalized, "non-stop") || strings.Contains(normalized, "nonstop") ||
		strings.Contains(normalized, "direct") {
		return 0
	}

	if match := stopCountPattern.FindStringSubmatch(normalized); match != nil {
		return int(utils.SafeNumber(match[1]))
	}

	return 0
}

func probeString(raw map[string]interface{}, keys []string) string {
	for _, key := range keys {
		if value, ok := raw[key]; ok && value != nil {
			if s, ok := value.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}

	return ""
}

// probeNumber takes the first key that is present with a numeric-shaped
// value, even when that value coerces to 0. An explicit zero is data, not
// absence, and must not let a lower-priority key win.
func probeNumber(raw map[string]interface{}, keys []string) int64 {
	for _, key := range keys {
		value, ok := raw[key]
		if !ok || value == nil {
			continue
		}

		switch v := value.(type) {
		case int, int64, float64, float32, json.Number:
			return utils.SafeNumber(v)
		case string:
			if strings.TrimSpace(v) == "" {
				continue
			}

			return utils.SafeNumber(v)
		}
	}

	return 0
}

func probeBool(raw map[string]interface{}, keys []string) bool {
	for _, key := range keys {
		switch value := raw[key].(type) {
		case bool:
			return value
		case string:
			lowered := strings.ToLower(strings.TrimSpace(value))
			if lowered == "true" || lowered == "yes" || lowered == "refundable" {
				return true
			}
		}
	}

	return false
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}
