package aviationstack

import (
	"fmt"
	"strings"
)

// airlineBookingTemplates maps airline IATA codes to carrier-specific
// flight-search URLs. Each template takes departure and arrival codes.
var airlineBookingTemplates = map[string]string{
	"EK": "https://www.emirates.com/english/book/flight-search/?adults=1&children=0&infants=0&from=%s&to=%s",
	"PK": "https://www.piac.com.pk/book-flight/?from=%s&to=%s&adults=1",
	"QR": "https://www.qatarairways.com/en/book-flights.html?origin=%s&destination=%s&pax=1:0:0",
	"EY": "https://www.etihad.com/en/book/flights?origin=%s&destination=%s&passengers=1",
	"FZ": "https://www.flydubai.com/en/book/search?from=%s&to=%s&adult=1",
	"SV": "https://www.saudia.com/en/book/flights/multi-city?from=%s&to=%s&adults=1",
	"MS": "https://www.egyptair.com/en/fly/book-a-flight/flight-search?from=%s&to=%s&adult=1",
	"TK": "https://www.turkishairlines.com/en-int/booking/flight/availability?origin=%s&destination=%s&adult=1",
}

const (
	aggregatorTemplate = "https://www.skyscanner.com/flights/%s/%s?adults=1&children=0&adultsv2=1&childrenv2=&infants=0&cabinclass=economy&rtn=0&preferdirects=false&outboundaltsenabled=false&inboundaltsenabled=false"
	genericTemplate    = "https://www.google.com/flights?q=flights+from+%s+to+%s"
)

// ResolveBookingURL derives a booking URL for a flight record. It
// prefers the carrier's own deep link, falls back to an aggregator
// search, and for a record whose airline or flight number cannot be
// read at all returns a generic web search URL. It never fails.
func ResolveBookingURL(f Flight, depCode, arrCode string) string {
	if f.Airline == nil || f.Airline.IATA == "" || f.Flight == nil || f.Flight.IATA == "" {
		return fmt.Sprintf(genericTemplate, depCode, arrCode)
	}

	airlineCode := strings.ToUpper(f.Airline.IATA)
	if tmpl, ok := airlineBookingTemplates[airlineCode]; ok {
		return fmt.Sprintf(tmpl, depCode, arrCode)
	}

	return fmt.Sprintf(aggregatorTemplate, strings.ToLower(depCode), strings.ToLower(arrCode))
}
