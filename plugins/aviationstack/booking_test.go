package aviationstack

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveBookingURL_AirlineDeepLink(t *testing.T) {
	f := Flight{
		Airline: &Airline{Name: "Emirates", IATA: "EK"},
		Flight:  &FlightIdent{IATA: "EK201"},
	}

	got := ResolveBookingURL(f, "DXB", "JFK")
	assert.Contains(t, got, "emirates.com")
	assert.Contains(t, got, "from=DXB&to=JFK")
}

func TestResolveBookingURL_AllKnownCarriers(t *testing.T) {
	domains := map[string]string{
		"EK": "emirates.com",
		"PK": "piac.com.pk",
		"QR": "qatarairways.com",
		"EY": "etihad.com",
		"FZ": "flydubai.com",
		"SV": "saudia.com",
		"MS": "egyptair.com",
		"TK": "turkishairlines.com",
	}

	for code, domain := range domains {
		f := Flight{
			Airline: &Airline{Name: "X", IATA: code},
			Flight:  &FlightIdent{IATA: code + "100"},
		}
		got := ResolveBookingURL(f, "KHI", "DXB")
		assert.Contains(t, got, domain, "carrier %s", code)
		assert.Contains(t, got, "KHI")
		assert.Contains(t, got, "DXB")
	}
}

func TestResolveBookingURL_LowercaseAirlineCode(t *testing.T) {
	f := Flight{
		Airline: &Airline{Name: "Emirates", IATA: "ek"},
		Flight:  &FlightIdent{IATA: "EK201"},
	}

	got := ResolveBookingURL(f, "DXB", "JFK")
	assert.Contains(t, got, "emirates.com")
}

func TestResolveBookingURL_UnknownAirlineFallsBackToAggregator(t *testing.T) {
	f := Flight{
		Airline: &Airline{Name: "Some Airline", IATA: "XX"},
		Flight:  &FlightIdent{IATA: "XX123"},
	}

	got := ResolveBookingURL(f, "KHI", "DXB")
	assert.Contains(t, got, "skyscanner.com/flights/khi/dxb")
}

func TestResolveBookingURL_MalformedRecordFallsBackToGeneric(t *testing.T) {
	tests := []struct {
		name   string
		flight Flight
	}{
		{"NoAirline", Flight{Flight: &FlightIdent{IATA: "EK201"}}},
		{"EmptyAirlineCode", Flight{Airline: &Airline{Name: "Emirates"}, Flight: &FlightIdent{IATA: "EK201"}}},
		{"NoFlightIdent", Flight{Airline: &Airline{Name: "Emirates", IATA: "EK"}}},
		{"EmptyRecord", Flight{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveBookingURL(tt.flight, "KHI", "DXB")
			assert.Contains(t, got, "google.com/flights")
			assert.Contains(t, got, "KHI")
			assert.Contains(t, got, "DXB")
		})
	}
}

func TestResolveBookingURL_AlwaysWellFormed(t *testing.T) {
	records := []Flight{
		{},
		{Airline: &Airline{IATA: "EK", Name: "Emirates"}, Flight: &FlightIdent{IATA: "EK201"}},
		{Airline: &Airline{IATA: "ZZ", Name: "Unknown"}, Flight: &FlightIdent{IATA: "ZZ1"}},
	}

	for _, f := range records {
		got := ResolveBookingURL(f, "KHI", "DXB")
		assert.NotEmpty(t, got)
		u, err := url.Parse(got)
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(u.Scheme, "http"))
	}
}
