package aviationstack

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Default display values for optional record fields
const (
	placeholderTerminal = "N/A"
	defaultStatus       = "cancelled"
)

// Status indicators for the three-way classification
const (
	IndicatorOnTime    = "[ON TIME]"
	IndicatorDelayed   = "[DELAYED]"
	IndicatorCancelled = "[CANCELLED]"
)

// FlightView is the per-record projection used purely for rendering.
// It is created fresh per render call and discarded with the response.
type FlightView struct {
	FlightNumber    string
	AirlineName     string
	DepTime         string
	DepTerminal     string
	DepDelayMinutes int // shown only when > 0
	ArrTime         string
	ArrTerminal     string
	StatusLabel     string
	StatusIndicator string
	Codeshare       string // empty when the flight is not codeshared
}

// Extract pulls the display fields out of a raw flight record.
// Flight number and airline name are required; missing either fails the
// record (the caller renders a "Details Unavailable" stub and keeps
// going). Every optional field degrades independently to a documented
// placeholder instead of failing.
func Extract(f Flight) (*FlightView, error) {
	if f.Flight == nil || f.Flight.IATA == "" {
		return nil, fmt.Errorf("record has no flight number")
	}
	if f.Airline == nil || f.Airline.Name == "" {
		return nil, fmt.Errorf("record has no airline name")
	}

	status := f.FlightStatus
	if status == "" {
		status = defaultStatus
	}

	view := &FlightView{
		FlightNumber:    f.Flight.IATA,
		AirlineName:     f.Airline.Name,
		DepTime:         placeholderTerminal,
		DepTerminal:     placeholderTerminal,
		ArrTime:         placeholderTerminal,
		ArrTerminal:     placeholderTerminal,
		StatusLabel:     titleCase(status),
		StatusIndicator: StatusIndicator(status),
	}

	if f.Departure != nil {
		if f.Departure.Scheduled != "" {
			view.DepTime = FormatFlightTime(f.Departure.Scheduled)
		}
		if f.Departure.Terminal != nil && *f.Departure.Terminal != "" {
			view.DepTerminal = *f.Departure.Terminal
		}
		if f.Departure.Delay != nil && *f.Departure.Delay > 0 {
			view.DepDelayMinutes = *f.Departure.Delay
		}
	}

	if f.Arrival != nil {
		if f.Arrival.Scheduled != "" {
			view.ArrTime = FormatFlightTime(f.Arrival.Scheduled)
		}
		if f.Arrival.Terminal != nil && *f.Arrival.Terminal != "" {
			view.ArrTerminal = *f.Arrival.Terminal
		}
	}

	if f.Flight.Codeshared != nil && f.Flight.Codeshared.AirlineName != "" {
		view.Codeshare = strings.TrimSpace(fmt.Sprintf("%s %s",
			titleCase(f.Flight.Codeshared.AirlineName), strings.ToUpper(f.Flight.Codeshared.FlightIATA)))
	}

	return view, nil
}

// StatusIndicator classifies a raw status string (case-insensitive):
// scheduled/active fly on time, delayed is delayed, and anything else,
// including unknown statuses, is treated as cancelled.
func StatusIndicator(status string) string {
	switch strings.ToLower(status) {
	case "scheduled", "active":
		return IndicatorOnTime
	case "delayed":
		return IndicatorDelayed
	default:
		return IndicatorCancelled
	}
}

// FormatFlightTime renders an ISO-8601 timestamp (a literal Z suffix is
// permitted) as a 12-hour clock time. Unparseable input is passed
// through verbatim rather than failing the record.
func FormatFlightTime(timeStr string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, timeStr); err == nil {
			return t.Format("03:04 PM")
		}
	}
	return timeStr
}

// FormatDate renders a date as "Monday, January 02, 2006"
func FormatDate(t time.Time) string {
	return t.Format("Monday, January 02, 2006")
}

// titleCase title-cases a string per English casing rules.
// A Caser is not safe for concurrent use, so one is created per call.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
