package aviationstack

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/va6996/flightdesk/log"
)

// RenderTodayFlights assembles the result text for flights departing on
// the search date: a dated header followed by one card per flight in
// input order. A record that fails extraction renders as a minimal stub
// at its position; one bad record never aborts the batch.
func RenderTodayFlights(ctx context.Context, flights []Flight, today time.Time, depCode, arrCode string) string {
	if len(flights) == 0 {
		return "No flights found for today."
	}

	depCity, arrCity := headerCities(flights[0], depCode, arrCode)

	header := []string{
		"# FLIGHT SEARCH RESULTS",
		fmt.Sprintf("## TODAY'S FLIGHTS - %s", FormatDate(today)),
		fmt.Sprintf("### %s (%s) to %s (%s)", depCity, depCode, arrCity, arrCode),
		"---",
	}

	cards := make([]string, 0, len(flights))
	for i, f := range flights {
		cards = append(cards, formatFlightCard(ctx, f, depCode, arrCode, i+1))
	}

	return strings.Join(header, "\n") + "\n" + strings.Join(cards, "\n---\n")
}

// RenderUpcomingFlights assembles the result text when nothing flies
// today: a header stating that, then one sub-section per date in
// ascending order with compact cards, and a closing tip line.
func RenderUpcomingFlights(ctx context.Context, groups []DateGroup, today time.Time, depCode, arrCode string) string {
	if len(groups) == 0 {
		return RenderNoFlights(today, depCode, arrCode)
	}

	depCity, arrCity := headerCities(groups[0].Flights[0], depCode, arrCode)

	parts := []string{
		"# FLIGHT SEARCH RESULTS",
		fmt.Sprintf("## NO FLIGHTS TODAY - %s", FormatDate(today)),
		fmt.Sprintf("### %s (%s) to %s (%s)", depCity, depCode, arrCity, arrCode),
		"",
		"*No flights available for today. Here are the next available flights:*",
		"---",
		"## UPCOMING FLIGHTS",
	}

	for _, group := range groups {
		if d, err := time.Parse("2006-01-02", group.Date); err == nil {
			parts = append(parts, fmt.Sprintf("\n### %s\n", FormatDate(d)))
		} else {
			parts = append(parts, fmt.Sprintf("\n### %s\n", group.Date))
		}

		for i, f := range group.Flights {
			parts = append(parts, formatUpcomingFlightCard(ctx, f, depCode, arrCode, i+1), "")
		}
	}

	parts = append(parts, "---", "\n**Tip:** Click on any 'Book' link to proceed with your booking!")

	return strings.Join(parts, "\n")
}

// RenderNoFlights produces the fixed informational block for an empty
// result set, naming the searched code pair and the search window.
func RenderNoFlights(today time.Time, depCode, arrCode string) string {
	lines := []string{
		"# FLIGHT SEARCH RESULTS",
		"",
		"## NO FLIGHTS FOUND",
		fmt.Sprintf("### %s to %s", depCode, arrCode),
		"",
		fmt.Sprintf("**Search Period:** %s - Next 7 days", FormatDate(today)),
		"",
		"---",
		"",
		"### What you can try:",
		"",
		"1.  **Double-check airport codes** - Make sure the airports are correct",
		"2.  **Try different dates** - This route might not operate daily",
		"3.  **Check nearby airports** - Some cities have multiple airports",
		"4.  **Contact airline directly** - For the most up-to-date schedules",
		"",
		"---",
		"",
		"**Need help?** Just ask me to search for flights from different cities or airports!",
	}
	return strings.Join(lines, "\n")
}

// formatFlightCard renders a full card for one of today's flights
func formatFlightCard(ctx context.Context, f Flight, depCode, arrCode string, index int) string {
	view, err := Extract(f)
	if err != nil {
		log.Warnf(ctx, "formatFlightCard: skipping record %d: %v", index, err)
		return fmt.Sprintf("### %d. Flight Details Unavailable", index)
	}

	bookingURL := ResolveBookingURL(f, depCode, arrCode)

	lines := []string{
		fmt.Sprintf("### %d. Flight %s - %s", index, view.FlightNumber, view.AirlineName),
		"",
		"**DEPARTURE**",
		fmt.Sprintf("- Terminal: %s", view.DepTerminal),
		fmt.Sprintf("- Time: %s", view.DepTime),
	}

	if view.DepDelayMinutes > 0 {
		lines = append(lines, fmt.Sprintf("- Delay: %d minutes", view.DepDelayMinutes))
	}

	lines = append(lines,
		"",
		"**ARRIVAL**",
		fmt.Sprintf("- Terminal: %s", view.ArrTerminal),
		fmt.Sprintf("- Time: %s", view.ArrTime),
		"",
		fmt.Sprintf("**STATUS:** %s %s", view.StatusIndicator, view.StatusLabel),
		"",
		fmt.Sprintf("**BOOKING:** %s", bookingLink(view, bookingURL)),
	)

	if view.Codeshare != "" {
		lines = append(lines, fmt.Sprintf("**CODESHARE:** %s", view.Codeshare))
	}

	return strings.Join(lines, "\n")
}

// formatUpcomingFlightCard renders the compact card used in the
// grouped-by-date view
func formatUpcomingFlightCard(ctx context.Context, f Flight, depCode, arrCode string, index int) string {
	view, err := Extract(f)
	if err != nil {
		log.Warnf(ctx, "formatUpcomingFlightCard: skipping record %d: %v", index, err)
		return fmt.Sprintf("**%d. Flight Details Unavailable**", index)
	}

	bookingURL := ResolveBookingURL(f, depCode, arrCode)

	lines := []string{
		fmt.Sprintf("**%d. Flight %s** - %s", index, view.FlightNumber, view.AirlineName),
		fmt.Sprintf("- **Departure:** %s (Terminal %s)", view.DepTime, view.DepTerminal),
		fmt.Sprintf("- **Arrival:** %s (Terminal %s)", view.ArrTime, view.ArrTerminal),
		fmt.Sprintf("- **Status:** %s %s", view.StatusIndicator, view.StatusLabel),
		fmt.Sprintf("- **Booking:** %s", bookingLink(view, bookingURL)),
	}

	if view.Codeshare != "" {
		lines = append(lines, fmt.Sprintf("- **Codeshare:** %s", view.Codeshare))
	}

	return strings.Join(lines, "\n")
}

// bookingLink renders the booking call-to-action as a markdown link
func bookingLink(view *FlightView, bookingURL string) string {
	return fmt.Sprintf("[Book %s with %s](%s)", view.FlightNumber, view.AirlineName, bookingURL)
}

// headerCities resolves display names for the result header, falling
// back to the bare codes when the record carries no airport names
func headerCities(f Flight, depCode, arrCode string) (string, string) {
	depCity, arrCity := depCode, arrCode
	if f.Departure != nil && f.Departure.Airport != "" {
		depCity = f.Departure.Airport
	}
	if f.Arrival != nil && f.Arrival.Airport != "" {
		arrCity = f.Arrival.Airport
	}
	return depCity, arrCity
}
