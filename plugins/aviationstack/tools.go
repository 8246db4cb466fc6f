package aviationstack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/va6996/flightdesk/log"
	toolspkg "github.com/va6996/flightdesk/tools"
)

// SearchFlightsInput is the input schema for the flight search tool
type SearchFlightsInput struct {
	Departure string `json:"departure" description:"Departure airport IATA code (e.g. 'KHI')"`
	Arrival   string `json:"arrival" description:"Arrival airport IATA code (e.g. 'DXB')"`
}

// SearchFlightsTool searches for flights between two airports and
// returns a fully rendered text block. It prioritizes today's flights
// and falls back to upcoming ones. Every failure path still produces
// user-facing text; the tool never propagates a provider error upward.
type SearchFlightsTool struct {
	client *Client

	// Now is injectable so rendering stays deterministic under test
	Now func() time.Time
}

// NewSearchFlightsTool creates the tool and registers it
func NewSearchFlightsTool(client *Client, gk *genkit.Genkit, registry *toolspkg.Registry) *SearchFlightsTool {
	t := &SearchFlightsTool{
		client: client,
		Now:    time.Now,
	}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*SearchFlightsInput, string](
		gk,
		"search_flights",
		"Searches for flights between two airports using their 3-letter IATA codes. Prioritizes today's flights and shows upcoming flights when none are available today. Arguments: departure (string, required), arrival (string, required).",
		func(ctx *ai.ToolContext, input *SearchFlightsInput) (string, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		b, _ := json.Marshal(args)
		var input SearchFlightsInput
		if err := json.Unmarshal(b, &input); err != nil {
			return nil, fmt.Errorf("failed to parse arguments: %w", err)
		}
		return t.Execute(ctx, &input)
	})

	log.Info(context.Background(), "Registered tool: search_flights")

	return t
}

func (t *SearchFlightsTool) Name() string {
	return "search_flights"
}

// Execute runs the search pipeline: validate codes, query the provider,
// partition the records and render the matching view.
func (t *SearchFlightsTool) Execute(ctx context.Context, input *SearchFlightsInput) (string, error) {
	inputJSON, _ := json.Marshal(input)
	log.Debugf(ctx, "SearchFlightsTool executing with input: %s", string(inputJSON))

	if t.client == nil {
		return "", fmt.Errorf("aviationstack client not initialized")
	}

	departure, okDep := normalizeCode(input.Departure)
	arrival, okArr := normalizeCode(input.Arrival)
	if !okDep || !okArr {
		return fmt.Sprintf("Error: Invalid airport code provided. Please double-check the departure '%s' and arrival '%s' codes and try again.",
			input.Departure, input.Arrival), nil
	}

	flights, err := t.client.SearchFlights(ctx, departure, arrival)
	if err != nil {
		log.Errorf(ctx, "SearchFlightsTool: search failed: %v", err)
		return searchErrorMessage(err, departure, arrival), nil
	}

	today := t.Now()
	result := Partition(flights, today)

	switch result.Outcome {
	case OutcomeToday:
		log.Debugf(ctx, "SearchFlightsTool: found %d flights for today", len(result.Today))
		return RenderTodayFlights(ctx, result.Today, today, departure, arrival), nil
	case OutcomeUpcoming:
		log.Debugf(ctx, "SearchFlightsTool: no flights today, %d upcoming date groups", len(result.Upcoming))
		return RenderUpcomingFlights(ctx, result.Upcoming, today, departure, arrival), nil
	default:
		log.Debugf(ctx, "SearchFlightsTool: no flights found")
		return RenderNoFlights(today, departure, arrival), nil
	}
}

// normalizeCode upper-cases a candidate IATA code and checks it is a
// non-empty 3-letter token. Codes are not validated against a real
// airport registry; the provider answers 422 for unknown ones.
func normalizeCode(code string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return code, false
	}
	for _, r := range code {
		if !unicode.IsLetter(r) {
			return code, false
		}
	}
	return code, true
}

// searchErrorMessage maps a typed search failure to one fixed
// user-facing message per kind
func searchErrorMessage(err error, departure, arrival string) string {
	var searchErr *SearchError
	if !errors.As(err, &searchErr) {
		return fmt.Sprintf("An unexpected error occurred: %v. Please try again.", err)
	}

	switch searchErr.Kind {
	case ErrorKindTimeout:
		return "Request Timed Out: The flight search is taking too long. Please try again in a moment."
	case ErrorKindNetwork:
		return "Network Error: Could not connect to the flight data service. Please check your internet connection."
	case ErrorKindHTTPStatus:
		switch searchErr.StatusCode {
		case 422:
			return fmt.Sprintf("Error: Invalid airport code provided. Please double-check the departure '%s' and arrival '%s' codes and try again.", departure, arrival)
		case 401:
			return "API Key Error: Authentication failed. Please check the AVIATIONSTACK_KEY."
		default:
			return fmt.Sprintf("Error Fetching Flight Data: The server returned status %d. Please try again later.", searchErr.StatusCode)
		}
	case ErrorKindAPI:
		return fmt.Sprintf("An error occurred while fetching flight data: %s (Code: %s)", searchErr.Info, searchErr.Code)
	}

	return fmt.Sprintf("An unexpected error occurred: %v. Please try again.", err)
}
