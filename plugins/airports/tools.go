package airports

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/va6996/flightdesk/log"
	toolspkg "github.com/va6996/flightdesk/tools"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CityAirportInput is the input schema for the city lookup tool
type CityAirportInput struct {
	CityName string `json:"city_name" description:"City name to convert to an airport code"`
}

// CityAirportTool converts a city name to its airport code(s). When a
// city has several airports it lists all of them for the user to choose
// from; the tool itself never picks one.
type CityAirportTool struct {
	resolver *Resolver
}

// NewCityAirportTool creates the tool and registers it
func NewCityAirportTool(resolver *Resolver, gk *genkit.Genkit, registry *toolspkg.Registry) *CityAirportTool {
	t := &CityAirportTool{resolver: resolver}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*CityAirportInput, string](
		gk,
		"get_city_airport_code",
		"Converts a city name to its 3-letter IATA airport code. If the city has multiple airports, returns all options for the user to choose from. Arguments: city_name (string, required).",
		func(ctx *ai.ToolContext, input *CityAirportInput) (string, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		b, _ := json.Marshal(args)
		var input CityAirportInput
		if err := json.Unmarshal(b, &input); err != nil {
			return nil, fmt.Errorf("failed to parse arguments: %w", err)
		}
		return t.Execute(ctx, &input)
	})

	log.Info(context.Background(), "Registered tool: get_city_airport_code")

	return t
}

func (t *CityAirportTool) Name() string {
	return "get_city_airport_code"
}

// Execute resolves the city and renders the matching message: the code,
// a disambiguation prompt, or a not-found hint. Always returns text.
func (t *CityAirportTool) Execute(ctx context.Context, input *CityAirportInput) (string, error) {
	log.Debugf(ctx, "CityAirportTool executing for city: %q", input.CityName)

	if t.resolver == nil {
		return "", fmt.Errorf("airport resolver not initialized")
	}

	displayName := cases.Title(language.English).String(strings.TrimSpace(input.CityName))
	res := t.resolver.Resolve(input.CityName)

	switch res.Kind {
	case ResolutionAmbiguous:
		options := make([]string, 0, len(res.Candidates))
		for _, airport := range res.Candidates {
			options = append(options, fmt.Sprintf("• %s - %s", airport.Code, airport.Name))
		}
		return fmt.Sprintf("I found multiple airports in %s:\n%s\n\nWhich airport would you like to use?",
			displayName, strings.Join(options, "\n")), nil

	case ResolutionResolved:
		return fmt.Sprintf("The airport code for %s is %s", displayName, res.Code), nil

	default:
		return fmt.Sprintf("Sorry, I couldn't find an airport code for '%s'. You can try checking the spelling, using a different major city, or providing the 3-letter IATA airport code directly.",
			displayName), nil
	}
}
