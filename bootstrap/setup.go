package bootstrap

import (
	"context"
	"fmt"
	"log"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"
	"github.com/firebase/genkit/go/plugins/ollama"
	"github.com/va6996/flightdesk/agents"
	"github.com/va6996/flightdesk/bootstrap/geminioai"
	"github.com/va6996/flightdesk/config"
	"github.com/va6996/flightdesk/plugins/airports"
	"github.com/va6996/flightdesk/plugins/aviationstack"
	"github.com/va6996/flightdesk/plugins/core"
	"github.com/va6996/flightdesk/tools"
)

// App holds the initialized components of the application
type App struct {
	FlightAgent *agents.FlightAgent
	Genkit      *genkit.Genkit
	Registry    *tools.Registry
	Model       ai.Model
}

// Setup initializes the application components based on the configuration
func Setup(ctx context.Context, cfg *config.Config) (*App, error) {
	// 1. Setup Genkit with AI Plugin
	var gk *genkit.Genkit
	var model ai.Model

	switch cfg.AI.Plugin {
	case "ollama":
		log.Printf("Using Ollama Plugin (Model: %s)...", cfg.AI.Ollama.Model)
		ollamaPlugin := &ollama.Ollama{
			ServerAddress: cfg.AI.Ollama.BaseURL,
		}
		gk = genkit.Init(ctx, genkit.WithPlugins(ollamaPlugin))

		// Define the model with capabilities - explicitly enable tool support
		model = ollamaPlugin.DefineModel(gk, ollama.ModelDefinition{
			Name: cfg.AI.Ollama.Model,
			Type: "chat",
		}, &ai.ModelOptions{
			Supports: &ai.ModelSupports{
				Multiturn:  true,
				SystemRole: true,
				Tools:      true,
				Media:      false,
			},
		})

	case "gemini-openai":
		// Gemini via its OpenAI-compatible endpoint
		log.Printf("Using Gemini OpenAI-compat Plugin (Model: %s)...", cfg.AI.Gemini.Model)
		if cfg.AI.Gemini.APIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY must be set")
		}

		oaiPlugin := &geminioai.GeminiOAI{APIKey: cfg.AI.Gemini.APIKey}
		gk = genkit.Init(ctx, genkit.WithPlugins(oaiPlugin))
		model = oaiPlugin.Model(gk, cfg.AI.Gemini.Model)

	default:
		log.Println("Using Gemini Plugin...")
		if cfg.AI.Gemini.APIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY must be set (or set AI_PLUGIN=ollama)")
		}

		gk = genkit.Init(ctx, genkit.WithPlugins(&googlegenai.GoogleAI{
			APIKey: cfg.AI.Gemini.APIKey,
		}))
		model = googlegenai.GoogleAIModel(gk, cfg.AI.Gemini.Model)
	}

	// 2. Init Tools Registry
	registry := tools.NewRegistry()

	// AviationStack
	if cfg.AviationStack.APIKey == "" {
		return nil, fmt.Errorf("AVIATIONSTACK_KEY must be set")
	}

	// Initializing the client registers its tools automatically
	aviationstack.NewClient(cfg.AviationStack.APIKey, cfg.AviationStack.BaseURL,
		gk, registry, cfg.AviationStack.TimeoutSeconds, cfg.AviationStack.MaxResults)

	// City to airport-code resolver
	airports.NewCityAirportTool(airports.NewResolver(), gk, registry)

	// Core tools
	core.NewDateTool(gk, registry)

	// 3. Init Agent
	log.Println("Initializing Flight Agent...")
	flightAgent := agents.NewFlightAgent(gk, registry, model)

	return &App{
		FlightAgent: flightAgent,
		Genkit:      gk,
		Registry:    registry,
		Model:       model,
	}, nil
}
