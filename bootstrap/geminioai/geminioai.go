// Package geminioai exposes Gemini models through Google's
// OpenAI-compatible endpoint as a Firebase Genkit plugin.
package geminioai

import (
	"context"
	"os"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/core/api"
	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/compat_oai"
	"github.com/openai/openai-go/option"
)

const provider = "gemini-openai"

// DefaultBaseURL is Gemini's OpenAI-compatible API root
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

// GeminiOAI is a plugin that serves Gemini models over the
// OpenAI-compatible surface.
type GeminiOAI struct {
	// APIKey is the Gemini API key. If empty, the GEMINI_API_KEY
	// environment variable is consulted.
	APIKey string
	// BaseURL overrides the endpoint. Defaults to DefaultBaseURL.
	BaseURL string

	openAICompatible *compat_oai.OpenAICompatible
}

// Name implements genkit.Plugin.
func (g *GeminiOAI) Name() string {
	return provider
}

// Init implements genkit.Plugin.
func (g *GeminiOAI) Init(ctx context.Context) []api.Action {
	apiKey := g.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		panic("gemini-openai plugin initialization failed: apiKey is required (set GEMINI_API_KEY or pass APIKey)")
	}

	baseURL := g.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if g.openAICompatible == nil {
		g.openAICompatible = &compat_oai.OpenAICompatible{}
	}

	g.openAICompatible.Opts = []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	}
	g.openAICompatible.Provider = provider

	actions := g.openAICompatible.Init(ctx)

	supportedModels := map[string]ai.ModelOptions{
		"gemini-2.0-flash": {
			Label:    "Gemini 2.0 Flash",
			Supports: &compat_oai.Multimodal,
			Versions: []string{"gemini-2.0-flash"},
		},
		"gemini-2.5-flash": {
			Label:    "Gemini 2.5 Flash",
			Supports: &compat_oai.Multimodal,
			Versions: []string{"gemini-2.5-flash"},
		},
		"gemini-1.5-flash": {
			Label:    "Gemini 1.5 Flash",
			Supports: &compat_oai.Multimodal,
			Versions: []string{"gemini-1.5-flash"},
		},
	}

	for model, opts := range supportedModels {
		actions = append(actions, g.DefineModel(model, opts).(api.Action))
	}

	return actions
}

// Model returns a model by name.
func (g *GeminiOAI) Model(gk *genkit.Genkit, name string) ai.Model {
	return g.openAICompatible.Model(gk, api.NewName(provider, name))
}

// DefineModel defines a model with the given ID and options.
func (g *GeminiOAI) DefineModel(id string, opts ai.ModelOptions) ai.Model {
	return g.openAICompatible.DefineModel(provider, id, opts)
}
