package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config aggregates all application configuration
type Config struct {
	AI            AIConfig            `yaml:"ai"`
	AviationStack AviationStackConfig `yaml:"aviationstack"`
}

type AIConfig struct {
	Plugin string       `yaml:"plugin" env:"AI_PLUGIN" env-default:"gemini"`
	Gemini GeminiConfig `yaml:"gemini"`
	Ollama OllamaConfig `yaml:"ollama"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key" env:"GEMINI_API_KEY"`
	Model  string `yaml:"model" env:"GEMINI_MODEL" env-default:"gemini-2.0-flash"`
}

type OllamaConfig struct {
	Model   string `yaml:"model" env:"OLLAMA_MODEL" env-default:"qwen3:4b"`
	BaseURL string `yaml:"base_url" env:"OLLAMA_BASE_URL" env-default:"http://localhost:11434"`
}

// AviationStackConfig configures the flight-data provider.
// The API is paid and metered, so TimeoutSeconds and MaxResults are
// deliberately conservative.
type AviationStackConfig struct {
	APIKey         string `yaml:"api_key" env:"AVIATIONSTACK_KEY"`
	BaseURL        string `yaml:"base_url" env:"AVIATIONSTACK_BASE_URL" env-default:"http://api.aviationstack.com/v1"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env:"AVIATIONSTACK_TIMEOUT" env-default:"15"`
	MaxResults     int    `yaml:"max_results" env:"AVIATIONSTACK_MAX_RESULTS" env-default:"10"`
}

// Load reads configuration from config.yaml and environment variables
// Priority: Env Vars > Config File > Defaults
func Load() (*Config, error) {
	var cfg Config

	// Read config.yaml if present, then override with envs.
	err := cleanenv.ReadConfig("config.yaml", &cfg)
	if err != nil {
		// If file doesn't exist, just read env vars
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read env config: %w", err)
		}
	}

	return &cfg, nil
}
