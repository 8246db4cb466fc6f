package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		for _, key := range []string{"AI_PLUGIN", "GEMINI_API_KEY", "GEMINI_MODEL", "AVIATIONSTACK_KEY", "AVIATIONSTACK_BASE_URL", "AVIATIONSTACK_TIMEOUT", "AVIATIONSTACK_MAX_RESULTS"} {
			orig, had := os.LookupEnv(key)
			os.Unsetenv(key)
			defer func(key, orig string, had bool) {
				if had {
					os.Setenv(key, orig)
				}
			}(key, orig, had)
		}

		cfg, err := Load()
		assert.NoError(t, err)
		assert.NotNil(t, cfg)

		assert.Equal(t, "gemini", cfg.AI.Plugin)
		assert.Equal(t, "gemini-2.0-flash", cfg.AI.Gemini.Model)
		assert.Equal(t, "http://api.aviationstack.com/v1", cfg.AviationStack.BaseURL)
		assert.Equal(t, 15, cfg.AviationStack.TimeoutSeconds)
		assert.Equal(t, 10, cfg.AviationStack.MaxResults)
	})

	t.Run("EnvironmentVariables", func(t *testing.T) {
		origPlugin, hadPlugin := os.LookupEnv("AI_PLUGIN")
		origKey, hadKey := os.LookupEnv("AVIATIONSTACK_KEY")

		os.Setenv("AI_PLUGIN", "ollama")
		os.Setenv("AVIATIONSTACK_KEY", "test-key")

		defer func() {
			if hadPlugin {
				os.Setenv("AI_PLUGIN", origPlugin)
			} else {
				os.Unsetenv("AI_PLUGIN")
			}
			if hadKey {
				os.Setenv("AVIATIONSTACK_KEY", origKey)
			} else {
				os.Unsetenv("AVIATIONSTACK_KEY")
			}
		}()

		cfg, err := Load()
		assert.NoError(t, err)
		assert.NotNil(t, cfg)
		assert.Equal(t, "ollama", cfg.AI.Plugin)
		assert.Equal(t, "test-key", cfg.AviationStack.APIKey)
	})
}
