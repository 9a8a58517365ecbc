package config_test

import (
	"testing"
	"time"

	"edumotion/internal/config"

	"github.com/stretchr/testify/assert"
)

func validConfig() *config.Config {
	return &config.Config{
		LLM: config.LLMConfig{
			Provider: "openai",
			APIKey:   "fake-key",
			Timeout:  30 * time.Second,
		},
		Video: config.VideoConfig{
			ScratchDir: "./scripts",
			ServedDir:  "./videos",
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("anthropic is a valid provider", func(t *testing.T) {
		cfg := validConfig()
		cfg.LLM.Provider = "anthropic"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("unknown provider fails", func(t *testing.T) {
		cfg := validConfig()
		cfg.LLM.Provider = "ollama"
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing API key fails at boot", func(t *testing.T) {
		cfg := validConfig()
		cfg.LLM.APIKey = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing video directories fail", func(t *testing.T) {
		cfg := validConfig()
		cfg.Video.ServedDir = ""
		assert.Error(t, cfg.Validate())
	})
}
