package llm

import (
	"fmt"

	"edumotion/internal/config"

	anthropicLLM "github.com/tmc/langchaingo/llms/anthropic"
)

const defaultAnthropicModel = "claude-3-5-haiku-latest"

// NewAnthropicClient builds a Client backed by the Anthropic messages API.
// Callers see the same TextGenerator surface as the OpenAI backend.
func NewAnthropicClient(cfg config.LLMConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic API key cannot be empty")
	}
	model := cfg.Model
	if model == "" {
		model = defaultAnthropicModel
	}

	llm, err := anthropicLLM.New(
		anthropicLLM.WithToken(cfg.APIKey),
		anthropicLLM.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Anthropic client: %w", err)
	}

	return &Client{
		model:    llm,
		provider: "anthropic",
		cfg:      cfg,
	}, nil
}
