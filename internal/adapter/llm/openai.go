package llm

import (
	"fmt"

	"edumotion/internal/config"

	openaiLLM "github.com/tmc/langchaingo/llms/openai"
)

const defaultOpenAIModel = "gpt-4o-mini"

// NewOpenAIClient builds a Client backed by the OpenAI chat-completions API.
func NewOpenAIClient(cfg config.LLMConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key cannot be empty")
	}
	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}

	llm, err := openaiLLM.New(
		openaiLLM.WithToken(cfg.APIKey),
		openaiLLM.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return &Client{
		model:    llm,
		provider: "openai",
		cfg:      cfg,
	}, nil
}
