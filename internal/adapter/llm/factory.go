package llm

import (
	"fmt"

	"edumotion/internal/config"
	"edumotion/internal/domain"
)

// NewTextGenerator constructs the configured backend. Both providers are
// functionally identical from the caller's perspective; selection is purely
// a deployment decision.
func NewTextGenerator(cfg config.LLMConfig) (domain.TextGenerator, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIClient(cfg)
	case "anthropic":
		return NewAnthropicClient(cfg)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
}
