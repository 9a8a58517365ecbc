package llm

import (
	"context"
	"errors"
	"fmt"
	"net"

	"edumotion/internal/config"
	"edumotion/internal/domain"
	"edumotion/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// Client adapts a langchaingo model to domain.TextGenerator. The concrete
// model comes from one of the backend constructors in this package.
type Client struct {
	model    llms.Model
	provider string
	cfg      config.LLMConfig
}

var _ domain.TextGenerator = (*Client)(nil)

// Complete sends a single stateless chat completion. The call is bounded by
// the configured timeout; a caller-cancelled context aborts the outbound
// request. No retries.
func (c *Client) Complete(ctx context.Context, userPrompt, systemPrompt string) (string, error) {
	l := logger.Get()

	if userPrompt == "" {
		return "", domain.NewInvalidInputError("user prompt cannot be empty")
	}
	if systemPrompt == "" {
		systemPrompt = domain.DefaultSystemPrompt
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, userPrompt),
	}

	resp, err := c.model.GenerateContent(ctx, messages,
		llms.WithTemperature(c.cfg.Temperature),
		llms.WithMaxTokens(c.cfg.MaxTokens),
	)
	if err != nil {
		return "", c.mapCallError(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		return "", domain.NewUpstreamError(
			fmt.Sprintf("%s returned an empty completion", c.provider), nil)
	}
	content := resp.Choices[0].Content

	l.Info("LLM completion finished",
		zap.String("provider", c.provider),
		zap.Int("prompt_len", len(userPrompt)),
		zap.Int("system_prompt_len", len(systemPrompt)),
		zap.Int("response_len", len(content)),
	)

	return content, nil
}

// mapCallError classifies the failure so the surfaced message distinguishes
// timeout from connection failure from API-level error.
func (c *Client) mapCallError(err error) error {
	l := logger.Get()

	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		l.Error("LLM request timed out", zap.String("provider", c.provider), zap.Error(err))
		return domain.NewUpstreamError(
			fmt.Sprintf("%s request timed out after %s", c.provider, c.cfg.Timeout), err)
	case errors.Is(err, context.Canceled):
		return domain.NewUpstreamError(
			fmt.Sprintf("%s request was cancelled", c.provider), err)
	case errors.As(err, &netErr):
		l.Error("LLM connection failed", zap.String("provider", c.provider), zap.Error(err))
		return domain.NewUpstreamError(
			fmt.Sprintf("failed to connect to %s", c.provider), err)
	default:
		l.Error("LLM API call failed", zap.String("provider", c.provider), zap.Error(err))
		return domain.NewUpstreamError(
			fmt.Sprintf("%s API error", c.provider), err)
	}
}
