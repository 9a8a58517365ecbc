package service_test

import (
	"context"
)

// MockTextGenerator is a func-field fake for domain.TextGenerator.
type MockTextGenerator struct {
	CompleteFunc func(ctx context.Context, userPrompt, systemPrompt string) (string, error)

	// Captured arguments from the last call, for prompt-composition asserts.
	LastUserPrompt   string
	LastSystemPrompt string
}

func (m *MockTextGenerator) Complete(ctx context.Context, userPrompt, systemPrompt string) (string, error) {
	m.LastUserPrompt = userPrompt
	m.LastSystemPrompt = systemPrompt
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, userPrompt, systemPrompt)
	}
	panic("MockTextGenerator.CompleteFunc not implemented")
}
