package domain

import "context"

// DefaultSystemPrompt is the teaching persona used when a caller does not
// supply its own system prompt.
const DefaultSystemPrompt = `You are a patient teaching assistant for students. ` +
	`Explain concepts clearly in flowing paragraphs, without asking the student ` +
	`questions back. Adapt your explanation to the student's stated education ` +
	`level and preferred learning style when they are given. Avoid bullet lists ` +
	`unless the material genuinely demands them.`

// TextGenerator is the single abstraction over the interchangeable LLM
// backends. Implementations send one stateless completion request; there is
// no conversation state, no retry and no caching at this layer.
type TextGenerator interface {
	// Complete sends userPrompt with the given system prompt and returns the
	// model's raw text. An empty systemPrompt selects DefaultSystemPrompt.
	Complete(ctx context.Context, userPrompt, systemPrompt string) (string, error)
}
