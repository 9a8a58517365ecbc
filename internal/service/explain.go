package service

import (
	"context"
	"fmt"

	"edumotion/internal/domain"
	"edumotion/internal/logger"

	"go.uber.org/zap"
)

// Defaults applied when the frontend sends no tailoring parameters. They are
// interpolated into prompt text, never validated against an enum.
const (
	DefaultEducationLevel = "high-school"
	DefaultLearningStyle  = "visual"
)

// Explainer produces plain-text explanations for user questions.
type Explainer interface {
	Explain(ctx context.Context, prompt, educationLevel, learningStyle string) (string, error)
}

type explainService struct {
	llm domain.TextGenerator
}

// NewExplainService creates the text explanation service.
func NewExplainService(llm domain.TextGenerator) Explainer {
	return &explainService{llm: llm}
}

func (s *explainService) Explain(ctx context.Context, prompt, educationLevel, learningStyle string) (string, error) {
	if prompt == "" {
		return "", domain.NewMissingFieldError("prompt")
	}

	systemPrompt := teachingSystemPrompt(educationLevel, learningStyle)

	response, err := s.llm.Complete(ctx, prompt, systemPrompt)
	if err != nil {
		return "", err
	}

	logger.Get().Info("Generated explanation",
		zap.Int("prompt_len", len(prompt)),
		zap.Int("response_len", len(response)),
	)
	return response, nil
}

// teachingSystemPrompt extends the default persona with the learner's
// education level and preferred style.
func teachingSystemPrompt(educationLevel, learningStyle string) string {
	if educationLevel == "" {
		educationLevel = DefaultEducationLevel
	}
	if learningStyle == "" {
		learningStyle = DefaultLearningStyle
	}
	return fmt.Sprintf("%s\nThe student is at the %s level and learns best in a %s style.",
		domain.DefaultSystemPrompt, educationLevel, learningStyle)
}
