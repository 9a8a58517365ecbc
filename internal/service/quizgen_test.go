package service_test

import (
	"context"
	"errors"
	"testing"

	"edumotion/internal/domain"
	"edumotion/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validQuizJSON = `[{"question":"Q?","options":["A) 1","B) 2","C) 3","D) 4"],"correctAnswer":"A) 1","explanation":"e"}]`

func TestParseQuizResponse(t *testing.T) {
	t.Run("bare array parses", func(t *testing.T) {
		questions, err := service.ParseQuizResponse(validQuizJSON)
		require.NoError(t, err)
		require.Len(t, questions, 1)
		assert.Equal(t, "Q?", questions[0].Question)
		assert.Equal(t, "A) 1", questions[0].CorrectAnswer)
	})

	t.Run("fenced array parses identically", func(t *testing.T) {
		fenced := "```json\n" + validQuizJSON + "\n```"
		fromFenced, err := service.ParseQuizResponse(fenced)
		require.NoError(t, err)
		fromBare, err := service.ParseQuizResponse(validQuizJSON)
		require.NoError(t, err)
		assert.Equal(t, fromBare, fromFenced)
	})

	t.Run("correctAnswer not among options fails", func(t *testing.T) {
		input := `[{"question":"Q?","options":["A) 1","B) 2","C) 3","D) 4"],"correctAnswer":"E) 5","explanation":"e"}]`
		_, err := service.ParseQuizResponse(input)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeQuizFormat, domainErr.Code)
	})

	t.Run("missing explanation fails", func(t *testing.T) {
		input := `[{"question":"Q?","options":["A) 1","B) 2","C) 3","D) 4"],"correctAnswer":"A) 1"}]`
		_, err := service.ParseQuizResponse(input)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeQuizFormat, domainErr.Code)
	})

	t.Run("wrong option count fails", func(t *testing.T) {
		input := `[{"question":"Q?","options":["A) 1","B) 2"],"correctAnswer":"A) 1","explanation":"e"}]`
		_, err := service.ParseQuizResponse(input)
		assert.Error(t, err)
	})

	t.Run("non-json text fails with bounded preview", func(t *testing.T) {
		_, err := service.ParseQuizResponse("I cannot generate a quiz for that topic.")
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeQuizFormat, domainErr.Code)
		preview, ok := domainErr.Context["raw_preview"].(string)
		require.True(t, ok)
		assert.LessOrEqual(t, len(preview), domain.RawPreviewLimit+len("...(truncated)"))
	})
}

func fiveQuestionQuiz() string {
	q := `{"question":"Q?","options":["A) 1","B) 2","C) 3","D) 4"],"correctAnswer":"A) 1","explanation":"e"}`
	return `[` + q + `,` + q + `,` + q + `,` + q + `,` + q + `]`
}

func TestQuizService_GenerateQuiz(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockLLM := &MockTextGenerator{
			CompleteFunc: func(ctx context.Context, userPrompt, systemPrompt string) (string, error) {
				return fiveQuestionQuiz(), nil
			},
		}
		svc := service.NewQuizService(mockLLM)

		quiz, err := svc.GenerateQuiz(context.Background(), "photosynthesis", "", "")
		require.NoError(t, err)
		assert.Equal(t, "photosynthesis", quiz.Topic)
		assert.Len(t, quiz.Questions, 5)
		assert.Contains(t, mockLLM.LastUserPrompt, "photosynthesis")
		assert.Contains(t, mockLLM.LastSystemPrompt, "high-school")
		assert.Contains(t, mockLLM.LastSystemPrompt, "visual")
	})

	t.Run("tailoring parameters reach the prompt", func(t *testing.T) {
		mockLLM := &MockTextGenerator{
			CompleteFunc: func(ctx context.Context, userPrompt, systemPrompt string) (string, error) {
				return fiveQuestionQuiz(), nil
			},
		}
		svc := service.NewQuizService(mockLLM)

		_, err := svc.GenerateQuiz(context.Background(), "gravity", "university", "auditory")
		require.NoError(t, err)
		assert.Contains(t, mockLLM.LastSystemPrompt, "university")
		assert.Contains(t, mockLLM.LastSystemPrompt, "auditory")
	})

	t.Run("question count other than five is accepted with a warning", func(t *testing.T) {
		mockLLM := &MockTextGenerator{
			CompleteFunc: func(ctx context.Context, userPrompt, systemPrompt string) (string, error) {
				return validQuizJSON, nil
			},
		}
		svc := service.NewQuizService(mockLLM)

		quiz, err := svc.GenerateQuiz(context.Background(), "gravity", "", "")
		require.NoError(t, err)
		assert.Len(t, quiz.Questions, 1)
	})

	t.Run("empty topic is rejected before the LLM call", func(t *testing.T) {
		svc := service.NewQuizService(&MockTextGenerator{})
		_, err := svc.GenerateQuiz(context.Background(), "", "", "")
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeMissingField, domainErr.Code)
	})

	t.Run("upstream error propagates", func(t *testing.T) {
		upstream := domain.NewUpstreamError("openai request timed out after 30s", errors.New("deadline"))
		mockLLM := &MockTextGenerator{
			CompleteFunc: func(ctx context.Context, userPrompt, systemPrompt string) (string, error) {
				return "", upstream
			},
		}
		svc := service.NewQuizService(mockLLM)

		_, err := svc.GenerateQuiz(context.Background(), "gravity", "", "")
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeLLMUpstream, domainErr.Code)
	})
}
