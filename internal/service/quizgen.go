package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"edumotion/internal/domain"
	"edumotion/internal/logger"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.uber.org/zap"
)

// QuizGenerator turns a topic into a validated multiple-choice quiz.
type QuizGenerator interface {
	GenerateQuiz(ctx context.Context, topic, educationLevel, learningStyle string) (*domain.Quiz, error)
}

type quizService struct {
	llm domain.TextGenerator
}

// NewQuizService creates the quiz generation service.
func NewQuizService(llm domain.TextGenerator) QuizGenerator {
	return &quizService{llm: llm}
}

const quizSystemPromptTemplate = `You are an expert quiz generator for students at the %s level who prefer a %s learning style.

Create exactly 5 multiple-choice questions on the topic the user names.

Rules:
1. Each question has exactly 4 options, labeled "A) ", "B) ", "C) ", "D) ".
2. "correctAnswer" must repeat one of the options verbatim, including its label.
3. Each question includes a short "explanation" of why the answer is correct.
4. Difficulty spread: one very easy, two easy, one medium, one hard.
5. Respond with a single JSON array and nothing else. No prose, no markdown fences.

The shape of each element:
{
  "question": "...",
  "options": ["A) ...", "B) ...", "C) ...", "D) ..."],
  "correctAnswer": "A) ...",
  "explanation": "..."
}`

// quizSchema validates the structural half of the quiz contract. The
// semantic half, correctAnswer being one of the options, is checked in Go.
const quizSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["question", "options", "correctAnswer", "explanation"],
		"properties": {
			"question": {"type": "string", "minLength": 1},
			"options": {
				"type": "array",
				"items": {"type": "string"},
				"minItems": 4,
				"maxItems": 4
			},
			"correctAnswer": {"type": "string", "minLength": 1},
			"explanation": {"type": "string", "minLength": 1}
		}
	}
}`

var (
	quizSchemaOnce     sync.Once
	compiledQuizSchema *jsonschema.Schema
	quizSchemaErr      error
)

func getQuizSchema() (*jsonschema.Schema, error) {
	quizSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(quizSchema))
		if err != nil {
			quizSchemaErr = fmt.Errorf("parse quiz schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://quiz.json", doc); err != nil {
			quizSchemaErr = fmt.Errorf("add quiz schema resource: %w", err)
			return
		}
		compiledQuizSchema, quizSchemaErr = c.Compile("schema://quiz.json")
	})
	return compiledQuizSchema, quizSchemaErr
}

func (s *quizService) GenerateQuiz(ctx context.Context, topic, educationLevel, learningStyle string) (*domain.Quiz, error) {
	l := logger.Get()

	if topic == "" {
		return nil, domain.NewMissingFieldError("topic")
	}
	if educationLevel == "" {
		educationLevel = DefaultEducationLevel
	}
	if learningStyle == "" {
		learningStyle = DefaultLearningStyle
	}

	systemPrompt := fmt.Sprintf(quizSystemPromptTemplate, educationLevel, learningStyle)
	userPrompt := fmt.Sprintf("Generate the quiz for this topic: %s", topic)

	raw, err := s.llm.Complete(ctx, userPrompt, systemPrompt)
	if err != nil {
		return nil, err
	}

	questions, err := ParseQuizResponse(raw)
	if err != nil {
		return nil, err
	}

	if len(questions) != domain.ExpectedQuestionCount {
		l.Warn("Generated quiz has unexpected question count",
			zap.String("topic", topic),
			zap.Int("expected", domain.ExpectedQuestionCount),
			zap.Int("actual", len(questions)),
		)
	}

	l.Info("Generated quiz",
		zap.String("topic", topic),
		zap.Int("questions", len(questions)),
	)

	return &domain.Quiz{Topic: topic, Questions: questions}, nil
}

// ParseQuizResponse turns raw model text into validated questions. Any
// schema or invariant violation rejects the whole response; there is no
// partial acceptance.
func ParseQuizResponse(raw string) ([]domain.QuizQuestion, error) {
	candidate, err := ExtractQuizJSON(raw)
	if err != nil {
		return nil, err
	}

	var parsed any
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		return nil, domain.NewQuizFormatError("quiz response is not valid JSON", raw, err)
	}

	schema, err := getQuizSchema()
	if err != nil {
		return nil, domain.NewInternalError("quiz schema unavailable", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, domain.NewQuizFormatError("quiz response violates the expected schema", raw, err)
	}

	var questions []domain.QuizQuestion
	if err := json.Unmarshal([]byte(candidate), &questions); err != nil {
		return nil, domain.NewQuizFormatError("quiz response could not be decoded", raw, err)
	}

	for i := range questions {
		if err := questions[i].Validate(); err != nil {
			return nil, domain.NewQuizFormatError(
				fmt.Sprintf("question %d is invalid: %v", i+1, err), raw, err)
		}
	}

	return questions, nil
}
