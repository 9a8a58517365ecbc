package domain

// ExpectedQuestionCount is the number of questions a generated quiz should
// contain. A different count is logged as a warning, not rejected.
const ExpectedQuestionCount = 5

// OptionCount is the number of answer options every question must have.
const OptionCount = 4

// QuizQuestion is one multiple-choice question produced by the generator.
// Options carry their letter labels ("A) ".."D) ") and CorrectAnswer must
// match one option verbatim.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Validate checks the per-question invariants. It does not check the letter
// prefixes; the prompt mandates them but the contract only requires verbatim
// membership of the correct answer.
func (q *QuizQuestion) Validate() error {
	if q.Question == "" {
		return NewInvalidInputError("question text is empty")
	}
	if len(q.Options) != OptionCount {
		return NewInvalidInputError("question must have exactly 4 options")
	}
	if q.CorrectAnswer == "" {
		return NewInvalidInputError("question has no correct answer")
	}
	if q.Explanation == "" {
		return NewInvalidInputError("question has no explanation")
	}
	for _, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return nil
		}
	}
	return NewInvalidInputError("correct answer is not one of the options")
}

// Quiz is an ordered set of questions on a single topic. It lives only for
// the request/response cycle that produced it.
type Quiz struct {
	Topic     string
	Questions []QuizQuestion
}
