package dto

// TextRequest is the body of POST /userQuestionText.
// @Description Request body for a plain-text explanation
type TextRequest struct {
	Prompt         string `json:"prompt"`
	EducationLevel string `json:"educationLevel,omitempty"`
	LearningStyle  string `json:"learningStyle,omitempty"`
}

// TextResponse echoes the prompt and carries the explanation text.
type TextResponse struct {
	PromptReceived string `json:"promptReceived"`
	Response       string `json:"response"`
	Success        bool   `json:"success"`
}

// QuizRequest is the body of POST /userQuestionQuiz.
// @Description Request body for quiz generation
type QuizRequest struct {
	Topic          string `json:"topic"`
	EducationLevel string `json:"educationLevel,omitempty"`
	LearningStyle  string `json:"learningStyle,omitempty"`
}

// QuizQuestionResponse mirrors the quiz JSON shape the frontend renders.
type QuizQuestionResponse struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

type QuizResponse struct {
	Topic   string                 `json:"topic"`
	Quiz    []QuizQuestionResponse `json:"quiz"`
	Success bool                   `json:"success"`
}

// CreateVideoRequest is the body of POST /createVideo.
type CreateVideoRequest struct {
	Prompt string `json:"prompt"`
}

// CreateVideoResponse returns the generated animation script text; the
// frontend uploads it back through /executeManim.
type CreateVideoResponse struct {
	Response string `json:"response"`
	Success  bool   `json:"success"`
}

// ExecuteManimResponse reports the rendered video location. UsedFallback is
// true when the placeholder was served instead of a real render.
type ExecuteManimResponse struct {
	Success      bool   `json:"success"`
	VideoURL     string `json:"videoUrl"`
	UsedFallback bool   `json:"usedFallback"`
	Message      string `json:"message,omitempty"`
}

// UpdateSettingsRequest is accepted for frontend compatibility; settings are
// not persisted server-side.
type UpdateSettingsRequest struct {
	Settings map[string]interface{} `json:"settings"`
}

type UpdateSettingsResponse struct {
	Text string `json:"text"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
