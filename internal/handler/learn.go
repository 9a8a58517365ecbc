package handler

import (
	"io"

	"edumotion/internal/domain"
	"edumotion/internal/dto"
	"edumotion/internal/logger"
	"edumotion/internal/service"
	"edumotion/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LearnHandler handles the explanation, quiz and video HTTP endpoints.
type LearnHandler struct {
	explainer service.Explainer
	quizzes   service.QuizGenerator
	scripts   service.ScriptGenerator
	videos    service.VideoExecutor
	validator *validation.Validator
}

// NewLearnHandler creates a LearnHandler instance
func NewLearnHandler(
	explainer service.Explainer,
	quizzes service.QuizGenerator,
	scripts service.ScriptGenerator,
	videos service.VideoExecutor,
) *LearnHandler {
	return &LearnHandler{
		explainer: explainer,
		quizzes:   quizzes,
		scripts:   scripts,
		videos:    videos,
		validator: validation.NewValidator(),
	}
}

// Health godoc
// @Summary Liveness check
// @Produce plain
// @Success 200 {string} string "API is up"
// @Router / [get]
func (h *LearnHandler) Health(c *fiber.Ctx) error {
	return c.SendString("API is up")
}

// UserQuestionText godoc
// @Summary Generate a plain-text explanation
// @Accept json
// @Produce json
// @Param request body dto.TextRequest true "Question details"
// @Success 200 {object} dto.TextResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /userQuestionText [post]
func (h *LearnHandler) UserQuestionText(c *fiber.Ctx) error {
	var req dto.TextRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body is not valid JSON")
	}

	if errs := h.validator.ValidateTextRequest(req.Prompt, req.EducationLevel, req.LearningStyle); len(errs) > 0 {
		return errs
	}

	response, err := h.explainer.Explain(c.Context(), req.Prompt, req.EducationLevel, req.LearningStyle)
	if err != nil {
		return err
	}

	return c.JSON(dto.TextResponse{
		PromptReceived: req.Prompt,
		Response:       response,
		Success:        true,
	})
}

// UserQuestionQuiz godoc
// @Summary Generate a multiple-choice quiz
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Quiz topic and tailoring"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /userQuestionQuiz [post]
func (h *LearnHandler) UserQuestionQuiz(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body is not valid JSON")
	}

	if errs := h.validator.ValidateQuizRequest(req.Topic, req.EducationLevel, req.LearningStyle); len(errs) > 0 {
		return errs
	}

	quiz, err := h.quizzes.GenerateQuiz(c.Context(), req.Topic, req.EducationLevel, req.LearningStyle)
	if err != nil {
		return err
	}

	questions := make([]dto.QuizQuestionResponse, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, dto.QuizQuestionResponse{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}

	return c.JSON(dto.QuizResponse{
		Topic:   req.Topic,
		Quiz:    questions,
		Success: true,
	})
}

// CreateVideo godoc
// @Summary Generate an animation script for a topic
// @Accept json
// @Produce json
// @Param request body dto.CreateVideoRequest true "Video topic"
// @Success 200 {object} dto.CreateVideoResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /createVideo [post]
func (h *LearnHandler) CreateVideo(c *fiber.Ctx) error {
	var req dto.CreateVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body is not valid JSON")
	}

	if errs := h.validator.ValidateCreateVideoRequest(req.Prompt); len(errs) > 0 {
		return errs
	}

	script, err := h.scripts.GenerateScript(c.Context(), req.Prompt)
	if err != nil {
		return err
	}

	return c.JSON(dto.CreateVideoResponse{
		Response: script,
		Success:  true,
	})
}

// ExecuteManim godoc
// @Summary Render an uploaded animation script
// @Accept multipart/form-data
// @Produce json
// @Param script formData file true "Python script file"
// @Success 200 {object} dto.ExecuteManimResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /executeManim [post]
func (h *LearnHandler) ExecuteManim(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("script")
	if err != nil {
		return domain.NewNoScriptError()
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domain.NewInternalError("failed to open uploaded script", err)
	}
	script, err := io.ReadAll(file)
	// The upload is consumed in memory; closing releases any temp file the
	// multipart reader spilled to.
	file.Close()
	if err != nil {
		return domain.NewInternalError("failed to read uploaded script", err)
	}
	if len(script) == 0 {
		return domain.NewNoScriptError()
	}

	result, err := h.videos.Execute(c.Context(), string(script))
	if err != nil {
		return err
	}

	if result.UsedFallback {
		logger.Get().Warn("Serving fallback video",
			zap.String("message", result.Message),
		)
	}

	return c.JSON(dto.ExecuteManimResponse{
		Success:      true,
		VideoURL:     result.VideoURL,
		UsedFallback: result.UsedFallback,
		Message:      result.Message,
	})
}

// UpdateUserSettings godoc
// @Summary Acknowledge a settings update
// @Accept json
// @Produce json
// @Param request body dto.UpdateSettingsRequest true "Settings payload"
// @Success 200 {object} dto.UpdateSettingsResponse
// @Router /updateUserSettings [post]
func (h *LearnHandler) UpdateUserSettings(c *fiber.Ctx) error {
	var req dto.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body is not valid JSON")
	}

	// Settings live in the frontend; the backend only acknowledges them.
	return c.JSON(dto.UpdateSettingsResponse{
		Text: "settings have been updated",
	})
}
