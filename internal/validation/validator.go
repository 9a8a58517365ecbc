package validation

import (
	"strings"

	"edumotion/internal/domain"
)

// Limits on user-supplied text. These guard prompt size, not content;
// education level and learning style are interpolated into prompts but are
// deliberately not validated against an enum.
const (
	MaxPromptLength = 2000
	MaxTailoringLen = 100
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateTextRequest validates the explanation request body.
func (v *Validator) ValidateTextRequest(prompt, educationLevel, learningStyle string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(prompt) == "" {
		errors = append(errors, domain.NewFieldMissingError("prompt"))
	} else if len(prompt) > MaxPromptLength {
		errors = append(errors, domain.NewFieldTooLongError("prompt", MaxPromptLength))
	}

	errors = append(errors, v.validateTailoring(educationLevel, learningStyle)...)
	return errors
}

// ValidateQuizRequest validates the quiz generation request body.
func (v *Validator) ValidateQuizRequest(topic, educationLevel, learningStyle string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(topic) == "" {
		errors = append(errors, domain.NewFieldMissingError("topic"))
	} else if len(topic) > MaxPromptLength {
		errors = append(errors, domain.NewFieldTooLongError("topic", MaxPromptLength))
	}

	errors = append(errors, v.validateTailoring(educationLevel, learningStyle)...)
	return errors
}

// ValidateCreateVideoRequest validates the video script request body.
func (v *Validator) ValidateCreateVideoRequest(prompt string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(prompt) == "" {
		errors = append(errors, domain.NewFieldMissingError("prompt"))
	} else if len(prompt) > MaxPromptLength {
		errors = append(errors, domain.NewFieldTooLongError("prompt", MaxPromptLength))
	}

	return errors
}

func (v *Validator) validateTailoring(educationLevel, learningStyle string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if len(educationLevel) > MaxTailoringLen {
		errors = append(errors, domain.NewFieldTooLongError("educationLevel", MaxTailoringLen))
	}
	if len(learningStyle) > MaxTailoringLen {
		errors = append(errors, domain.NewFieldTooLongError("learningStyle", MaxTailoringLen))
	}
	return errors
}
