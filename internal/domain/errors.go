package domain

import (
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput  ErrorCode = "INVALID_INPUT"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeConfiguration ErrorCode = "CONFIGURATION_ERROR"

	// Generation pipeline errors
	CodeLLMUpstream   ErrorCode = "LLM_UPSTREAM_ERROR"
	CodeQuizFormat    ErrorCode = "QUIZ_FORMAT_ERROR"
	CodeNoScript      ErrorCode = "NO_SCRIPT_PROVIDED"
	CodeRenderTimeout ErrorCode = "RENDER_TIMEOUT"
	CodeRenderProcess ErrorCode = "RENDER_PROCESS_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// WithContext attaches a diagnostic key/value pair, returning the same error
// for chaining.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewMissingFieldError(field string) *DomainError {
	return NewError(CodeMissingField, fmt.Sprintf("required field is missing: %s", field), nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewConfigurationError(message string) *DomainError {
	return NewError(CodeConfiguration, message, nil)
}

// NewUpstreamError wraps a failed LLM call. The message should already
// distinguish timeout from connection failure from API-level error.
func NewUpstreamError(message string, cause error) *DomainError {
	return NewError(CodeLLMUpstream, message, cause)
}

// NewQuizFormatError carries a bounded preview of the raw model text so
// malformed responses can be diagnosed without logging megabytes.
func NewQuizFormatError(message string, rawText string, cause error) *DomainError {
	return NewError(CodeQuizFormat, message, cause).
		WithContext("raw_preview", Truncate(rawText, RawPreviewLimit))
}

func NewNoScriptError() *DomainError {
	return NewError(CodeNoScript, "no script provided", nil)
}

func NewRenderTimeoutError(cause error) *DomainError {
	return NewError(CodeRenderTimeout, "rendering process exceeded its timeout", cause)
}

func NewRenderProcessError(message string, cause error) *DomainError {
	return NewError(CodeRenderProcess, message, cause)
}

// RawPreviewLimit bounds raw LLM text attached to errors and logs.
const RawPreviewLimit = 400

// Truncate shortens s to at most n bytes, marking the cut.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "...(truncated)"
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is the error type surfaced by request validation;
// the error-handler middleware turns it into a 400 response.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", e[0].Error())
}

func NewFieldMissingError(field string) ValidationError {
	return ValidationError{Field: field, Message: "is required"}
}

func NewFieldTooLongError(field string, max int) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters", max)}
}
