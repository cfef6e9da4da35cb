package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents a structured error code
type ErrorCode string

const (
	// Pipeline stage errors
	ErrCodeExtractionFailed    ErrorCode = "EXTRACTION_FAILED"
	ErrCodeTranscriptionFailed ErrorCode = "TRANSCRIPTION_FAILED"
	ErrCodeTransformFailed     ErrorCode = "TRANSFORM_FAILED"
	ErrCodeSynthesisFailed     ErrorCode = "SYNTHESIS_FAILED"
	ErrCodeRenderingFailed     ErrorCode = "RENDERING_FAILED"
	ErrCodeGenerationFailed    ErrorCode = "GENERATION_FAILED"

	// Upload intake errors
	ErrCodeIntakeValidation  ErrorCode = "INTAKE_VALIDATION"
	ErrCodeUploadPersistence ErrorCode = "UPLOAD_PERSISTENCE"

	// Ambient errors
	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"
	ErrCodeInternal      ErrorCode = "INTERNAL"
)

// AppError represents a structured application error. HTTPCode and Cause are
// never serialized; handlers return only the coarse code and message.
type AppError struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  map[string]interface{} `json:"details,omitempty"`
	Cause    error                  `json:"-"`
	HTTPCode int                    `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError
func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Newf creates a new AppError with formatted message
func Newf(code ErrorCode, httpCode int, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		HTTPCode: httpCode,
	}
}

// Wrap wraps an existing error with an AppError
func Wrap(cause error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Cause:    cause,
		HTTPCode: httpCode,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(cause error, code ErrorCode, httpCode int, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Cause:    cause,
		HTTPCode: httpCode,
	}
}

// Stage failure constructors. Each wraps the internal cause so it can be
// logged at the boundary while the caller sees only the coarse message.

// ExtractionError creates a media extraction failure
func ExtractionError(cause error) *AppError {
	return Wrap(cause, ErrCodeExtractionFailed, "failed to extract media", http.StatusInternalServerError)
}

// TranscriptionError creates a speech-to-text failure
func TranscriptionError(cause error) *AppError {
	return Wrap(cause, ErrCodeTranscriptionFailed, "failed to generate transcript", http.StatusInternalServerError)
}

// TransformError creates a text transformation failure
func TransformError(cause error) *AppError {
	return Wrap(cause, ErrCodeTransformFailed, "failed to transform text", http.StatusInternalServerError)
}

// SynthesisError creates a speech synthesis failure
func SynthesisError(cause error) *AppError {
	return Wrap(cause, ErrCodeSynthesisFailed, "failed to synthesize speech", http.StatusInternalServerError)
}

// RenderingError creates a sign-language rendering failure
func RenderingError(cause error) *AppError {
	return Wrap(cause, ErrCodeRenderingFailed, "failed to render sign language", http.StatusInternalServerError)
}

// GenerationError creates an exercise generation failure
func GenerationError(cause error) *AppError {
	return Wrap(cause, ErrCodeGenerationFailed, "failed to generate exercise", http.StatusInternalServerError)
}

// IntakeValidationError creates an upload validation failure
func IntakeValidationError(reason string) *AppError {
	return New(ErrCodeIntakeValidation, reason, http.StatusBadRequest)
}

// PersistenceError creates an upload persistence failure
func PersistenceError(cause error) *AppError {
	return Wrap(cause, ErrCodeUploadPersistence, "File upload failed", http.StatusInternalServerError)
}

// HTTPStatus returns the HTTP status for err, defaulting to 500 when err is
// not an AppError.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode
	}
	return http.StatusInternalServerError
}

// UserMessage returns the caller-facing message for err. Internal causes are
// never exposed; unknown errors collapse to a generic processing failure.
func UserMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "processing failed"
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
