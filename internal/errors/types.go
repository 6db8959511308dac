package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents a specific error type for categorization and metrics
type ErrorCode string

const (
	// Payload errors
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrMissingField  ErrorCode = "MISSING_FIELD"
	ErrInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Event errors
	ErrUnsupportedSource ErrorCode = "UNSUPPORTED_EVENT_SOURCE"
	ErrUnknownEventType  ErrorCode = "UNKNOWN_EVENT_TYPE"

	// Trigger rule errors
	ErrRuleEvaluation ErrorCode = "RULE_EVALUATION_FAILED"
	ErrRuleConfig     ErrorCode = "RULE_CONFIG_ERROR"

	// System errors
	ErrConfigurationError ErrorCode = "CONFIGURATION_ERROR"
	ErrInternalServer     ErrorCode = "INTERNAL_SERVER_ERROR"
)

// ErrorSeverity indicates the severity level of an error
type ErrorSeverity string

const (
	SeverityLow      ErrorSeverity = "LOW"
	SeverityMedium   ErrorSeverity = "MEDIUM"
	SeverityHigh     ErrorSeverity = "HIGH"
	SeverityCritical ErrorSeverity = "CRITICAL"
)

// AppError represents a structured application error with rich context
type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    string                 `json:"details,omitempty"`
	Severity   ErrorSeverity          `json:"severity"`
	HTTPStatus int                    `json:"http_status"`
	Context    map[string]interface{} `json:"context,omitempty"`
	Timestamp  time.Time              `json:"timestamp"`
	Cause      error                  `json:"-"` // Original error, not serialized
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds contextual information to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithEventContext adds event-specific context to the error
func (e *AppError) WithEventContext(repo string, eventType string) *AppError {
	return e.WithContext("repo", repo).WithContext("event_type", eventType)
}

// NewError creates a new AppError with the given code and message
func NewError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Severity:   getDefaultSeverity(code),
		HTTPStatus: getDefaultHTTPStatus(code),
		Timestamp:  time.Now(),
	}
}

// NewErrorWithCause creates a new AppError wrapping an existing error
func NewErrorWithCause(code ErrorCode, message string, cause error) *AppError {
	err := NewError(code, message)
	err.Cause = cause
	return err
}

// getDefaultHTTPStatus maps error codes to HTTP status codes
func getDefaultHTTPStatus(code ErrorCode) int {
	switch code {
	case ErrInvalidInput, ErrMissingField, ErrInvalidFormat:
		return http.StatusBadRequest
	case ErrUnsupportedSource, ErrUnknownEventType:
		return http.StatusUnprocessableEntity
	case ErrRuleEvaluation, ErrRuleConfig, ErrConfigurationError, ErrInternalServer:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// getDefaultSeverity maps error codes to severities
func getDefaultSeverity(code ErrorCode) ErrorSeverity {
	switch code {
	case ErrInvalidInput, ErrMissingField, ErrInvalidFormat, ErrUnsupportedSource, ErrUnknownEventType:
		return SeverityLow
	case ErrRuleEvaluation:
		return SeverityMedium
	case ErrRuleConfig, ErrConfigurationError:
		return SeverityHigh
	case ErrInternalServer:
		return SeverityCritical
	default:
		return SeverityMedium
	}
}
