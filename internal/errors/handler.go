package errors

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pipeline-tools/ccnotify/internal/logging"
)

// ErrorResponse represents the standardized error response format
type ErrorResponse struct {
	Error     string                 `json:"error"`
	Code      ErrorCode              `json:"code"`
	Details   string                 `json:"details,omitempty"`
	Context   map[string]interface{} `json:"context,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
	Timestamp string                 `json:"timestamp"`
}

// Handler provides centralized error handling for HTTP responses
type Handler struct {
	// Include sensitive details in responses (dev mode)
	IncludeSensitiveDetails bool
}

// NewHandler creates a new error handler with default configuration
func NewHandler() *Handler {
	return &Handler{IncludeSensitiveDetails: false}
}

// NewDevelopmentHandler creates an error handler for development with more verbose output
func NewDevelopmentHandler() *Handler {
	return &Handler{IncludeSensitiveDetails: true}
}

// HandleError processes an error and returns an appropriate HTTP response
func (h *Handler) HandleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	appErr := h.toAppError(err)

	requestID := c.Get("X-Request-ID")
	if requestID == "" {
		requestID = c.Get("X-Correlation-ID")
	}

	h.logError(appErr, requestID, c)

	response := h.createErrorResponse(appErr, requestID)
	c.Set("Content-Type", "application/json")
	return c.Status(appErr.HTTPStatus).JSON(response)
}

// toAppError converts any error to an AppError
func (h *Handler) toAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		converted := NewError(ErrInternalServer, fiberErr.Message)
		converted.HTTPStatus = fiberErr.Code
		return converted
	}

	return NewErrorWithCause(ErrInternalServer, "unexpected error", err)
}

// logError logs the error with a level matching its severity
func (h *Handler) logError(appErr *AppError, requestID string, c *fiber.Ctx) {
	logger := logging.GetLogger()
	if logger == nil {
		return
	}

	line := "%s [code=%s method=%s path=%s request_id=%s]"
	args := []interface{}{appErr.Error(), appErr.Code, c.Method(), c.Path(), requestID}

	switch appErr.Severity {
	case SeverityLow:
		logger.Info(line, args...)
	case SeverityMedium:
		logger.Warn(line, args...)
	default:
		logger.Error(line, args...)
	}
}

// createErrorResponse builds the response body for an AppError
func (h *Handler) createErrorResponse(appErr *AppError, requestID string) ErrorResponse {
	response := ErrorResponse{
		Error:     appErr.Message,
		Code:      appErr.Code,
		RequestID: requestID,
		Timestamp: appErr.Timestamp.Format(time.RFC3339),
	}
	if h.IncludeSensitiveDetails {
		response.Details = appErr.Details
		response.Context = appErr.Context
	}
	return response
}
