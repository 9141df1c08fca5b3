package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	mw "github.com/lorrc/medspa-leads-backend/internal/adapters/primary/http/middleware"
	apperrors "github.com/lorrc/medspa-leads-backend/internal/core/errors"
)

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) string {
	return mw.GetRequestID(ctx)
}

// ErrorResponse is the standard JSON error response format
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ValidationErrorResponse includes field-level validation errors
type ValidationErrorResponse struct {
	Error  string              `json:"error"`
	Code   string              `json:"code"`
	Fields map[string][]string `json:"fields,omitempty"`
}

// ErrorHandler provides centralized error handling with logging
type ErrorHandler struct {
	logger *slog.Logger
}

// NewErrorHandler creates a new error handler with the given logger
func NewErrorHandler(logger *slog.Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle processes an error and writes the appropriate HTTP response
func (h *ErrorHandler) Handle(w http.ResponseWriter, r *http.Request, err error) {
	requestID := GetRequestID(r.Context())

	// Check for ValidationErrors (field-level failures)
	var validationErrs *apperrors.ValidationErrors
	if errors.As(err, &validationErrs) {
		h.logError(r, http.StatusUnprocessableEntity, err, requestID)
		h.writeValidationErrorResponse(w, validationErrs)
		return
	}

	// Anything that is not already an AppError gets lifted into one.
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = mapDomainError(err)
	}

	h.logError(r, appErr.StatusCode, appErr.Err, requestID)
	h.writeErrorResponse(w, appErr.StatusCode, ErrorResponse{
		Error:   appErr.Message,
		Code:    appErr.Code,
		Details: appErr.Details,
	})
}

// mapDomainError lifts well-known sentinel errors into the AppError
// taxonomy; unknown errors surface as opaque 500s.
func mapDomainError(err error) *apperrors.AppError {
	switch {
	case errors.Is(err, apperrors.ErrLeadNotFound):
		return apperrors.NewNotFoundError(err, "Lead not found")
	case errors.Is(err, apperrors.ErrInvalidStatus):
		return apperrors.NewValidationError(err, "Invalid lead status", nil)
	case errors.Is(err, apperrors.ErrLeadIDRequired):
		return apperrors.NewBadRequestError(err, "Lead ID is required")
	case errors.Is(err, apperrors.ErrNotFound):
		return apperrors.NewNotFoundError(err, "Resource not found")
	case errors.Is(err, apperrors.ErrBadRequest):
		return apperrors.NewBadRequestError(err, "Bad request")
	default:
		return apperrors.NewInternalError(err)
	}
}

func (h *ErrorHandler) logError(r *http.Request, status int, err error, requestID string) {
	attrs := []any{
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"error", err,
	}
	if requestID != "" {
		attrs = append(attrs, "request_id", requestID)
	}

	if status >= 500 {
		h.logger.Error("request failed", attrs...)
	} else {
		h.logger.Warn("request failed", attrs...)
	}
}

func (h *ErrorHandler) writeErrorResponse(w http.ResponseWriter, status int, resp ErrorResponse) {
	WriteJSON(w, status, resp)
}

func (h *ErrorHandler) writeValidationErrorResponse(w http.ResponseWriter, errs *apperrors.ValidationErrors) {
	WriteJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
		Error:  "Validation failed",
		Code:   "VALIDATION_ERROR",
		Fields: errs.Errors,
	})
}
