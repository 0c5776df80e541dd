// Package dto holds the JSON shapes of the read API and the error envelope
// shared by every JSON response.
package dto

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/project-blog/internal/domain"
	"github.com/jsamuelsen/project-blog/internal/platform/logging"
)

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	// Code is machine-readable, e.g. "NOT_FOUND".
	Code string `json:"code"`

	Message string `json:"message"`

	// Details carries field-level messages for validation errors.
	Details map[string]string `json:"details,omitempty"`
}

// Error codes.
const (
	ErrorCodeNotFound    = "NOT_FOUND"
	ErrorCodeConflict    = "CONFLICT"
	ErrorCodeValidation  = "VALIDATION_ERROR"
	ErrorCodeUnavailable = "SERVICE_UNAVAILABLE"
	ErrorCodeInternal    = "INTERNAL_ERROR"
	ErrorCodeTimeout     = "TIMEOUT"
	ErrorCodeBadRequest  = "BAD_REQUEST"
)

// TraceIDKey is the gin context key GetTraceID checks first.
const TraceIDKey = "trace_id"

const internalErrorMessage = "an internal error occurred"

// NewErrorResponse creates an error response.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithDetails creates an error response with field details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	resp := NewErrorResponse(code, message)
	resp.Error.Details = details

	return resp
}

// WithTraceID sets the trace id and returns e.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeConflict:
		return http.StatusConflict
	case ErrorCodeValidation, ErrorCodeBadRequest:
		return http.StatusBadRequest
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	case ErrorCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// MapDomainError maps a domain error to a status and envelope. Errors that
// are not domain errors become a 500 with a generic message.
func MapDomainError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	var code string

	switch {
	case domain.IsNotFound(err):
		code = ErrorCodeNotFound
	case domain.IsConflict(err):
		code = ErrorCodeConflict
	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, err.Error())

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Error.Details = map[string]string{validationErr.Field: validationErr.Message}
		}

		return http.StatusBadRequest, resp
	case domain.IsUnavailable(err):
		code = ErrorCodeUnavailable
	default:
		return http.StatusInternalServerError, NewErrorResponse(ErrorCodeInternal, internalErrorMessage)
	}

	return HTTPStatusFromCode(code), NewErrorResponse(code, err.Error())
}

// HandleError writes the envelope for err. Internal errors are logged with
// the underlying cause, which never reaches the client.
func HandleError(c *gin.Context, err error) {
	status, resp := MapDomainError(err)
	resp.TraceID = GetTraceID(c)

	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("trace_id", resp.TraceID),
		)
	}

	c.AbortWithStatusJSON(status, resp)
}

// HandleErrorCode writes an envelope for an adapter-level error that has no
// domain counterpart, such as a malformed query string.
func HandleErrorCode(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}

// HandleBindingError writes a 400 for a failed BindQueryAndValidate or
// BindURIAndValidate. Validation failures carry per-field details.
func HandleBindingError(c *gin.Context, err error) {
	if !IsValidationError(err) {
		HandleErrorCode(c, ErrorCodeBadRequest, err.Error())
		return
	}

	resp := NewErrorResponseWithDetails(ErrorCodeValidation, "request validation failed", ValidationErrors(err))
	c.AbortWithStatusJSON(http.StatusBadRequest, resp.WithTraceID(GetTraceID(c)))
}

// GetTraceID returns the id used to correlate an error response with the
// logs: an explicit trace_id context value, then the OpenTelemetry trace id,
// then the X-Request-ID header.
func GetTraceID(c *gin.Context) string {
	if v, ok := c.Get(TraceIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
		return ""
	}

	if c.Request == nil {
		return ""
	}

	if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
		return sc.TraceID().String()
	}

	return c.GetHeader("X-Request-ID")
}
