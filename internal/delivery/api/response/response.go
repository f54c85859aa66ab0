package response

import (
	"net/http"

	deliverycontext "wordtrainer/internal/delivery/context"
	domainerrors "wordtrainer/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == 401 || statusCode == 403 {
		details = nil
	}

	return writeError(c, statusCode, errorCode, message, details)
}

// ErrorWithDetails writes an error response without stripping details. It exists for
// responses that must carry details on a 401, such as opt-in field-level signin errors.
func ErrorWithDetails(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	return writeError(c, statusCode, errorCode, message, details)
}

func writeError(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// A typed nil map would still render as "details": null.
	if m, ok := details.(map[string]string); ok && len(m) == 0 {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BadRequestWithDetails returns a 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// AppErrorDetails collects the client-facing details of an AppError: the offending
// field and, for client errors, the reason. It returns nil when there is nothing to add.
func AppErrorDetails(appErr domainerrors.AppError) map[string]string {
	details := make(map[string]string, 2)
	if field := appErr.Field(); field != "" {
		details["field"] = field
	}
	if reason := appErr.Details(); reason != "" && appErr.HTTPCode() < http.StatusInternalServerError {
		details["reason"] = reason
	}

	if len(details) == 0 {
		return nil
	}

	return details
}
