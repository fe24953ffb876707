// Package response renders the JSON envelope shared by every endpoint.
package response

import (
	"net/http"

	deliverycontext "notekeeper/internal/delivery/context"
	domainerrors "notekeeper/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable, e.g. "VALIDATION_FAILED"
	Message string `json:"message"`           // Safe to show to the caller
	Details any    `json:"details,omitempty"` // Validation failures only
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Error writes an error envelope. Details are dropped for anything but a 400.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode != http.StatusBadRequest {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// AppError renders appErr. For a validation failure the wrapped chain in err
// becomes the details, since it only describes the caller's own input.
func AppError(c echo.Context, appErr domainerrors.AppError, err error) error {
	var details any
	if appErr.HTTPCode() == http.StatusBadRequest {
		details = err.Error()
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// HandleAppError renders client errors directly. Server errors and unknown
// errors are returned so the central error handler logs them.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return AppError(c, appErr, err)
	}

	return errors.WithStack(err)
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}
