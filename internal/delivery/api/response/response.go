// Package response renders the JSON envelopes returned by the API server.
package response

import (
	"net/http"

	deliverycontext "authcore/internal/delivery/context"
	domainerrors "authcore/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse is the envelope of every 2xx body
type SuccessResponse struct {
	Data    any       `json:"data"`
	Message string    `json:"message,omitempty"`
	Meta    *MetaInfo `json:"meta"`
}

// ErrorResponse is the envelope of every error body
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo carries a stable machine-readable code. Details are only ever set for client
// errors other than 401 and 403.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// exposesDetails is false for server faults and for authentication failures, where details
// would help an attacker more than a client.
func exposesDetails(status int) bool {
	return status < http.StatusInternalServerError &&
		status != http.StatusUnauthorized &&
		status != http.StatusForbidden
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, SuccessResponse{
		Data:    data,
		Message: message,
		Meta:    meta(c),
	})
}

// Error writes an error envelope, dropping details the status must not expose
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	info := &ErrorInfo{Code: errorCode, Message: message}
	if exposesDetails(statusCode) {
		info.Details = details
	}

	return c.JSON(statusCode, ErrorResponse{Error: info, Meta: meta(c)})
}

// AppError writes the envelope for a domain error
func AppError(c echo.Context, err domainerrors.AppError, details any) error {
	return Error(c, err.HTTPCode(), err.ErrorCode(), err.Message(), details)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}
