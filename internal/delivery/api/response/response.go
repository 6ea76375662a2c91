// Package response renders the JSON envelope shared by every endpoint:
// {"data": ..., "meta": {...}} on success and {"error": {...}, "meta": {...}} on failure.
package response

import (
	"net/http"

	deliverycontext "cafe/internal/delivery/context"
	domainerrors "cafe/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

type SuccessResponse struct {
	Data any  `json:"data"`
	Meta Meta `json:"meta"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
	Meta  Meta      `json:"meta"`
}

// ErrorBody always carries a human readable message. Details are only sent for
// client errors the caller can fix, e.g. which form field failed.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type Meta struct {
	RequestID string `json:"request_id,omitempty"`
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if !exposesDetails(statusCode) {
		details = ""
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: ErrorBody{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// AppError renders a domain error with its own status, code and message.
func AppError(c echo.Context, err domainerrors.AppError) error {
	return Error(c, err.HTTPCode(), err.ErrorCode(), err.Message(), err.Details())
}

// exposesDetails hides details on 401, 403 and 5xx so they never reveal
// whether an account or cafe exists or what failed server side.
func exposesDetails(statusCode int) bool {
	switch {
	case statusCode >= http.StatusInternalServerError:
		return false
	case statusCode == http.StatusUnauthorized, statusCode == http.StatusForbidden:
		return false
	default:
		return true
	}
}

func meta(c echo.Context) Meta {
	return Meta{RequestID: deliverycontext.GetRequestID(c)}
}
