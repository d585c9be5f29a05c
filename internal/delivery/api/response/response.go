// Package response builds the JSON envelope shared by every API endpoint.
package response

import (
	"net/http"

	deliverycontext "tripbook/internal/delivery/context"
	domainerrors "tripbook/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Success   bool   `json:"success"`
	Code      int    `json:"code"`
	Message   string `json:"message,omitempty"`
	Data      any    `json:"data,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Error     string `json:"error"`     // Human readable detail; generic for 5xx
	ErrorCode string `json:"errorCode"` // Machine-readable error code, e.g., "VALIDATION_FAILED"
	RequestID string `json:"requestId,omitempty"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, message string, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Success:   true,
		Code:      statusCode,
		Message:   message,
		Data:      data,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// OK returns a 200 response
func OK(c echo.Context, message string, data any) error {
	return Success(c, http.StatusOK, message, data)
}

// Created returns a 201 response
func Created(c echo.Context, message string, data any) error {
	return Success(c, http.StatusCreated, message, data)
}

// Error returns an error response. Details of 5xx errors never reach the client.
func Error(c echo.Context, statusCode int, errorCode, message, detail string) error {
	if statusCode >= http.StatusInternalServerError || detail == "" {
		detail = message
	}

	return c.JSON(statusCode, ErrorResponse{
		Success:   false,
		Code:      statusCode,
		Message:   message,
		Error:     detail,
		ErrorCode: errorCode,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// AppError writes the envelope for a domain error
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	detail := appErr.Message()
	if d := appErr.Details(); d != "" {
		detail = appErr.Message() + ": " + d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), detail)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, "")
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}
