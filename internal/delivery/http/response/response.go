// Package response holds the wire shapes shared by the HTTP handlers.
// The API contract uses bare JSON objects: errors are {"error": "..."} and
// acknowledgements are {"message": "..."}.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the uniform error payload.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody is the uniform acknowledgement payload.
type MessageBody struct {
	Message string `json:"message"`
}

// Error writes an error payload with the given status code.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{Error: message})
}

// Message writes an acknowledgement payload with the given status code.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}

// BadRequest 400 error
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}

// NotFound 404 error
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, message)
}
