// Package response defines the wire shapes the HTTP API serializes.
package response

import (
	"github.com/labstack/echo/v4"
)

// ErrorBody is the only shape error responses take: {"error": "<code>"}.
// The code is a stable machine-readable token, never a human-readable message.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON writes a success body. Payloads are serialized directly, without an envelope.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Error writes an error body carrying only the machine-readable code.
func Error(c echo.Context, statusCode int, errorCode string) error {
	return c.JSON(statusCode, ErrorBody{Error: errorCode})
}
