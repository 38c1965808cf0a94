package handler

import "github.com/labstack/echo/v4"

// Envelope is the uniform response wrapper shared by every endpoint.
// Success responses carry Data and optionally Message; error responses (built
// by the central error handler) carry Error.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func respond(c echo.Context, status int, data any, message string) error {
	return c.JSON(status, Envelope{Success: true, Data: data, Message: message})
}
