package services

import "github.com/gofiber/fiber/v2"

// Response is the uniform result envelope every service operation returns.
// Expected outcomes (including not-found) travel in the envelope; only the
// Fiber error handler deals in raw errors.
type Response struct {
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
}

func ok(data any) *Response {
	return &Response{Data: data, Status: fiber.StatusOK}
}

func okMessage(data any, message string) *Response {
	return &Response{Data: data, Status: fiber.StatusOK, Message: message}
}

func created(data any, message string) *Response {
	return &Response{Data: data, Status: fiber.StatusCreated, Message: message}
}

func badRequest(message string) *Response {
	return &Response{Error: message, Status: fiber.StatusBadRequest}
}

func unauthorized(message string) *Response {
	return &Response{Error: message, Status: fiber.StatusUnauthorized}
}

func notFound(message string) *Response {
	return &Response{Error: message, Status: fiber.StatusNotFound}
}

func internal(message string) *Response {
	return &Response{Error: message, Status: fiber.StatusInternalServerError}
}
