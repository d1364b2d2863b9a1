package response

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the error JSON shape returned by every endpoint on failure.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON sends a 200 OK response with the payload serialized directly.
func JSON(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// Created sends a 201 Created response with the payload serialized directly.
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// Error sends an error response as {"error": message}.
func Error(c *fiber.Ctx, message string, statusCode int) error {
	return c.Status(statusCode).JSON(ErrorBody{Error: message})
}

// Unauthorized sends 401 in the standard error shape. Use this in auth
// middleware so all errors are consistent.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, message, fiber.StatusUnauthorized)
}

// NotFound sends 404 in the standard error shape.
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, message, fiber.StatusNotFound)
}
