package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CORSConfig holds the allowed-origin suffix (e.g. ".confera.app").
type CORSConfig struct {
	AllowedSuffix string
}

// CORS allows origins ending with AllowedSuffix plus localhost in dev.
// Credentials allowed so the session cookie travels.
func CORS(cfg CORSConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get("Origin")
		if origin == "" {
			return c.Next()
		}
		allowed := strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "http://127.0.0.1:")
		if !allowed && cfg.AllowedSuffix != "" {
			allowed = strings.HasSuffix(strings.ToLower(origin), strings.ToLower(cfg.AllowedSuffix))
		}
		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not allowed by CORS"})
		}
		c.Set("Access-Control-Allow-Origin", origin)
		c.Set("Access-Control-Allow-Credentials", "true")
		c.Set("Access-Control-Allow-Headers", "Content-Type")
		c.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE")
		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	}
}
