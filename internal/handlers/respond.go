package handlers

import (
	"taskboard-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

// respond translates a service envelope into the HTTP response: failures
// become {"error": ...}, successes carry the envelope itself.
func respond(c *fiber.Ctx, resp *services.Response) error {
	if resp.Error != "" {
		return c.Status(resp.Status).JSON(fiber.Map{
			"error": resp.Error,
		})
	}
	return c.Status(resp.Status).JSON(resp)
}
