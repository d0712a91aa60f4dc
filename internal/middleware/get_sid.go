package middleware

import (
	"github.com/gofiber/fiber/v2"

	"civic-reports/internal/services"
)

// SessionIDFromLocals returns the session id JWTSession put in Locals.
func SessionIDFromLocals(c *fiber.Ctx) (string, error) {
	sid, _ := c.Locals("session_id").(string)
	if sid == "" {
		return "", fiber.ErrUnauthorized
	}
	return sid, nil
}

// StateFromLocals returns the session State InjectState loaded.
func StateFromLocals(c *fiber.Ctx) (*services.State, error) {
	s, _ := c.Locals("state").(*services.State)
	if s == nil {
		return nil, fiber.ErrUnauthorized
	}
	return s, nil
}
