package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"civic-reports/internal/services"
)

func InjectState(store *services.SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid, err := SessionIDFromLocals(c)
		if err != nil {
			return err
		}
		s, err := store.Get(sid)
		if err != nil {
			if errors.Is(err, services.ErrSessionNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "session expired")
			}
			return err
		}
		c.Locals("state", s)
		return c.Next()
	}
}
