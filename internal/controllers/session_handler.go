package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"civic-reports/dto"
	mid "civic-reports/internal/middleware"
	"civic-reports/internal/models"
	"civic-reports/internal/services"
)

func issueToken(c *fiber.Ctx, status int, secret string, ttl time.Duration, s *services.State) error {
	var id *models.Identity
	if ident, ok := s.Login.Identity(); ok {
		id = &ident
	}
	signed, exp, err := mid.SignToken(secret, ttl, s.ID, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "could not sign token"})
	}
	return c.Status(status).JSON(dto.TokenResponse{AccessToken: signed, SessionID: s.ID, ExpiresAt: exp})
}

// CreateSessionHandler godoc
// @Summary      Start a session
// @Description  Creates an anonymous in-memory session and returns the bearer token naming it
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  dto.TokenResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /sessions [post]
func CreateSessionHandler(store *services.SessionStore, secret string, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := store.Create()
		return issueToken(c, fiber.StatusCreated, secret, ttl, s)
	}
}

// RefreshTokenHandler godoc
// @Summary      Reissue the session token
// @Description  Returns a fresh token; after login it also carries uid and role
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.TokenResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /sessions/token [post]
func RefreshTokenHandler(secret string, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		return issueToken(c, fiber.StatusOK, secret, ttl, s)
	}
}

// DeleteSessionHandler godoc
// @Summary      End the session
// @Description  Drops the session and cancels its pending operations
// @Tags         sessions
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /sessions [delete]
func DeleteSessionHandler(store *services.SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid, err := mid.SessionIDFromLocals(c)
		if err != nil {
			return err
		}
		store.Delete(sid)
		return c.SendStatus(fiber.StatusNoContent)
	}
}
