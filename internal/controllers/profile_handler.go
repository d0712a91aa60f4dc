package controllers

import (
	"github.com/gofiber/fiber/v2"

	mid "civic-reports/internal/middleware"
)

// ProfileHandler godoc
// @Summary      Profile with report stats
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Profile
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /profile [get]
func ProfileHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		prof, err := s.Profile()
		if err != nil {
			return fail(c, s, err)
		}
		return c.JSON(prof)
	}
}

// DashboardHandler godoc
// @Summary      Officer dashboard totals
// @Description  Status counts for the active municipality, or all reports when none is chosen
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.StatusCounts
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /dashboard [get]
func DashboardHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		stats, err := s.Dashboard()
		if err != nil {
			return fail(c, s, err)
		}
		return c.JSON(stats)
	}
}
