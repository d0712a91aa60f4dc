package controllers

import (
	"github.com/gofiber/fiber/v2"

	"civic-reports/dto"
	mid "civic-reports/internal/middleware"
	"civic-reports/internal/models"
	"civic-reports/internal/repository"
)

// ListMunicipalitiesHandler godoc
// @Summary      Search municipalities
// @Description  Both filters must match; search looks at name and district, case-insensitive
// @Tags         municipalities
// @Produce      json
// @Security     BearerAuth
// @Param        state   query     string  false  "state"
// @Param        search  query     string  false  "name or district"
// @Success      200     {object}  dto.MunicipalityListResponse
// @Router       /municipalities [get]
func ListMunicipalitiesHandler(repo *repository.MunicipalityRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f := models.MunicipalityFilter{State: c.Query("state"), Search: c.Query("search")}
		return c.JSON(dto.MunicipalityListResponse{
			Municipalities: repo.List(f),
			States:         repo.States(),
		})
	}
}

// MunicipalityInfoHandler godoc
// @Summary      Municipality details
// @Description  Office contacts, service desks and departments in the session language. Use "active" for the chosen municipality.
// @Tags         municipalities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "municipality id"
// @Success      200  {object}  models.MunicipalityInfo
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /municipalities/{id}/info [get]
func MunicipalityInfoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		id := c.Params("id")
		if id == "active" {
			id = ""
		}
		info, err := s.MunicipalityInfo(id)
		if err != nil {
			return fail(c, s, err)
		}
		return c.JSON(info)
	}
}

// SelectMunicipalityHandler godoc
// @Summary      Stage a municipality
// @Tags         municipalities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.SelectMunicipalityRequest  true  "municipality id"
// @Success      200   {object}  services.Snapshot
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /municipalities/select [post]
func SelectMunicipalityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		var body dto.SelectMunicipalityRequest
		if err := c.BodyParser(&body); err != nil {
			return badBody(c)
		}
		if _, err := s.Municipality.Select(body.MunicipalityID); err != nil {
			return fail(c, s, err)
		}
		return c.JSON(s.Snapshot())
	}
}

// ConfirmMunicipalityHandler godoc
// @Summary      Confirm the staged municipality
// @Tags         municipalities
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  services.Snapshot
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /municipalities/confirm [post]
func ConfirmMunicipalityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		if _, err := s.Municipality.Confirm(); err != nil {
			return fail(c, s, err)
		}
		return c.JSON(s.Snapshot())
	}
}

// ChangeMunicipalityHandler godoc
// @Summary      Pick another municipality
// @Description  Clears the active municipality so the selection page shows again
// @Tags         municipalities
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  services.Snapshot
// @Router       /municipalities/change [post]
func ChangeMunicipalityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		s.Municipality.Change()
		return c.JSON(s.Snapshot())
	}
}
