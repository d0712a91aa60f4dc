package controllers

import (
	"github.com/gofiber/fiber/v2"

	"civic-reports/dto"
	"civic-reports/internal/i18n"
	mid "civic-reports/internal/middleware"
	"civic-reports/internal/models"
)

// GetStateHandler godoc
// @Summary      Current session state
// @Description  Effective page, login progress, municipality, locale and in-flight flags
// @Tags         state
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  services.Snapshot
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /state [get]
func GetStateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		return c.JSON(s.Snapshot())
	}
}

// NavigateHandler godoc
// @Summary      Change page
// @Description  Stores the requested page. Leaving a page cancels a pending compose or edit.
// @Tags         state
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.NavigateRequest  true  "target page"
// @Success      200   {object}  services.Snapshot
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /navigate [post]
func NavigateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		var body dto.NavigateRequest
		if err := c.BodyParser(&body); err != nil {
			return badBody(c)
		}
		if err := s.Navigate(models.Page(body.Page)); err != nil {
			return fail(c, s, err)
		}
		return c.JSON(s.Snapshot())
	}
}

// GetI18nHandler godoc
// @Summary      Dictionary of the session locale
// @Tags         i18n
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.I18nResponse
// @Router       /i18n [get]
func GetI18nHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		l := s.Locale.Locale()
		return c.JSON(dto.I18nResponse{Locale: string(l), Messages: i18n.Dictionary(l)})
	}
}

// TranslateHandler godoc
// @Summary      Translate one key
// @Description  Unknown keys come back unchanged
// @Tags         i18n
// @Produce      json
// @Security     BearerAuth
// @Param        key  path      string  true  "message key"
// @Success      200  {object}  dto.TranslationResponse
// @Router       /i18n/{key} [get]
func TranslateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		key := c.Params("key")
		return c.JSON(dto.TranslationResponse{Key: key, Value: s.T(key)})
	}
}

// SetLocaleHandler godoc
// @Summary      Switch language
// @Tags         i18n
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.LocaleRequest  true  "en or hi"
// @Success      200   {object}  services.Snapshot
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /locale [put]
func SetLocaleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		var body dto.LocaleRequest
		if err := c.BodyParser(&body); err != nil {
			return badBody(c)
		}
		l, err := i18n.ParseLocale(body.Locale)
		if err != nil {
			return fail(c, s, err)
		}
		if err := s.SetLocale(l); err != nil {
			return fail(c, s, err)
		}
		return c.JSON(s.Snapshot())
	}
}
