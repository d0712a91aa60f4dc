package controllers

import (
	"github.com/gofiber/fiber/v2"

	"civic-reports/dto"
	mid "civic-reports/internal/middleware"
	"civic-reports/internal/models"
)

// GetLoginHandler godoc
// @Summary      Login wizard state
// @Tags         login
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.LoginState
// @Router       /login [get]
func GetLoginHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		return c.JSON(s.Snapshot().Login)
	}
}

// SelectRoleHandler godoc
// @Summary      Pick citizen or officer
// @Tags         login
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.RoleRequest  true  "role"
// @Success      200   {object}  models.LoginState
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /login/role [post]
func SelectRoleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		var body dto.RoleRequest
		if err := c.BodyParser(&body); err != nil {
			return badBody(c)
		}
		if err := s.Login.SelectRole(models.Role(body.Role)); err != nil {
			return fail(c, s, err)
		}
		return c.JSON(s.Snapshot().Login)
	}
}

// SetNameHandler godoc
// @Summary      Set the display name
// @Tags         login
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.NameRequest  true  "name"
// @Success      200   {object}  models.LoginState
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /login/name [post]
func SetNameHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		var body dto.NameRequest
		if err := c.BodyParser(&body); err != nil {
			return badBody(c)
		}
		if err := s.Login.SetName(body.Name); err != nil {
			return fail(c, s, err)
		}
		return c.JSON(s.Snapshot().Login)
	}
}

// SubmitCredentialHandler godoc
// @Summary      Send the verification code
// @Description  Accepts any 12-digit identifier. The code step opens after a short delay; pass wait=true to block until it does.
// @Tags         login
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CredentialRequest  true  "identifier"
// @Param        wait  query     bool                   false "block until sent"
// @Success      200   {object}  models.LoginState
// @Success      202   {object}  services.Snapshot
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /login/credential [post]
func SubmitCredentialHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		var body dto.CredentialRequest
		if err := c.BodyParser(&body); err != nil {
			return badBody(c)
		}
		t, err := s.Login.SubmitCredential(body.Credential)
		if err != nil {
			return fail(c, s, err)
		}
		return finish(c, s, t)
	}
}

// SubmitCodeHandler godoc
// @Summary      Verify the code
// @Description  Accepts any 6-digit code and signs the session in after a short delay
// @Tags         login
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CodeRequest  true  "code"
// @Param        wait  query     bool             false "block until verified"
// @Success      200   {object}  models.Identity
// @Success      202   {object}  services.Snapshot
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /login/code [post]
func SubmitCodeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		var body dto.CodeRequest
		if err := c.BodyParser(&body); err != nil {
			return badBody(c)
		}
		t, err := s.Login.SubmitCode(body.Code)
		if err != nil {
			return fail(c, s, err)
		}
		return finish(c, s, t)
	}
}

// LoginBackHandler godoc
// @Summary      Previous login step
// @Tags         login
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.LoginState
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /login/back [post]
func LoginBackHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		if err := s.Login.Back(); err != nil {
			return fail(c, s, err)
		}
		return c.JSON(s.Snapshot().Login)
	}
}

// LogoutHandler godoc
// @Summary      Log out
// @Description  Forgets the identity and municipality; the session itself stays
// @Tags         login
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  services.Snapshot
// @Router       /logout [post]
func LogoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		s.Logout()
		return c.JSON(s.Snapshot())
	}
}
