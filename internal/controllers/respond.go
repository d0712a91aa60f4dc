package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"civic-reports/dto"
	"civic-reports/internal/cursor"
	"civic-reports/internal/i18n"
	"civic-reports/internal/repository"
	"civic-reports/internal/services"
	"civic-reports/internal/task"
)

// waitTimeout bounds how long ?wait=true holds a request open.
const waitTimeout = 10 * time.Second

func statusFor(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, services.ErrSessionNotFound),
		errors.Is(err, services.ErrNotAuthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, repository.ErrPostNotFound),
		errors.Is(err, repository.ErrMunicipalityNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrBusy),
		errors.Is(err, services.ErrWrongStep),
		errors.Is(err, services.ErrNoDeleteRequest),
		errors.Is(err, repository.ErrNotSolved),
		errors.Is(err, context.Canceled):
		return fiber.StatusConflict
	case errors.Is(err, repository.ErrBlankTitle),
		errors.Is(err, repository.ErrBlankContent),
		errors.Is(err, repository.ErrBlankComment),
		errors.Is(err, repository.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrInvalidCredential),
		errors.Is(err, services.ErrInvalidCode),
		errors.Is(err, services.ErrUnknownPage),
		errors.Is(err, services.ErrNothingStaged),
		errors.Is(err, services.ErrNoActiveMunicipality),
		errors.Is(err, i18n.ErrUnsupportedLocale),
		errors.Is(err, cursor.ErrInvalidCursor):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// fail writes err as dto.ErrorResponse, in the session's language when s
// is known.
func fail(c *fiber.Ctx, s *services.State, err error) error {
	msg := err.Error()
	if s != nil {
		msg = services.Localize(err, s.T)
	}
	return c.Status(statusFor(err)).JSON(dto.ErrorResponse{Error: msg})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
}

// finish answers a delayed operation. Without ?wait=true it returns 202 and
// the session snapshot right away; with it, the task result once done.
func finish[T any](c *fiber.Ctx, s *services.State, t *task.Task[T]) error {
	if !c.QueryBool("wait") {
		return c.Status(fiber.StatusAccepted).JSON(s.Snapshot())
	}
	ctx, cancel := context.WithTimeout(c.UserContext(), waitTimeout)
	defer cancel()

	v, err := t.Wait(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && t.Pending() {
			return c.Status(fiber.StatusAccepted).JSON(s.Snapshot())
		}
		return fail(c, s, err)
	}
	return c.JSON(v)
}

// ErrorHandler renders errors returned by handlers and middleware as
// dto.ErrorResponse.
func ErrorHandler(c *fiber.Ctx, err error) error {
	s, _ := c.Locals("state").(*services.State)
	return fail(c, s, err)
}
