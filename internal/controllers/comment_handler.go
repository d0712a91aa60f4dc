package controllers

import (
	"github.com/gofiber/fiber/v2"

	"civic-reports/dto"
	mid "civic-reports/internal/middleware"
)

// ListCommentsHandler godoc
// @Summary      Comments of a report
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        post_id  path      string  true  "post id"
// @Success      200      {object}  dto.ListCommentsResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /posts/{post_id}/comments [get]
func ListCommentsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		comments, err := s.Comments(c.Params("post_id"))
		if err != nil {
			return fail(c, s, err)
		}
		return c.JSON(dto.ListCommentsResponse{Comments: comments})
	}
}

// CreateCommentHandler godoc
// @Summary      Comment on a report
// @Description  Profanity in the text is masked
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        post_id  path      string                    true  "post id"
// @Param        body     body      dto.CreateCommentRequest  true  "comment"
// @Success      201      {object}  models.Comment
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /posts/{post_id}/comments [post]
func CreateCommentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		var body dto.CreateCommentRequest
		if err := c.BodyParser(&body); err != nil {
			return badBody(c)
		}
		cm, err := s.Comment(c.Params("post_id"), body.Text)
		if err != nil {
			return fail(c, s, err)
		}
		return c.Status(fiber.StatusCreated).JSON(cm)
	}
}
