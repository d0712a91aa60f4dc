package controllers

import (
	"github.com/gofiber/fiber/v2"

	"civic-reports/dto"
	mid "civic-reports/internal/middleware"
	"civic-reports/internal/models"
)

// FeedHandler godoc
// @Summary      Feed
// @Description  All reports newest first, cursor paginated
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query     int     false  "page size (default 20, max 100)"
// @Param        cursor  query     string  false  "next_cursor of the previous page"
// @Success      200     {object}  dto.PostPageResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      401     {object}  dto.ErrorResponse
// @Router       /posts [get]
func FeedHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		posts, next, err := s.FeedPage(c.Query("cursor"), c.QueryInt("limit"))
		if err != nil {
			return fail(c, s, err)
		}
		return c.JSON(dto.PostPageResponse{Posts: posts, NextCursor: next, HasMore: next != nil})
	}
}

// MyPostsHandler godoc
// @Summary      My reports
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "pending, working or solved"
// @Success      200     {array}   models.Post
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /posts/mine [get]
func MyPostsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		posts, err := s.Mine(models.PostStatus(c.Query("status")))
		if err != nil {
			return fail(c, s, err)
		}
		return c.JSON(posts)
	}
}

// MyCountsHandler godoc
// @Summary      Tab counts of my reports
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.StatusCounts
// @Router       /posts/mine/counts [get]
func MyCountsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		counts, err := s.Counts()
		if err != nil {
			return fail(c, s, err)
		}
		return c.JSON(counts)
	}
}

// CreatePostHandler godoc
// @Summary      Submit a report
// @Description  Title and content must not be blank. The post is created after a short delay and the session moves to home.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreatePostRequest  true  "report"
// @Param        wait  query     bool                   false "block until created"
// @Success      200   {object}  models.Post
// @Success      202   {object}  services.Snapshot
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /posts [post]
func CreatePostHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		var body dto.CreatePostRequest
		if err := c.BodyParser(&body); err != nil {
			return badBody(c)
		}
		t, err := s.Compose(body.Title, body.Content, body.Images)
		if err != nil {
			return fail(c, s, err)
		}
		return finish(c, s, t)
	}
}

// GetPostHandler godoc
// @Summary      One report
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        post_id  path      string  true  "post id"
// @Success      200      {object}  models.Post
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /posts/{post_id} [get]
func GetPostHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		p, err := s.Post(c.Params("post_id"))
		if err != nil {
			return fail(c, s, err)
		}
		return c.JSON(p)
	}
}

// UpdatePostHandler godoc
// @Summary      Edit a report
// @Description  Author only. Omitted fields stay unchanged; lastUpdatedAt moves forward.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        post_id  path      string                 true  "post id"
// @Param        body     body      dto.UpdatePostRequest  true  "fields"
// @Param        wait     query     bool                   false "block until saved"
// @Success      200      {object}  models.Post
// @Success      202      {object}  services.Snapshot
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /posts/{post_id} [put]
func UpdatePostHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		var body dto.UpdatePostRequest
		if err := c.BodyParser(&body); err != nil {
			return badBody(c)
		}
		t, err := s.Edit(c.Params("post_id"), models.PostFields{Title: body.Title, Content: body.Content})
		if err != nil {
			return fail(c, s, err)
		}
		return finish(c, s, t)
	}
}

// RequestDeleteHandler godoc
// @Summary      Ask to delete a report
// @Description  Opens the confirmation; nothing is removed until confirm-delete
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        post_id  path      string  true  "post id"
// @Success      200      {object}  models.Post
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /posts/{post_id} [delete]
func RequestDeleteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		p, err := s.RequestDelete(c.Params("post_id"))
		if err != nil {
			return fail(c, s, err)
		}
		return c.JSON(p)
	}
}

// ConfirmDeleteHandler godoc
// @Summary      Confirm deletion
// @Description  Deleting a post that is already gone still succeeds with deleted=false
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        post_id  path      string  true  "post id"
// @Success      200      {object}  dto.DeleteResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /posts/{post_id}/confirm-delete [post]
func ConfirmDeleteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		removed, err := s.ConfirmDelete(c.Params("post_id"))
		if err != nil {
			return fail(c, s, err)
		}
		return c.JSON(dto.DeleteResponse{Deleted: removed})
	}
}

// CancelDeleteHandler godoc
// @Summary      Close the delete confirmation
// @Tags         posts
// @Security     BearerAuth
// @Param        post_id  path  string  true  "post id"
// @Success      204
// @Router       /posts/{post_id}/cancel-delete [post]
func CancelDeleteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		s.CancelDelete()
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// SetStatusHandler godoc
// @Summary      Change report status
// @Description  Officers only; any status may follow any other
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        post_id  path      string             true  "post id"
// @Param        body     body      dto.StatusRequest  true  "new status"
// @Success      200      {object}  models.Post
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /posts/{post_id}/status [patch]
func SetStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		var body dto.StatusRequest
		if err := c.BodyParser(&body); err != nil {
			return badBody(c)
		}
		p, err := s.SetStatus(c.Params("post_id"), models.PostStatus(body.Status))
		if err != nil {
			return fail(c, s, err)
		}
		return c.JSON(p)
	}
}

// UpvoteHandler godoc
// @Summary      Toggle upvote
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        post_id  path      string  true  "post id"
// @Success      200      {object}  models.Post
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /posts/{post_id}/upvote [post]
func UpvoteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		p, err := s.ToggleUpvote(c.Params("post_id"))
		if err != nil {
			return fail(c, s, err)
		}
		return c.JSON(p)
	}
}

// RepostHandler godoc
// @Summary      Re-upload a solved report
// @Description  Creates a new pending report from one of your solved ones
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        post_id  path      string  true  "post id"
// @Success      201      {object}  models.Post
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /posts/{post_id}/repost [post]
func RepostHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := mid.StateFromLocals(c)
		if err != nil {
			return err
		}
		p, err := s.Repost(c.Params("post_id"))
		if err != nil {
			return fail(c, s, err)
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}
