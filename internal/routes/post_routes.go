package routes

import (
	"github.com/gofiber/fiber/v2"

	"civic-reports/internal/controllers"
)

func SetupPosts(app *fiber.App) {
	post := app.Group("/posts")

	post.Get("/", controllers.FeedHandler())
	post.Post("/", controllers.CreatePostHandler())
	// curl -X POST "http://127.0.0.1:8000/posts?wait=true" \
	// -H "Authorization: Bearer $TOKEN" -H "Content-Type: application/json" \
	// -d '{"title": "Pothole on Main Street", "content": "Large pothole near the market #roads"}'

	// mine must come before :post_id
	post.Get("/mine", controllers.MyPostsHandler())
	post.Get("/mine/counts", controllers.MyCountsHandler())

	post.Get("/:post_id", controllers.GetPostHandler())
	post.Put("/:post_id", controllers.UpdatePostHandler())
	post.Delete("/:post_id", controllers.RequestDeleteHandler())
	post.Post("/:post_id/confirm-delete", controllers.ConfirmDeleteHandler())
	post.Post("/:post_id/cancel-delete", controllers.CancelDeleteHandler())
	post.Patch("/:post_id/status", controllers.SetStatusHandler())
	post.Post("/:post_id/upvote", controllers.UpvoteHandler())
	post.Post("/:post_id/repost", controllers.RepostHandler())

	post.Get("/:post_id/comments", controllers.ListCommentsHandler())
	post.Post("/:post_id/comments", controllers.CreateCommentHandler())
}
