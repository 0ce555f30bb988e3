package routes

import (
	"github.com/gofiber/fiber/v2"

	"blog-service/internal/handlers"
)

type Deps struct {
	Blogs    *handlers.BlogHandler
	Comments *handlers.CommentHandler
	Likes    *handlers.LikeHandler
}

// Register mounts the whole blog API under /api/blogs. Static segments
// (/all, /comment) are registered before the /:id catch-all.
func Register(app *fiber.App, deps Deps) {
	api := app.Group("/api/blogs")

	CommentRoutes(api, deps.Comments)
	LikeRoutes(api, deps.Likes)
	BlogRoutes(api, deps.Blogs)
}
