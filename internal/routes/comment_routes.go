package routes

import (
	"github.com/gofiber/fiber/v2"

	"blog-service/internal/handlers"
	"blog-service/internal/middleware"
)

func CommentRoutes(api fiber.Router, h *handlers.CommentHandler) {
	comments := api.Group("/comment")

	comments.Post("/", middleware.RequireBearer(), h.Create)
	comments.Get("/:blogId", h.ListByBlog)
	comments.Put("/:commentId", middleware.RequireBearer(), h.Update)
	comments.Delete("/:commentId", middleware.RequireBearer(), h.Delete)
}
