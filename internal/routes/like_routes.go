package routes

import (
	"github.com/gofiber/fiber/v2"

	"blog-service/internal/handlers"
	"blog-service/internal/middleware"
)

func LikeRoutes(api fiber.Router, h *handlers.LikeHandler) {
	likes := api.Group("/:blogId/likes")

	likes.Post("/", middleware.RequireBearer(), h.Create)
	likes.Post("/toggle", middleware.RequireBearer(), h.Toggle)
	likes.Get("/me", middleware.RequireBearer(), h.Status)
	likes.Get("/count", h.Count)
	likes.Get("/", h.ListByBlog)
	likes.Delete("/:userId", h.Delete)
}
