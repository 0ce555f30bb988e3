package routes

import (
	"github.com/gofiber/fiber/v2"

	"blog-service/internal/handlers"
	"blog-service/internal/middleware"
)

func BlogRoutes(api fiber.Router, h *handlers.BlogHandler) {
	api.Post("/", middleware.RequireBearer(), h.Create)
	api.Get("/", middleware.RequireBearer(), h.Feed)
	api.Get("/all", h.ListAll)
	api.Get("/:id", h.GetByID)
}
