package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"blog-service/dto"
	"blog-service/internal/apperr"
)

// ErrorHandler is the fiber app's single error boundary. Taxonomy errors
// keep their status and message; everything else becomes a generic 500
// so store and collaborator internals never reach the caller.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if ae := apperr.As(err); ae != nil {
		if ae.Kind == apperr.KindUpstream || ae.Kind == apperr.KindInternal {
			log.Printf("%s %s: %v", c.Method(), c.Path(), err)
		}
		return c.Status(ae.Status()).JSON(dto.Fail(ae.Message))
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.Fail(fe.Message))
	}

	log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("an error occurred on the server"))
}

// NotFoundHandler answers anything no route matched.
func NotFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.Fail("route not found"))
}
