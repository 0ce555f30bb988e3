package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"blog-service/internal/apperr"
)

// RequireBearer rejects requests without an Authorization header before
// any collaborator call is made. It only checks presence; whether the
// credential is any good is the identity resolver's job.
func RequireBearer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if strings.TrimSpace(c.Get(fiber.HeaderAuthorization)) == "" {
			return apperr.Forbidden("authentication required")
		}
		return c.Next()
	}
}
