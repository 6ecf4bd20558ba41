package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/wexa-dev/studio-api/pkg/util"
)

// RequireAdmin rejects callers without the admin role. Resource-ownership
// checks remain in the services; this guard only covers admin-only routes.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := UserFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if !user.IsAdmin() {
			return apperrors.NewForbidden("admin role required")
		}
		return c.Next()
	}
}
