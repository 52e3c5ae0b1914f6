package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireLeader blocks non-leader users. Resolving membership requests is a
// leader-only operation.
func RequireLeader() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return Unauthorized("User not found")
		}

		if !user.IsLeader {
			return Forbidden("Leader role required for this operation")
		}

		return c.Next()
	}
}
