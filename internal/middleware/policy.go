package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tolaram/sapkb/pkg/response"
	"github.com/tolaram/sapkb/pkg/utils"
)

// RequireRole authorizes an action by the caller's role. It is applied
// at route registration so every mutating operation passes through the
// same policy check regardless of which page triggered it.
func RequireRole(role string) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		callerRole, _ := c.Locals(utils.SessionUserRoleKey).(string)
		if callerRole != role {
			return c.Status(fiber.StatusForbidden).JSON(response.NewForbiddenError())
		}

		return c.Next()
	}
}
