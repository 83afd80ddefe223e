package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/tolaram/sapkb/pkg/response"
	"github.com/tolaram/sapkb/pkg/utils"
)

const loginPath = "/login"

// SessionAuthMiddleware gates every page behind the session cookie.
// Browser requests without a session are redirected to the login page;
// API callers get a 401 envelope. On success the signed-in user's
// identity is copied into request locals for handlers and the role
// policy.
func SessionAuthMiddleware(store *session.Store) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(response.NewAuthorizationError())
		}

		userID, ok := sess.Get(utils.SessionUserIDKey).(int64)
		if !ok || userID == 0 {
			if acceptsHTML(c) {
				return c.Redirect(loginPath, fiber.StatusFound)
			}
			return c.Status(fiber.StatusUnauthorized).JSON(response.NewAuthorizationError())
		}

		c.Locals(utils.SessionUserIDKey, userID)
		c.Locals(utils.SessionUserEmailKey, sess.Get(utils.SessionUserEmailKey))
		c.Locals(utils.SessionUserNameKey, sess.Get(utils.SessionUserNameKey))
		c.Locals(utils.SessionUserRoleKey, sess.Get(utils.SessionUserRoleKey))

		return c.Next()
	}
}

func acceptsHTML(c *fiber.Ctx) bool {
	return strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMETextHTML)
}
