package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"tasktrack/internal/session"
	"tasktrack/pkg/logger"
)

// RequireLogin gates a route on an authenticated session. On success the
// account id and session id are stored in Locals; otherwise the browser is
// sent to the login page.
func RequireLogin(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, sessionID, err := store.Resolve(c.Cookies(session.CookieName))
		if err != nil {
			logger.SecurityLogger.Warn("Unauthenticated request",
				zap.String("path", c.Path()), zap.String("ip", c.IP()))
			return c.Redirect("/login")
		}
		if accountID == 0 {
			// anonymous session, good enough for flashes but not for data
			return c.Redirect("/login")
		}
		c.Locals("accountID", accountID)
		c.Locals("sessionID", sessionID)
		return c.Next()
	}
}
