package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"landing_backend/pkg/config"
)

// SessionUserKey is the session attribute written by the login flow, and the
// Locals key under which the gate exposes it.
const SessionUserKey = "user"

// NewSessionStore builds the session store shared with the login flow. A nil
// storage keeps sessions in process memory.
func NewSessionStore(cfg config.SessionConfig, storage fiber.Storage) *session.Store {
	return session.New(session.Config{
		Expiration:     cfg.TTL,
		Storage:        storage,
		KeyLookup:      "cookie:session_id",
		CookieSecure:   cfg.CookieSecure,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}

// RequireSession lets the request through only when the session carries a user.
// Anonymous callers are redirected to redirectTo.
func RequireSession(store *session.Store, redirectTo string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return err
		}

		user := sess.Get(SessionUserKey)
		if user == nil || fmt.Sprint(user) == "" {
			return c.Redirect(redirectTo, fiber.StatusFound)
		}

		c.Locals(SessionUserKey, fmt.Sprint(user))
		return c.Next()
	}
}

// SessionUser returns the user id set by RequireSession.
func SessionUser(c *fiber.Ctx) string {
	user, _ := c.Locals(SessionUserKey).(string)
	return user
}
