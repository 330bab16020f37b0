package middleware

import (
	"context"

	"homepage/internal/models"
	"homepage/internal/repository"
	"homepage/internal/session"

	"github.com/gofiber/fiber/v2"
)

const currentUserKey = "currentUser"

// Session resolves the acting user from the session cookie and stores it in
// Fiber locals. A missing, tampered, or expired token degrades to anonymous;
// so does a token whose user no longer resolves in the directory. Storage
// errors during the lookup fail the request rather than silently proceeding.
func Session(sessions *session.Manager, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(session.CookieName)
		if token == "" {
			return c.Next()
		}

		userID, err := sessions.Verify(token)
		if err != nil {
			// Fails open to anonymous, never to a forged identity.
			c.Cookie(sessions.ClearCookie())
			return c.Next()
		}

		user, err := users.GetByID(c.Context(), userID)
		if err != nil {
			return err
		}
		if user == nil {
			c.Cookie(sessions.ClearCookie())
			return c.Next()
		}

		c.Locals(currentUserKey, user)
		c.SetUserContext(context.WithValue(c.UserContext(), UsernameKey, user.Username))
		return c.Next()
	}
}

// CurrentUser returns the authenticated user for this request, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}

// LoginRequired gates a route: anonymous clients are redirected to the given
// target and the handler never runs, so gated side effects cannot happen.
func LoginRequired(redirectTo string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return c.Redirect(redirectTo, fiber.StatusSeeOther)
		}
		return c.Next()
	}
}
