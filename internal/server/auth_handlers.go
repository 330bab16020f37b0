package server

import (
	"log/slog"

	"homepage/internal/middleware"
	"homepage/internal/models"

	"github.com/gofiber/fiber/v2"
)

// LoginPage handles GET /login/ and renders the login form.
func (s *Server) LoginPage(c *fiber.Ctx) error {
	if middleware.CurrentUser(c) != nil {
		return c.Redirect("/comments", fiber.StatusSeeOther)
	}
	return c.Render("login", fiber.Map{
		"Title": "Log in",
		"Error": false,
	})
}

// Login handles POST /login/. On success it issues a session cookie and
// redirects to the guestbook; on bad credentials it re-renders the form with
// a generic error flag that never reveals which field was wrong.
func (s *Server) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	user, err := s.authService.Authenticate(c.Context(), username, password)
	if err != nil {
		if models.HasCode(err, "AUTHENTICATION") {
			middleware.Logger.InfoContext(c.UserContext(), "login rejected",
				slog.String("username", username))
			return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
				"Title": "Log in",
				"Error": true,
			})
		}
		return err
	}

	token, err := s.sessions.Issue(user)
	if err != nil {
		return models.NewInternalError(err)
	}
	c.Cookie(s.sessions.Cookie(token))

	middleware.Logger.InfoContext(c.UserContext(), "login succeeded",
		slog.String("username", user.Username))
	return c.Redirect("/comments", fiber.StatusSeeOther)
}

// Logout handles GET /logout/. The route is login-gated; it clears the
// session cookie and redirects to the guestbook.
func (s *Server) Logout(c *fiber.Ctx) error {
	c.Cookie(s.sessions.ClearCookie())
	return c.Redirect("/comments", fiber.StatusSeeOther)
}
