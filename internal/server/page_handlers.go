package server

import (
	"homepage/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// renderPage renders one of the static informational views with the shared bindings.
func renderPage(c *fiber.Ctx, name, title string) error {
	return c.Render(name, fiber.Map{
		"Title": title,
		"User":  middleware.CurrentUser(c),
	})
}

// Home handles GET /.
func (s *Server) Home(c *fiber.Ctx) error {
	return renderPage(c, "index", "Home")
}

// Skills handles GET /skills/.
func (s *Server) Skills(c *fiber.Ctx) error {
	return renderPage(c, "skills", "Skills")
}

// Projects handles GET /projects/.
func (s *Server) Projects(c *fiber.Ctx) error {
	return renderPage(c, "projects", "Projects")
}

// Education handles GET /education/.
func (s *Server) Education(c *fiber.Ctx) error {
	return renderPage(c, "education", "Education")
}

// Experience handles GET /experience/.
func (s *Server) Experience(c *fiber.Ctx) error {
	return renderPage(c, "experience", "Experience")
}
