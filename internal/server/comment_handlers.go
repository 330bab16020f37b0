package server

import (
	"homepage/internal/middleware"
	"homepage/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListComments handles GET /comments and renders the guestbook in insertion
// order with timestamps converted to the display timezone.
func (s *Server) ListComments(c *fiber.Ctx) error {
	views, err := s.commentService.ListForDisplay(c.Context(), s.config.DisplayLocation())
	if err != nil {
		return err
	}

	return c.Render("comments", fiber.Map{
		"Title":         "Guestbook",
		"User":          middleware.CurrentUser(c),
		"Comments":      views,
		"LoginRequired": c.Query("error") == "login",
	})
}

// CreateComment handles POST /comments. The route is login-gated, so the
// author is always present here. Invalid content re-renders the guestbook
// with the validation message and nothing is persisted.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	_, err := s.commentService.CreateComment(c.Context(), c.FormValue("contents"), user)
	if err != nil {
		if models.IsValidationError(err) {
			views, listErr := s.commentService.ListForDisplay(c.Context(), s.config.DisplayLocation())
			if listErr != nil {
				return listErr
			}
			return c.Status(fiber.StatusBadRequest).Render("comments", fiber.Map{
				"Title":           "Guestbook",
				"User":            user,
				"Comments":        views,
				"ValidationError": err.Error(),
			})
		}
		return err
	}

	return c.Redirect("/comments", fiber.StatusSeeOther)
}
