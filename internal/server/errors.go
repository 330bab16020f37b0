package server

import (
	"errors"
	"log/slog"

	"homepage/internal/middleware"
	"homepage/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errorHandler renders a user-visible failure page for errors that escape the
// handlers. Storage failures must surface here rather than redirect: silently
// dropping a write would hide a lost comment from the poster.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Something went wrong."

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "VALIDATION_ERROR":
			status = fiber.StatusBadRequest
			message = appErr.Message
		case "UNAUTHORIZED":
			status = fiber.StatusUnauthorized
			message = appErr.Message
		case "STORAGE_ERROR":
			message = "The site could not save or load data. Please try again later."
		}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
		message = fiberErr.Message
	}

	middleware.Logger.ErrorContext(c.UserContext(), "request error",
		slog.Int("status", status),
		slog.String("error", err.Error()),
	)

	if renderErr := c.Status(status).Render("error", fiber.Map{
		"Title":   "Error",
		"Status":  status,
		"Message": message,
	}); renderErr != nil {
		return c.Status(status).SendString(message)
	}
	return nil
}
