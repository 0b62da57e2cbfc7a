package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/lisamayiya/capaciti-talent-showcase/internal/db"
	"github.com/lisamayiya/capaciti-talent-showcase/internal/validation"
)

// jsonSuccess returns a 200 response with data wrapped in the standard envelope.
func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"data":   data,
	})
}

// jsonCreated returns a 201 response with data wrapped in the standard envelope.
func jsonCreated(c fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "ok",
		"data":   data,
	})
}

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}

// jsonValidationError returns a 422 response listing the rejected fields.
func jsonValidationError(c fiber.Ctx, verr *validation.ValidationError) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"status": "error",
		"error":  verr.Error(),
		"fields": verr.Fields,
	})
}

// jsonRepoError maps a repository error onto a response. action names the
// failed operation in the 500 message.
func jsonRepoError(c fiber.Ctx, err error, action string) error {
	var verr *validation.ValidationError
	switch {
	case errors.As(err, &verr):
		return jsonValidationError(c, verr)
	case db.IsNotFound(err):
		return jsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, db.ErrInvalidTransition):
		return jsonError(c, fiber.StatusConflict, err.Error())
	}

	slog.Error("request failed", "action", action, "path", c.Path(), "error", err)
	return jsonError(c, fiber.StatusInternalServerError, "failed to "+action)
}
