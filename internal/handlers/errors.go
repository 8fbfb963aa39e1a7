package handlers

import (
	"Coldbox/internal/repository"
	"Coldbox/internal/validation"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// respondError maps service errors onto the API's status codes.
func respondError(c *fiber.Ctx, err error) error {
	var fieldErrors validation.Errors
	switch {
	case errors.As(err, &fieldErrors):
		return c.Status(http.StatusUnprocessableEntity).JSON(map[string]interface{}{
			"error":  "validation failed",
			"errors": fieldErrors,
		})
	case errors.Is(err, validation.ErrUnknownBoxModel):
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{
			"error": err.Error(),
			"kind":  validation.KindUnknownBoxModel,
		})
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": "not found"})
	default:
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
}
