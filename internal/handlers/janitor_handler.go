package handlers

import (
	"Coldbox/internal/services"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type JanitorHandler struct {
	janitor *services.Janitor
}

func NewJanitorHandler(janitor *services.Janitor) *JanitorHandler {
	return &JanitorHandler{janitor: janitor}
}

func (h *JanitorHandler) ForceClean(c *fiber.Ctx) error {
	err := h.janitor.ForceStartCleanCycle()
	if errors.Is(err, services.ErrCleaningInProgress) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{})
}
