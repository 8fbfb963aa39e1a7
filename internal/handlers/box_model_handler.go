package handlers

import (
	"Coldbox/internal/compliance"
	"Coldbox/internal/services"
	"Coldbox/internal/validation"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type BoxModelHandler struct {
	boxModelService services.BoxModelService
	exchangeService services.ExchangeService
}

func NewBoxModelHandler(boxModelService services.BoxModelService, exchangeService services.ExchangeService) *BoxModelHandler {
	return &BoxModelHandler{boxModelService: boxModelService, exchangeService: exchangeService}
}

func (h *BoxModelHandler) ListBoxModels(c *fiber.Ctx) error {
	boxModels, err := h.boxModelService.GetBoxModels(c.UserContext())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not list box models"})
	}
	return c.JSON(boxModels)
}

func (h *BoxModelHandler) GetBoxModel(c *fiber.Ctx) error {
	boxModel, err := h.boxModelService.Describe(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, validation.ErrUnknownBoxModel) {
			return c.Status(http.StatusNotFound).JSON(map[string]interface{}{"error": err.Error()})
		}
		return respondError(c, err)
	}
	return c.JSON(boxModel)
}

// CheckCompliance evaluates readings without storing anything, so a form can
// warn before it is submitted.
func (h *BoxModelHandler) CheckCompliance(c *fiber.Ctx) error {
	medicineTemp, err := parseTemperature(c.Query("medicine"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid medicine temperature"})
	}
	iceTemp, err := parseTemperature(c.Query("ice"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid ice temperature"})
	}

	report, err := h.exchangeService.CheckCompliance(c.UserContext(), c.Query("box_model"), medicineTemp, iceTemp)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(complianceResponse{Report: report, Compliant: report.Compliant(), Issues: report.Issues()})
}

type complianceResponse struct {
	compliance.Report
	Compliant bool              `json:"compliant"`
	Issues    validation.Errors `json:"issues"`
}
