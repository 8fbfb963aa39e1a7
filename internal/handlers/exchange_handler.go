package handlers

import (
	"Coldbox/internal/compliance"
	"Coldbox/internal/lifecycle"
	"Coldbox/internal/mapper"
	"Coldbox/internal/repository"
	"Coldbox/internal/services"
	"Coldbox/internal/validation"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type ExchangeHandler struct {
	service services.ExchangeService
}

func NewExchangeHandler(service services.ExchangeService) *ExchangeHandler {
	return &ExchangeHandler{service: service}
}

func (h *ExchangeHandler) CreateExchange(c *fiber.Ctx) error {
	var parseErrors validation.Errors

	medicineTemp, err := parseTemperature(c.FormValue(compliance.FieldMedicineTemperature))
	if err != nil {
		parseErrors = append(parseErrors, validation.Malformed(compliance.FieldMedicineTemperature, "must be a number"))
	}
	iceTemp, err := parseTemperature(c.FormValue(compliance.FieldIceTemperature))
	if err != nil {
		parseErrors = append(parseErrors, validation.Malformed(compliance.FieldIceTemperature, "must be a number"))
	}
	packagedOn, err := parseDate(c.FormValue(lifecycle.FieldPackagedOn))
	if err != nil {
		parseErrors = append(parseErrors, validation.Malformed(lifecycle.FieldPackagedOn, "must be a date (YYYY-MM-DD)"))
	}

	submission := services.Submission{
		BoxModelID:          c.FormValue(lifecycle.FieldBoxModel),
		OrderNumber:         c.FormValue(lifecycle.FieldOrderNumber),
		MedicineTemperature: medicineTemp,
		IceTemperature:      iceTemp,
		Operator:            optional(c.FormValue(lifecycle.FieldOperator)),
		SubmissionKey:       optional(c.FormValue(lifecycle.FieldSubmissionKey)),
		LabelPhoto:          formFile(c, lifecycle.FieldLabelPhoto),
		MedicinePhoto:       formFile(c, lifecycle.FieldMedicinePhoto),
		IcePhoto:            formFile(c, lifecycle.FieldIcePhoto),
	}
	if packagedOn != nil {
		submission.PackagedOn = *packagedOn
	}

	result, err := h.service.Submit(c.UserContext(), submission)
	if err != nil {
		return respondError(c, mergeParseErrors(err, parseErrors))
	}

	status := http.StatusCreated
	if result.Duplicate {
		status = http.StatusOK
	}
	return c.Status(status).JSON(mapper.ToExchangeRecordDTO(result.Record))
}

func (h *ExchangeHandler) ListExchanges(c *fiber.Ctx) error {
	from, err := parseDate(c.Query("packaged_from"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid packaged_from"})
	}
	to, err := parseDate(c.Query("packaged_to"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid packaged_to"})
	}

	records, err := h.service.ListExchanges(c.UserContext(), repository.ExchangeFilter{
		BoxModelID:   c.Query("box_model"),
		PackagedFrom: from,
		PackagedTo:   to,
		Search:       c.Query("q"),
	})
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": "could not list exchanges"})
	}
	return c.JSON(mapper.ToExchangeRecordDTOs(records))
}

func (h *ExchangeHandler) GetExchange(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid exchange ID"})
	}

	record, err := h.service.GetExchange(c.UserContext(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mapper.ToExchangeRecordDTO(record))
}

// UpdateOperator is the only change allowed on a stored record.
func (h *ExchangeHandler) UpdateOperator(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid exchange ID"})
	}

	var req struct {
		Operator *string `json:"operator"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	record, err := h.service.UpdateOperator(c.UserContext(), uint(id), req.Operator)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mapper.ToExchangeRecordDTO(record))
}

func formFile(c *fiber.Ctx, field string) *multipart.FileHeader {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	return fileHeader
}

// mergeParseErrors replaces what the service reported for unparsable fields
// with the parse error itself.
func mergeParseErrors(err error, parseErrors validation.Errors) error {
	if len(parseErrors) == 0 {
		return err
	}
	var fieldErrors validation.Errors
	if !errors.As(err, &fieldErrors) {
		return err
	}
	merged := append(validation.Errors{}, parseErrors...)
	for _, fieldError := range fieldErrors {
		if len(parseErrors.ForField(fieldError.Field)) == 0 {
			merged = append(merged, fieldError)
		}
	}
	lifecycle.SortByField(merged)
	return merged
}
