package lifecycle

import (
	"Coldbox/internal/compliance"
	"Coldbox/internal/models"
	"Coldbox/internal/validation"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	FieldBoxModel      = "box_model"
	FieldOrderNumber   = "order_number"
	FieldPackagedOn    = "packaged_on"
	FieldLabelPhoto    = "label_photo"
	FieldMedicinePhoto = "medicine_photo"
	FieldIcePhoto      = "ice_photo"
	FieldOperator      = "operator"
	FieldSubmissionKey = "submission_key"

	MaxOrderNumberLength   = 50
	MaxOperatorLength      = 100
	MaxSubmissionKeyLength = 64
	TemperatureBound       = 50.0

	// precisionTolerance absorbs binary float error when checking that a
	// reading carries at most one fractional digit.
	precisionTolerance = 1e-6
)

// ValidateForPersistence reports every missing or malformed field of record.
// Temperatures outside their compliance range are not an error here; the
// submission layer decides whether those are rejected.
func ValidateForPersistence(record *models.ExchangeRecord) validation.Errors {
	var errs validation.Errors

	if strings.TrimSpace(record.BoxModelID) == "" {
		errs = append(errs, validation.Required(FieldBoxModel))
	}

	orderNumber := strings.TrimSpace(record.OrderNumber)
	switch {
	case orderNumber == "":
		errs = append(errs, validation.Required(FieldOrderNumber))
	case utf8.RuneCountInString(orderNumber) > MaxOrderNumberLength:
		errs = append(errs, validation.Malformed(FieldOrderNumber,
			fmt.Sprintf("must be at most %d characters", MaxOrderNumberLength)))
	}

	if record.PackagedOn.IsZero() {
		errs = append(errs, validation.Required(FieldPackagedOn))
	}

	for field, ref := range map[string]string{
		FieldLabelPhoto:    record.LabelPhoto,
		FieldMedicinePhoto: record.MedicinePhoto,
		FieldIcePhoto:      record.IcePhoto,
	} {
		if strings.TrimSpace(ref) == "" {
			errs = append(errs, validation.Required(field))
		}
	}

	errs = append(errs, checkTemperature(compliance.FieldMedicineTemperature, record.MedicineTemperature)...)
	errs = append(errs, checkTemperature(compliance.FieldIceTemperature, record.IceTemperature)...)

	if record.Operator != nil && utf8.RuneCountInString(*record.Operator) > MaxOperatorLength {
		errs = append(errs, validation.Malformed(FieldOperator,
			fmt.Sprintf("must be at most %d characters", MaxOperatorLength)))
	}

	if record.SubmissionKey != nil && len(*record.SubmissionKey) > MaxSubmissionKeyLength {
		errs = append(errs, validation.Malformed(FieldSubmissionKey,
			fmt.Sprintf("must be at most %d bytes", MaxSubmissionKeyLength)))
	}

	SortByField(errs)
	return errs
}

func checkTemperature(field string, temp *float64) validation.Errors {
	if temp == nil {
		return validation.Errors{{
			Field:   field,
			Kind:    validation.KindMissingMeasurement,
			Message: validation.ErrMissingMeasurement.Error(),
		}}
	}
	if math.IsNaN(*temp) || *temp < -TemperatureBound || *temp > TemperatureBound {
		return validation.Errors{validation.Malformed(field,
			fmt.Sprintf("must be between %.0f and %.0f", -TemperatureBound, TemperatureBound))}
	}
	if !HasOneDecimalPlace(*temp) {
		return validation.Errors{validation.Malformed(field, "must have at most one decimal place")}
	}
	return nil
}

// HasOneDecimalPlace reports whether v is stored without loss at the single
// fractional digit a reading is kept with. Readings are never rounded: -4.96
// is rejected rather than stored as a compliant -5.0.
func HasOneDecimalPlace(v float64) bool {
	return math.Abs(v*10-math.Round(v*10)) < precisionTolerance
}

// fieldOrder is the order of the exchange form.
var fieldOrder = []string{
	FieldBoxModel, FieldOrderNumber, FieldPackagedOn, FieldLabelPhoto,
	FieldMedicinePhoto, compliance.FieldMedicineTemperature,
	FieldIcePhoto, compliance.FieldIceTemperature, FieldOperator, FieldSubmissionKey,
}

// SortByField orders errs the way the fields appear on the exchange form.
func SortByField(errs validation.Errors) {
	position := make(map[string]int, len(fieldOrder))
	for i, field := range fieldOrder {
		position[field] = i
	}
	sort.SliceStable(errs, func(i, j int) bool {
		return position[errs[i].Field] < position[errs[j].Field]
	})
}
