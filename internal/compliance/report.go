package compliance

import (
	"Coldbox/internal/validation"
)

const (
	FieldMedicineTemperature = "medicine_temperature"
	FieldIceTemperature      = "ice_temperature"
)

// Reading is the evaluation of one measured temperature.
type Reading struct {
	Field    string   `json:"field"`
	Value    *float64 `json:"value"`
	Range    Range    `json:"range"`
	Valid    bool     `json:"valid"`
	Message  string   `json:"message,omitempty"`
	Measured bool     `json:"measured"`
}

type Report struct {
	BoxModelID string  `json:"box_model"`
	Medicine   Reading `json:"medicine"`
	Ice        Reading `json:"ice"`
}

// Compliant is false whenever either reading is missing.
func (r Report) Compliant() bool {
	return r.Medicine.Valid && r.Ice.Valid
}

// Issues lists one field error per reading that is missing or out of range.
func (r Report) Issues() validation.Errors {
	var issues validation.Errors
	for _, reading := range []Reading{r.Medicine, r.Ice} {
		switch {
		case !reading.Measured:
			issues = append(issues, validation.FieldError{
				Field:   reading.Field,
				Kind:    validation.KindMissingMeasurement,
				Message: reading.Message,
			})
		case !reading.Valid:
			issues = append(issues, validation.FieldError{
				Field:   reading.Field,
				Kind:    validation.KindOutOfRange,
				Message: reading.Message,
			})
		}
	}
	return issues
}

// Evaluate checks both readings for boxModelID. A nil temperature is
// reported as a missing measurement and counts as invalid.
func Evaluate(boxModelID string, medicineTemp, iceTemp *float64) Report {
	return Report{
		BoxModelID: boxModelID,
		Medicine:   evaluateReading(FieldMedicineTemperature, AcceptableMedicineRange(boxModelID), medicineTemp),
		Ice:        evaluateReading(FieldIceTemperature, AcceptableIceRange(), iceTemp),
	}
}

func evaluateReading(field string, r Range, temp *float64) Reading {
	reading := Reading{Field: field, Value: temp, Range: r}
	if temp == nil {
		reading.Message = validation.ErrMissingMeasurement.Error()
		return reading
	}
	reading.Measured = true
	reading.Valid = r.Contains(*temp)
	if !reading.Valid {
		reading.Message = OutOfRangeMessage(r, *temp)
	}
	return reading
}
