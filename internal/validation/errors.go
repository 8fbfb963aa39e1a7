// Package validation holds the field-level error vocabulary shared by the
// compliance rules, the record lifecycle and the HTTP layer.
package validation

import (
	"errors"
	"fmt"
	"strings"
)

type Kind string

const (
	KindMissingMeasurement   Kind = "missing_measurement"
	KindOutOfRange           Kind = "out_of_range"
	KindMissingRequiredField Kind = "missing_required_field"
	KindMalformedValue       Kind = "malformed_value"
	KindUnknownBoxModel      Kind = "unknown_box_model"
	KindAlreadyFinalized     Kind = "already_finalized"
)

var (
	ErrUnknownBoxModel    = errors.New("unknown box model")
	ErrAlreadyFinalized   = errors.New("record already finalized")
	ErrMissingMeasurement = errors.New("measurement missing")
)

type FieldError struct {
	Field   string `json:"field"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors aggregates every problem found in one pass so an operator can fix
// them all in a single round trip.
type Errors []FieldError

func (e Errors) Error() string {
	messages := make([]string, 0, len(e))
	for _, fieldError := range e {
		messages = append(messages, fieldError.Error())
	}
	return strings.Join(messages, "; ")
}

func (e Errors) HasKind(kind Kind) bool {
	for _, fieldError := range e {
		if fieldError.Kind == kind {
			return true
		}
	}
	return false
}

func (e Errors) ForField(field string) []FieldError {
	var matches []FieldError
	for _, fieldError := range e {
		if fieldError.Field == field {
			matches = append(matches, fieldError)
		}
	}
	return matches
}

func Required(field string) FieldError {
	return FieldError{Field: field, Kind: KindMissingRequiredField, Message: "this field is required"}
}

func Malformed(field, message string) FieldError {
	return FieldError{Field: field, Kind: KindMalformedValue, Message: message}
}
