// Package compliance decides whether the temperatures read during an ice
// exchange are acceptable for the box model they were taken from. Every
// function here is pure; nothing is stored.
package compliance

import (
	"Coldbox/internal/catalog"
	"fmt"
	"strconv"
)

// Range is an inclusive temperature interval in degrees Celsius.
type Range struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

func (r Range) Contains(temp float64) bool {
	return r.Low <= temp && temp <= r.High
}

func (r Range) String() string {
	return fmt.Sprintf("%s°C to %s°C", formatCelsius(r.Low), formatCelsius(r.High))
}

var (
	standardMedicineRange = Range{Low: 2, High: 8}
	iceRange              = Range{Low: -9, High: -5}

	// Box models whose medicine tolerance differs from the standard one.
	medicineRangeOverrides = map[string]Range{
		catalog.PrecautionBoxModelID: {Low: 15, High: 25},
	}
)

func AcceptableMedicineRange(boxModelID string) Range {
	if r, ok := medicineRangeOverrides[boxModelID]; ok {
		return r
	}
	return standardMedicineRange
}

func IsMedicineTemperatureValid(boxModelID string, temp float64) bool {
	return AcceptableMedicineRange(boxModelID).Contains(temp)
}

func AcceptableIceRange() Range {
	return iceRange
}

func IsIceTemperatureValid(temp float64) bool {
	return iceRange.Contains(temp)
}

func IsFullyCompliant(boxModelID string, medicineTemp, iceTemp float64) bool {
	return IsMedicineTemperatureValid(boxModelID, medicineTemp) && IsIceTemperatureValid(iceTemp)
}

// OutOfRangeMessage is the operator-facing text for a rejected reading.
func OutOfRangeMessage(r Range, received float64) string {
	return fmt.Sprintf("expected between %s°C and %s°C, received %s°C",
		formatCelsius(r.Low), formatCelsius(r.High), formatCelsius(received))
}

func formatCelsius(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
