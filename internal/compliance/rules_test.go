package compliance

import (
	"Coldbox/internal/catalog"
	"Coldbox/internal/validation"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestAcceptableMedicineRange(t *testing.T) {
	for _, boxModel := range catalog.All() {
		t.Run(boxModel.ID, func(t *testing.T) {
			r := AcceptableMedicineRange(boxModel.ID)
			if boxModel.ID == catalog.PrecautionBoxModelID {
				assert.Equal(t, Range{Low: 15, High: 25}, r)
				return
			}
			assert.Equal(t, Range{Low: 2, High: 8}, r)
		})
	}
}

func TestIsMedicineTemperatureValid_Boundaries(t *testing.T) {
	tests := []struct {
		name       string
		boxModelID string
		temp       float64
		expected   bool
	}{
		{"standard low boundary", "12L_IF2000", 2.0, true},
		{"standard high boundary", "12L_IF2000", 8.0, true},
		{"standard below low", "12L_IF2000", 1.0, false},
		{"standard above high", "12L_IF2000", 9.0, false},
		{"standard just above high", "44L_IT1050", 8.1, false},
		{"precaution low boundary", catalog.PrecautionBoxModelID, 15.0, true},
		{"precaution high boundary", catalog.PrecautionBoxModelID, 25.0, true},
		{"precaution below low", catalog.PrecautionBoxModelID, 14.0, false},
		{"precaution above high", catalog.PrecautionBoxModelID, 26.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsMedicineTemperatureValid(tt.boxModelID, tt.temp))
		})
	}
}

func TestIsIceTemperatureValid(t *testing.T) {
	assert.Equal(t, Range{Low: -9, High: -5}, AcceptableIceRange())
	assert.True(t, IsIceTemperatureValid(-9.0))
	assert.True(t, IsIceTemperatureValid(-5.0))
	assert.True(t, IsIceTemperatureValid(-7.0))
	assert.False(t, IsIceTemperatureValid(-9.1))
	assert.False(t, IsIceTemperatureValid(-4.9))
}

func TestIsFullyCompliant_TruthTable(t *testing.T) {
	const boxModelID = "80L_IT1050"
	tests := []struct {
		medicine float64
		ice      float64
		expected bool
	}{
		{5.0, -7.0, true},
		{5.0, -3.0, false},
		{12.0, -7.0, false},
		{12.0, -3.0, false},
	}

	for _, tt := range tests {
		assert.Equal(t, IsMedicineTemperatureValid(boxModelID, tt.medicine), tt.medicine == 5.0)
		assert.Equal(t, IsIceTemperatureValid(tt.ice), tt.ice == -7.0)
		assert.Equal(t, tt.expected, IsFullyCompliant(boxModelID, tt.medicine, tt.ice),
			"medicine=%v ice=%v", tt.medicine, tt.ice)
	}
}

func TestIsFullyCompliant_Scenarios(t *testing.T) {
	assert.True(t, IsFullyCompliant("12L_IT1050", 5.0, -7.0))

	assert.True(t, IsFullyCompliant(catalog.PrecautionBoxModelID, 20.0, -7.0))
	assert.False(t, IsMedicineTemperatureValid("12L_IT1050", 20.0))
	assert.False(t, IsFullyCompliant("12L_IT1050", 20.0, -7.0))
}

func TestOutOfRangeMessage(t *testing.T) {
	msg := OutOfRangeMessage(AcceptableMedicineRange("12L_IF2000"), 9.5)
	assert.Equal(t, "expected between 2°C and 8°C, received 9.5°C", msg)

	msg = OutOfRangeMessage(AcceptableIceRange(), -4)
	assert.Equal(t, "expected between -9°C and -5°C, received -4°C", msg)
}

func TestRange_String(t *testing.T) {
	assert.Equal(t, "15°C to 25°C", AcceptableMedicineRange(catalog.PrecautionBoxModelID).String())
}

func TestEvaluate(t *testing.T) {
	t.Run("compliant", func(t *testing.T) {
		report := Evaluate("12L_IF2000", ptr(5.0), ptr(-7.0))
		assert.True(t, report.Compliant())
		assert.Empty(t, report.Issues())
	})

	t.Run("out of range medicine embeds range", func(t *testing.T) {
		report := Evaluate("12L_IF2000", ptr(9.5), ptr(-7.0))
		assert.False(t, report.Compliant())
		issues := report.Issues()
		assert.Len(t, issues, 1)
		assert.Equal(t, FieldMedicineTemperature, issues[0].Field)
		assert.Equal(t, validation.KindOutOfRange, issues[0].Kind)
		assert.Equal(t, "expected between 2°C and 8°C, received 9.5°C", issues[0].Message)
	})

	t.Run("missing measurement is invalid", func(t *testing.T) {
		report := Evaluate("12L_IF2000", ptr(5.0), nil)
		assert.False(t, report.Compliant())
		assert.False(t, report.Ice.Measured)
		issues := report.Issues()
		assert.Len(t, issues, 1)
		assert.Equal(t, FieldIceTemperature, issues[0].Field)
		assert.Equal(t, validation.KindMissingMeasurement, issues[0].Kind)
	})
}
