package lifecycle

import (
	"Coldbox/internal/compliance"
	"Coldbox/internal/models"
	"Coldbox/internal/validation"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func temp(v float64) *float64 { return &v }

func completeRecord() *models.ExchangeRecord {
	return &models.ExchangeRecord{
		BoxModelID:          "12L_IF2000",
		OrderNumber:         "PED-2026-001",
		PackagedOn:          time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC),
		LabelPhoto:          "exchanges/label/a.jpg",
		MedicinePhoto:       "exchanges/medicine_temperature/b.jpg",
		IcePhoto:            "exchanges/ice_temperature/c.jpg",
		MedicineTemperature: temp(5.0),
		IceTemperature:      temp(-7.0),
		State:               models.StateDraft,
	}
}

func TestFinalize_UsesClock(t *testing.T) {
	at := time.Date(2026, 10, 16, 14, 30, 0, 0, time.UTC)
	l := NewLifecycle(FixedClock{At: at})
	record := completeRecord()

	stamp, applied := l.Finalize(record)

	assert.True(t, applied)
	assert.Equal(t, at, stamp.FinalizedAt)
	assert.Equal(t, at.Add(-20*time.Minute), stamp.AcclimationStartedAt)
	assert.Equal(t, models.StateFinalized, record.State)
	assert.Equal(t, at, record.FinalizedAt)
	assert.Equal(t, at.Add(-20*time.Minute), record.AcclimationStartedAt)
}

func TestFinalize_IsIdempotent(t *testing.T) {
	first := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	l := NewLifecycle(FixedClock{At: first})
	record := completeRecord()

	stamp1, applied1 := l.Finalize(record)
	stamp2, applied2 := l.FinalizeAt(record, first.Add(3*time.Hour))

	assert.True(t, applied1)
	assert.False(t, applied2)
	assert.Equal(t, stamp1, stamp2)
	assert.Equal(t, first, record.FinalizedAt)
	assert.Equal(t, first.Add(-AcclimationWindow), record.AcclimationStartedAt)
}

func TestFinalizeAt_AcrossDayBoundary(t *testing.T) {
	l := NewLifecycle(NewSystemClock())
	reference := time.Date(2026, 1, 1, 0, 10, 0, 0, time.UTC)
	record := completeRecord()

	stamp, applied := l.FinalizeAt(record, reference)

	require.True(t, applied)
	assert.Equal(t, time.Date(2025, 12, 31, 23, 50, 0, 0, time.UTC), stamp.AcclimationStartedAt)
	assert.Equal(t, 20*time.Minute, stamp.FinalizedAt.Sub(stamp.AcclimationStartedAt))
}

func TestFinalize_ConcurrentAttemptsKeepFirstStamp(t *testing.T) {
	l := NewLifecycle(NewSystemClock())
	record := completeRecord()
	base := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	var mu sync.Mutex
	applied := 0
	stamps := make([]Stamp, 0, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			stamp, ok := l.FinalizeAt(record, base.Add(time.Duration(i)*time.Minute))
			mu.Lock()
			defer mu.Unlock()
			if ok {
				applied++
			}
			stamps = append(stamps, stamp)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, applied)
	for _, stamp := range stamps {
		assert.Equal(t, record.FinalizedAt, stamp.FinalizedAt)
		assert.Equal(t, record.FinalizedAt.Add(-AcclimationWindow), stamp.AcclimationStartedAt)
	}
}

func TestValidateForPersistence_Complete(t *testing.T) {
	assert.Empty(t, ValidateForPersistence(completeRecord()))
}

func TestValidateForPersistence_MissingIcePhoto(t *testing.T) {
	for _, iceTemp := range []float64{-7.0, 3.0} {
		record := completeRecord()
		record.IcePhoto = ""
		record.IceTemperature = temp(iceTemp)

		errs := ValidateForPersistence(record)

		require.Len(t, errs, 1)
		assert.Equal(t, FieldIcePhoto, errs[0].Field)
		assert.Equal(t, validation.KindMissingRequiredField, errs[0].Kind)
	}
}

func TestValidateForPersistence_NonCompliantIsNotRejected(t *testing.T) {
	record := completeRecord()
	record.MedicineTemperature = temp(12.0)
	record.IceTemperature = temp(-2.0)

	assert.Empty(t, ValidateForPersistence(record))
}

func TestValidateForPersistence_AggregatesInFormOrder(t *testing.T) {
	errs := ValidateForPersistence(&models.ExchangeRecord{})

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{
		FieldBoxModel, FieldOrderNumber, FieldPackagedOn, FieldLabelPhoto,
		FieldMedicinePhoto, compliance.FieldMedicineTemperature,
		FieldIcePhoto, compliance.FieldIceTemperature,
	}, fields)
	assert.True(t, errs.HasKind(validation.KindMissingMeasurement))
	assert.Equal(t, validation.KindMissingMeasurement, errs.ForField(compliance.FieldIceTemperature)[0].Kind)
}

func TestValidateForPersistence_MalformedValues(t *testing.T) {
	record := completeRecord()
	record.MedicineTemperature = temp(50.1)
	record.IceTemperature = temp(-51)
	record.OrderNumber = strings.Repeat("9", MaxOrderNumberLength+1)
	operator := strings.Repeat("x", MaxOperatorLength+1)
	record.Operator = &operator

	errs := ValidateForPersistence(record)

	require.Len(t, errs, 4)
	for _, e := range errs {
		assert.Equal(t, validation.KindMalformedValue, e.Kind, e.Field)
	}
}

func TestHasOneDecimalPlace(t *testing.T) {
	for _, v := range []float64{8, -9.1, 18.5, 0.1, -5, 24.9} {
		assert.True(t, HasOneDecimalPlace(v), v)
	}
	for _, v := range []float64{8.049, -4.96, 5.45, 0.01} {
		assert.False(t, HasOneDecimalPlace(v), v)
	}
}

func TestValidateForPersistence_ExtraPrecision(t *testing.T) {
	record := completeRecord()
	record.IceTemperature = temp(-4.96)

	errs := ValidateForPersistence(record)
	require.Len(t, errs, 1)
	assert.Equal(t, compliance.FieldIceTemperature, errs[0].Field)
	assert.Equal(t, validation.KindMalformedValue, errs[0].Kind)
}

func TestValidateForPersistence_SubmissionKeyLength(t *testing.T) {
	record := completeRecord()
	key := strings.Repeat("k", MaxSubmissionKeyLength)
	record.SubmissionKey = &key
	assert.Empty(t, ValidateForPersistence(record))

	longer := key + "k"
	record.SubmissionKey = &longer
	errs := ValidateForPersistence(record)
	require.Len(t, errs, 1)
	assert.Equal(t, FieldSubmissionKey, errs[0].Field)
}
