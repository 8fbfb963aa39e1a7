// Package lifecycle moves an exchange record from draft to finalized and
// guards the fields that must be present before it is written.
package lifecycle

import (
	"Coldbox/internal/models"
	"sync"
	"time"
)

// AcclimationWindow is how long the box is assumed to settle before the
// evidence is captured.
const AcclimationWindow = 20 * time.Minute

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

func NewSystemClock() Clock { return SystemClock{} }

// FixedClock always answers the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time { return c.At }

// Stamp is the immutable pair set when a record is finalized.
type Stamp struct {
	FinalizedAt          time.Time
	AcclimationStartedAt time.Time
}

func StampFor(finalizedAt time.Time) Stamp {
	return Stamp{
		FinalizedAt:          finalizedAt,
		AcclimationStartedAt: finalizedAt.Add(-AcclimationWindow),
	}
}

type Lifecycle struct {
	clock Clock
	mutex sync.Mutex
}

func NewLifecycle(clock Clock) *Lifecycle {
	return &Lifecycle{clock: clock}
}

// Finalize stamps the record with the clock's current time.
func (l *Lifecycle) Finalize(record *models.ExchangeRecord) (Stamp, bool) {
	return l.finalize(record, l.clock.Now)
}

// FinalizeAt stamps the record with reference instead of the clock.
func (l *Lifecycle) FinalizeAt(record *models.ExchangeRecord, reference time.Time) (Stamp, bool) {
	return l.finalize(record, func() time.Time { return reference })
}

// finalize reports false when the record was already finalized; the stored
// pair is returned untouched in that case.
func (l *Lifecycle) finalize(record *models.ExchangeRecord, now func() time.Time) (Stamp, bool) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if record.IsFinalized() {
		return Stamp{
			FinalizedAt:          record.FinalizedAt,
			AcclimationStartedAt: record.AcclimationStartedAt,
		}, false
	}

	stamp := StampFor(now())
	record.FinalizedAt = stamp.FinalizedAt
	record.AcclimationStartedAt = stamp.AcclimationStartedAt
	record.State = models.StateFinalized
	return stamp, true
}
