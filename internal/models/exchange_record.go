package models

import (
	"time"
)

type LifecycleState string

const (
	StateDraft     LifecycleState = "draft"
	StateFinalized LifecycleState = "finalized"
)

// ExchangeRecord is one ice exchange performed on a box. Temperatures,
// photos and the finalization pair are written once; only Operator may
// change afterwards.
type ExchangeRecord struct {
	BaseModel
	BoxModelID           string         `gorm:"type:varchar(20);not null;index" json:"box_model"`
	OrderNumber          string         `gorm:"type:varchar(50);not null;index" json:"order_number"`
	PackagedOn           time.Time      `gorm:"type:date;not null;index" json:"packaged_on"`
	LabelPhoto           string         `gorm:"type:varchar(255);not null" json:"label_photo"`
	MedicinePhoto        string         `gorm:"type:varchar(255);not null" json:"medicine_photo"`
	IcePhoto             string         `gorm:"type:varchar(255);not null" json:"ice_photo"`
	MedicineTemperature  *float64       `gorm:"type:numeric(4,1);not null" json:"medicine_temperature"`
	IceTemperature       *float64       `gorm:"type:numeric(4,1);not null" json:"ice_temperature"`
	State                LifecycleState `gorm:"type:varchar(16);not null;default:'draft'" json:"state"`
	FinalizedAt          time.Time      `json:"finalized_at"`
	AcclimationStartedAt time.Time      `json:"acclimation_started_at"`
	Operator             *string        `gorm:"type:varchar(100)" json:"operator,omitempty"`
	SubmissionKey        *string        `gorm:"type:varchar(64);uniqueIndex" json:"submission_key,omitempty"`
}

func (r *ExchangeRecord) IsFinalized() bool {
	return r.State == StateFinalized
}
