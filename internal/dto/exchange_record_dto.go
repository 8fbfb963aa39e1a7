package dto

import "time"

const (
	StatusConforming = "conforming"
	StatusOutOfRange = "out_of_range"
)

type ExchangeRecordDTO struct {
	ID                   uint      `json:"id"`
	BoxModelID           string    `json:"box_model"`
	OrderNumber          string    `json:"order_number"`
	PackagedOn           string    `json:"packaged_on"`
	MedicineTemperature  *float64  `json:"medicine_temperature"`
	IceTemperature       *float64  `json:"ice_temperature"`
	MedicineRange        string    `json:"medicine_range"`
	IceRange             string    `json:"ice_range"`
	Compliant            bool      `json:"compliant"`
	Status               string    `json:"status"`
	Warnings             []string  `json:"warnings,omitempty"`
	State                string    `json:"state"`
	FinalizedAt          time.Time `json:"finalized_at"`
	AcclimationStartedAt time.Time `json:"acclimation_started_at"`
	Operator             *string   `json:"operator,omitempty"`
	SubmissionKey        *string   `json:"submission_key,omitempty"`
	Photos               PhotosDTO `json:"photos"`
	CreatedAt            time.Time `json:"created_at"`
}

// PhotosDTO holds download URLs relative to the API root.
type PhotosDTO struct {
	Label               string `json:"label"`
	MedicineTemperature string `json:"medicine_temperature"`
	IceTemperature      string `json:"ice_temperature"`
}
