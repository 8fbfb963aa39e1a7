package models

type PhotoKind string

const (
	PhotoLabel               PhotoKind = "label"
	PhotoMedicineTemperature PhotoKind = "medicine_temperature"
	PhotoIceTemperature      PhotoKind = "ice_temperature"
)

// Photo tracks an uploaded evidence picture. RecordID stays nil until the
// exchange it was uploaded for is persisted; the janitor removes photos
// that stay unattached.
type Photo struct {
	BaseModel
	Key         string    `gorm:"column:object_key;type:varchar(255);not null;uniqueIndex" json:"key"`
	Kind        PhotoKind `gorm:"type:varchar(32);not null" json:"kind"`
	RecordID    *uint     `gorm:"index" json:"record_id,omitempty"`
	FileName    string    `gorm:"type:varchar(255)" json:"file_name"`
	ContentType string    `gorm:"type:varchar(100)" json:"content_type"`
	Size        int64     `gorm:"default:0" json:"size"`
	SHA256      string    `gorm:"type:char(64)" json:"sha256,omitempty"`
}
