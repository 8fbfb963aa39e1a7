package models

import (
	"Coldbox/internal/catalog"
)

// BoxModel is the persisted copy of a catalog entry. Rows are seeded from
// the catalog and never edited through the API.
type BoxModel struct {
	ID          string `gorm:"type:varchar(20);primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Liters      int    `gorm:"not null" json:"liters"`
	IcePacks    int    `gorm:"not null" json:"ice_packs"`
	IcePackType string `gorm:"type:varchar(50);not null" json:"ice_pack_type"`
}

func BoxModelFromCatalog(entry catalog.BoxModel) BoxModel {
	return BoxModel{
		ID:          entry.ID,
		Name:        entry.Name,
		Liters:      entry.Liters,
		IcePacks:    entry.IcePacks,
		IcePackType: entry.IcePackType,
	}
}
