// Package catalog is the fixed list of cold-chain box models an exchange can
// be recorded against.
package catalog

import (
	"Coldbox/internal/validation"
	"fmt"
)

// PrecautionBoxModelID is the 33 liter box that carries medicine at room
// temperature instead of refrigerated.
const PrecautionBoxModelID = "33L_IF1050"

type BoxModel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Liters      int    `json:"liters"`
	IcePacks    int    `json:"ice_packs"`
	IcePackType string `json:"ice_pack_type"`
}

var boxModels = []BoxModel{
	{ID: "12L_IF2000", Name: "12 liters IF-2000 / 2 Ice Foam 2000 packs", Liters: 12, IcePacks: 2, IcePackType: "Ice Foam 2000"},
	{ID: "12L_IT1050", Name: "12 liters IT-1050 / 3 Ita Fria 1050 packs", Liters: 12, IcePacks: 3, IcePackType: "Ita Fria 1050"},
	{ID: PrecautionBoxModelID, Name: "33 liters IF-1050 PRECAUTION / 1 Ice Foam 1050 pack", Liters: 33, IcePacks: 1, IcePackType: "Ice Foam 1050"},
	{ID: "44L_IT1050", Name: "44 liters IT-1050 / 6 Ita Fria 1050 packs", Liters: 44, IcePacks: 6, IcePackType: "Ita Fria 1050"},
	{ID: "80L_IT1050", Name: "80 liters IT-1050 / 10 Ita Fria 1050 packs", Liters: 80, IcePacks: 10, IcePackType: "Ita Fria 1050"},
	{ID: "120L_IT1050", Name: "120 liters IT-1050 / 12 Ita Fria 1050 packs", Liters: 120, IcePacks: 12, IcePackType: "Ita Fria 1050"},
}

// All returns a copy of the catalog in display order.
func All() []BoxModel {
	out := make([]BoxModel, len(boxModels))
	copy(out, boxModels)
	return out
}

func Lookup(id string) (BoxModel, error) {
	for _, boxModel := range boxModels {
		if boxModel.ID == id {
			return boxModel, nil
		}
	}
	return BoxModel{}, fmt.Errorf("%w: %q", validation.ErrUnknownBoxModel, id)
}

func Contains(id string) bool {
	_, err := Lookup(id)
	return err == nil
}
