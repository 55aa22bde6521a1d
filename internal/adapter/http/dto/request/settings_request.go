package request

import (
	"strings"

	"joalheria_xpto/internal/domain/entities"
)

type StoneSlabRequest struct {
	Code          string  `json:"code"`
	FromWeight    float64 `json:"from_weight"`
	ToWeight      float64 `json:"to_weight"`
	PricePerCarat float64 `json:"price_per_carat"`
	Discount      float64 `json:"discount"`
}

type StoneTypeRequest struct {
	StoneID  string             `json:"stone_id" binding:"required"`
	Name     string             `json:"name"`
	Category string             `json:"category"`
	Clarity  string             `json:"clarity"`
	Color    string             `json:"color"`
	Slabs    []StoneSlabRequest `json:"slabs"`
}

// SettingsRequest replaces the pricing configuration wholesale. The derived
// gold-rate table is intentionally absent: it is recomputed server-side from
// the 24k rate and purity percentages.
type SettingsRequest struct {
	GoldRate24K         float64            `json:"gold_rate_24k"`
	PurityPercentages   map[string]float64 `json:"purity_percentages" binding:"required"`
	MakingChargeFlat    float64            `json:"making_charge_flat"`
	MakingChargePerGram float64            `json:"making_charge_per_gram"`
	GSTRate             float64            `json:"gst_rate"`
	StoneTypes          []StoneTypeRequest `json:"stone_types"`
}

func (r SettingsRequest) ToSettings() entities.Settings {
	stones := make([]entities.StoneType, len(r.StoneTypes))
	for i, st := range r.StoneTypes {
		category := entities.StoneCategoryDiamond
		if st.Category == string(entities.StoneCategoryGemstone) {
			category = entities.StoneCategoryGemstone
		}
		slabs := make([]entities.StoneSlab, len(st.Slabs))
		for j, sl := range st.Slabs {
			slabs[j] = entities.StoneSlab{
				Code:          sl.Code,
				FromWeight:    sl.FromWeight,
				ToWeight:      sl.ToWeight,
				PricePerCarat: sl.PricePerCarat,
				Discount:      sl.Discount,
			}
		}
		stones[i] = entities.StoneType{
			StoneID:  strings.TrimSpace(st.StoneID),
			Name:     strings.TrimSpace(st.Name),
			Category: category,
			Clarity:  st.Clarity,
			Color:    st.Color,
			Slabs:    slabs,
		}
	}
	return entities.Settings{
		GoldRate24K:         r.GoldRate24K,
		PurityPercentages:   r.PurityPercentages,
		MakingChargeFlat:    r.MakingChargeFlat,
		MakingChargePerGram: r.MakingChargePerGram,
		GSTRate:             r.GSTRate,
		StoneTypes:          stones,
	}
}
