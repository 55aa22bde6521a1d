package response

import (
	"time"

	"joalheria_xpto/internal/domain/entities"
)

type GoldRateResponse struct {
	Purity     string  `json:"purity"`
	Percentage float64 `json:"percentage"`
	Rate       float64 `json:"rate"`
}

type StoneTypeResponse struct {
	StoneID  string         `json:"stone_id"`
	Name     string         `json:"name"`
	Category string         `json:"category"`
	Clarity  string         `json:"clarity"`
	Color    string         `json:"color"`
	Slabs    []SlabResponse `json:"slabs"`
}

type SettingsResponse struct {
	GoldRate24K         float64             `json:"gold_rate_24k"`
	PurityPercentages   map[string]float64  `json:"purity_percentages"`
	GoldRates           []GoldRateResponse  `json:"gold_rates"`
	MakingChargeFlat    float64             `json:"making_charge_flat"`
	MakingChargePerGram float64             `json:"making_charge_per_gram"`
	GSTRate             float64             `json:"gst_rate"`
	StoneTypes          []StoneTypeResponse `json:"stone_types"`
	SyncedAt            *time.Time          `json:"synced_at,omitempty"`
}

func FromSettings(s entities.Settings, syncedAt time.Time) SettingsResponse {
	rates := make([]GoldRateResponse, len(s.GoldRates))
	for i, r := range s.GoldRates {
		rates[i] = GoldRateResponse{Purity: r.Purity, Percentage: r.Percentage, Rate: r.Rate}
	}
	stones := make([]StoneTypeResponse, len(s.StoneTypes))
	for i, st := range s.StoneTypes {
		slabs := make([]SlabResponse, len(st.Slabs))
		for j, sl := range st.Slabs {
			slabs[j] = SlabResponse{
				Code:          sl.Code,
				FromWeight:    sl.FromWeight,
				ToWeight:      sl.ToWeight,
				PricePerCarat: sl.PricePerCarat,
				Discount:      sl.Discount,
			}
		}
		stones[i] = StoneTypeResponse{
			StoneID:  st.StoneID,
			Name:     st.Name,
			Category: string(st.Category),
			Clarity:  st.Clarity,
			Color:    st.Color,
			Slabs:    slabs,
		}
	}

	resp := SettingsResponse{
		GoldRate24K:         s.GoldRate24K,
		PurityPercentages:   s.PurityPercentages,
		GoldRates:           rates,
		MakingChargeFlat:    s.MakingChargeFlat,
		MakingChargePerGram: s.MakingChargePerGram,
		GSTRate:             s.GSTRate,
		StoneTypes:          stones,
	}
	if !syncedAt.IsZero() {
		at := syncedAt
		resp.SyncedAt = &at
	}
	return resp
}

type ImageUploadResponse struct {
	URL string `json:"url"`
}
