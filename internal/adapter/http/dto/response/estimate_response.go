package response

import (
	"time"

	"joalheria_xpto/internal/domain/entities"
)

type StoneEntryResponse struct {
	StoneTypeID string  `json:"stone_type_id"`
	Name        string  `json:"name"`
	Weight      float64 `json:"weight"`
	Quantity    int     `json:"quantity"`
}

// EstimateResponse pairs the stored raw fields with the breakdown computed
// from the current settings at request time. Breakdown values are not part
// of the record and will differ between requests as rates move.
type EstimateResponse struct {
	ID              string               `json:"id"`
	CreatedAt       time.Time            `json:"created_at"`
	ProductName     string               `json:"product_name"`
	ProductImageURL string               `json:"product_image_url,omitempty"`
	Purity          string               `json:"purity"`
	NetGoldWeight   float64              `json:"net_gold_weight"`
	Stones          []StoneEntryResponse `json:"stones"`
	Breakdown       BreakdownResponse    `json:"breakdown"`
}

func FromPricedEstimate(pe entities.PricedEstimate) EstimateResponse {
	stones := make([]StoneEntryResponse, len(pe.Record.Stones))
	for i, st := range pe.Record.Stones {
		stones[i] = StoneEntryResponse{
			StoneTypeID: st.StoneTypeID,
			Name:        st.Name,
			Weight:      st.Weight,
			Quantity:    st.Quantity,
		}
	}
	return EstimateResponse{
		ID:              pe.Record.ID,
		CreatedAt:       pe.Record.CreatedAt,
		ProductName:     pe.Record.ProductName,
		ProductImageURL: pe.Record.ProductImageURL,
		Purity:          pe.Record.Purity,
		NetGoldWeight:   pe.Record.NetGoldWeight,
		Stones:          stones,
		Breakdown:       FromBreakdown(pe.Breakdown),
	}
}

type EstimateListResponse struct {
	Items []EstimateResponse `json:"items"`
	Count int                `json:"count"`
}

func FromPricedEstimates(list []entities.PricedEstimate) EstimateListResponse {
	items := make([]EstimateResponse, len(list))
	for i, pe := range list {
		items[i] = FromPricedEstimate(pe)
	}
	return EstimateListResponse{Items: items, Count: len(items)}
}
