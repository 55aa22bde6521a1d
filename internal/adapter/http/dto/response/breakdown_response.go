package response

import "joalheria_xpto/internal/domain/entities"

type SlabResponse struct {
	Code          string  `json:"code"`
	FromWeight    float64 `json:"from_weight"`
	ToWeight      float64 `json:"to_weight"`
	PricePerCarat float64 `json:"price_per_carat"`
	Discount      float64 `json:"discount"`
}

type StoneCostResponse struct {
	StoneTypeID   string        `json:"stone_type_id"`
	Name          string        `json:"name"`
	Weight        float64       `json:"weight"`
	Quantity      int           `json:"quantity"`
	Slab          *SlabResponse `json:"slab,omitempty"`
	PricePerCarat float64       `json:"price_per_carat"`
	Cost          float64       `json:"cost"`
}

// BreakdownResponse exposes every intermediate of the calculation; the UI
// renders each line, not just the total.
type BreakdownResponse struct {
	GoldRateValue  float64             `json:"gold_rate_value"`
	GoldCost       float64             `json:"gold_cost"`
	MakingCost     float64             `json:"making_cost"`
	Stones         []StoneCostResponse `json:"stones"`
	TotalStoneCost float64             `json:"total_stone_cost"`
	SubTotal       float64             `json:"sub_total"`
	GST            float64             `json:"gst"`
	Total          float64             `json:"total"`
	GrossWeight    float64             `json:"gross_weight"`
}

func FromBreakdown(b entities.PriceBreakdown) BreakdownResponse {
	stones := make([]StoneCostResponse, len(b.Stones))
	for i, sc := range b.Stones {
		item := StoneCostResponse{
			StoneTypeID:   sc.StoneTypeID,
			Name:          sc.Name,
			Weight:        sc.Weight,
			Quantity:      sc.Quantity,
			PricePerCarat: sc.PricePerCarat,
			Cost:          sc.Cost,
		}
		if sc.Slab != nil {
			item.Slab = &SlabResponse{
				Code:          sc.Slab.Code,
				FromWeight:    sc.Slab.FromWeight,
				ToWeight:      sc.Slab.ToWeight,
				PricePerCarat: sc.Slab.PricePerCarat,
				Discount:      sc.Slab.Discount,
			}
		}
		stones[i] = item
	}
	return BreakdownResponse{
		GoldRateValue:  b.GoldRateValue,
		GoldCost:       b.GoldCost,
		MakingCost:     b.MakingCost,
		Stones:         stones,
		TotalStoneCost: b.TotalStoneCost,
		SubTotal:       b.SubTotal,
		GST:            b.GST,
		Total:          b.Total,
		GrossWeight:    b.GrossWeight,
	}
}
