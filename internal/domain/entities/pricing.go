package entities

// PricingInput is the raw physical quantities a breakdown is computed from.
// A saved EstimateRecord carries exactly these fields, which is what makes
// historical estimates re-priceable against live settings.
type PricingInput struct {
	Purity        string
	NetGoldWeight float64
	Stones        []StoneEntry
}

// StoneCost is the priced view of one stone entry. Slab is nil when the
// catalog reference dangles or no tier covers the per-piece weight; the
// entry then contributes zero cost.
type StoneCost struct {
	StoneTypeID   string     `json:"stone_type_id"`
	Name          string     `json:"name"`
	Weight        float64    `json:"weight"`
	Quantity      int        `json:"quantity"`
	Slab          *StoneSlab `json:"slab,omitempty"`
	PricePerCarat float64    `json:"price_per_carat"`
	Cost          float64    `json:"cost"`
}

// PriceBreakdown is the full priced result of one calculation. It exposes
// every intermediate because the UI renders each line, and it is never
// persisted: it exists only as a value derived from (Settings, PricingInput).
type PriceBreakdown struct {
	GoldRateValue  float64     `json:"gold_rate_value"`
	GoldCost       float64     `json:"gold_cost"`
	MakingCost     float64     `json:"making_cost"`
	Stones         []StoneCost `json:"stones"`
	TotalStoneCost float64     `json:"total_stone_cost"`
	SubTotal       float64     `json:"sub_total"`
	GST            float64     `json:"gst"`
	Total          float64     `json:"total"`
	GrossWeight    float64     `json:"gross_weight"`
}

// PricedEstimate pairs a stored record with the breakdown computed from the
// current settings at read time.
type PricedEstimate struct {
	Record    EstimateRecord
	Breakdown PriceBreakdown
}

// Input returns the pricing input stored in the record.
func (r EstimateRecord) Input() PricingInput {
	return PricingInput{
		Purity:        r.Purity,
		NetGoldWeight: r.NetGoldWeight,
		Stones:        r.Stones,
	}
}
