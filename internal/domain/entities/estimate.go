package entities

import "time"

// StoneEntry is one stone line item of a calculation or a stored estimate.
//
// Weight is the total carats across all pieces; Quantity is the piece count.
// StoneTypeID is a weak reference into the catalog and may dangle after the
// catalog entry is removed. Name is a denormalized display snapshot taken at
// save time, kept even if the catalog entry is later renamed or deleted.
type StoneEntry struct {
	StoneTypeID string  `json:"stone_type_id"`
	Name        string  `json:"name"`
	Weight      float64 `json:"weight"`
	Quantity    int     `json:"quantity"`
}

// EstimateRecord is a saved calculation's raw inputs.
//
// Storage model (DynamoDB):
//   - PK: id
//
// It deliberately carries no price fields: displayed totals are always
// recomputed from the current Settings at read time, so the same record can
// show different totals as gold rates move. Records are created once and
// deleted explicitly, never updated in place.
type EstimateRecord struct {
	ID              string       `json:"id"`
	CreatedAt       time.Time    `json:"created_at"`
	ProductName     string       `json:"product_name"`
	ProductImageURL string       `json:"product_image_url,omitempty"`
	Purity          string       `json:"purity"`
	NetGoldWeight   float64      `json:"net_gold_weight"`
	Stones          []StoneEntry `json:"stones"`
}

// EstimateFilter narrows an estimate listing. The raw-field filters (name,
// purity, gold weight, stone types) are applied before pricing; MinTotal and
// MaxTotal can only be applied after live totals are computed, since prices
// are never stored.
type EstimateFilter struct {
	NameQuery     string
	Purities      []string
	MinGoldWeight *float64
	MaxGoldWeight *float64
	StoneTypeIDs  []string
	MinTotal      *float64
	MaxTotal      *float64
	SortBy        string
	SortDesc      bool
}

// Sort keys accepted by EstimateFilter.SortBy.
const (
	SortByCreatedAt  = "created_at"
	SortByName       = "name"
	SortByGoldWeight = "net_gold_weight"
	SortByTotal      = "total"
)
