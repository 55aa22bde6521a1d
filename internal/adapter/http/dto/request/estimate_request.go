package request

import (
	"strings"

	"joalheria_xpto/internal/domain/entities"
)

// EstimateRequest finalizes a calculation into a stored estimate. Only raw
// physical quantities are accepted; prices are computed server-side and
// never stored.
type EstimateRequest struct {
	ProductName     string              `json:"product_name" binding:"required"`
	ProductImageURL string              `json:"product_image_url"`
	Purity          string              `json:"purity" binding:"required"`
	NetGoldWeight   float64             `json:"net_gold_weight"`
	Stones          []StoneEntryRequest `json:"stones"`
}

func (r EstimateRequest) ToRecord() entities.EstimateRecord {
	return entities.EstimateRecord{
		ProductName:     strings.TrimSpace(r.ProductName),
		ProductImageURL: strings.TrimSpace(r.ProductImageURL),
		Purity:          strings.TrimSpace(r.Purity),
		NetGoldWeight:   r.NetGoldWeight,
		Stones:          toStoneEntries(r.Stones),
	}
}
