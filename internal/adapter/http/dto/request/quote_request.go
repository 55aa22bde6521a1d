package request

import (
	"strings"

	"joalheria_xpto/internal/domain/entities"
)

// StoneEntryRequest is one stone line item as submitted by the client.
// Weight is the total carats across all pieces of the entry.
type StoneEntryRequest struct {
	StoneTypeID string  `json:"stone_type_id"`
	Name        string  `json:"name"`
	Weight      float64 `json:"weight"`
	Quantity    int     `json:"quantity"`
}

// QuoteRequest asks for a price breakdown without persisting anything.
type QuoteRequest struct {
	Purity        string              `json:"purity" binding:"required"`
	NetGoldWeight float64             `json:"net_gold_weight"`
	Stones        []StoneEntryRequest `json:"stones"`
}

func (r QuoteRequest) ToPricingInput() entities.PricingInput {
	return entities.PricingInput{
		Purity:        strings.TrimSpace(r.Purity),
		NetGoldWeight: r.NetGoldWeight,
		Stones:        toStoneEntries(r.Stones),
	}
}

func toStoneEntries(stones []StoneEntryRequest) []entities.StoneEntry {
	out := make([]entities.StoneEntry, len(stones))
	for i, s := range stones {
		out[i] = entities.StoneEntry{
			StoneTypeID: strings.TrimSpace(s.StoneTypeID),
			Name:        strings.TrimSpace(s.Name),
			Weight:      s.Weight,
			Quantity:    s.Quantity,
		}
	}
	return out
}
