package pricing

import "joalheria_xpto/internal/domain/entities"

// Weight threshold (grams) below which the flat making fee applies. The
// boundary is a strict less-than: exactly 2g is charged per gram.
const makingChargeFlatBelowGrams = 2.0

// MakingCharge computes the fabrication fee for a net gold weight.
//
//   - weight <= 0        => 0
//   - 0 < weight < 2g    => flat fee, regardless of actual weight
//   - weight >= 2g       => weight * perGram
func MakingCharge(netGoldWeight, flat, perGram float64) float64 {
	switch {
	case netGoldWeight <= 0:
		return 0
	case netGoldWeight < makingChargeFlatBelowGrams:
		return flat
	default:
		return netGoldWeight * perGram
	}
}

// ComputeBreakdown prices a set of raw inputs against the given settings.
//
// All lookup misses degrade silently: an unknown purity contributes a zero
// gold rate, a dangling stone reference or an uncovered weight contributes a
// zero stone cost. A stale estimate therefore still renders a partial number
// instead of failing. The function is total over its input domain.
func ComputeBreakdown(settings entities.Settings, input entities.PricingInput) entities.PriceBreakdown {
	var goldRateValue float64
	if rate, ok := settings.FindGoldRate(input.Purity); ok {
		goldRateValue = rate.Rate
	}

	goldCost := input.NetGoldWeight * goldRateValue
	makingCost := MakingCharge(input.NetGoldWeight, settings.MakingChargeFlat, settings.MakingChargePerGram)

	stones := make([]entities.StoneCost, 0, len(input.Stones))
	totalStoneCost := 0.0
	stoneWeight := 0.0
	for _, entry := range input.Stones {
		sc := entities.StoneCost{
			StoneTypeID: entry.StoneTypeID,
			Name:        entry.Name,
			Weight:      entry.Weight,
			Quantity:    entry.Quantity,
		}
		if st, ok := settings.FindStoneType(entry.StoneTypeID); ok {
			if slab := ResolveSlab(st.Slabs, entry.Weight, entry.Quantity); slab != nil {
				cp := *slab
				sc.Slab = &cp
				sc.PricePerCarat = slab.PricePerCarat
			}
		}
		// Weight already holds the total carats across all pieces, so the
		// cost is never multiplied by quantity; quantity only shrinks the
		// per-piece weight used for tier lookup.
		sc.Cost = sc.PricePerCarat * entry.Weight
		totalStoneCost += sc.Cost
		stoneWeight += entry.Weight
		stones = append(stones, sc)
	}

	subTotal := goldCost + makingCost + totalStoneCost
	gst := subTotal * settings.GSTRate

	return entities.PriceBreakdown{
		GoldRateValue:  goldRateValue,
		GoldCost:       goldCost,
		MakingCost:     makingCost,
		Stones:         stones,
		TotalStoneCost: totalStoneCost,
		SubTotal:       subTotal,
		GST:            gst,
		Total:          subTotal + gst,
		// Gold weight is already net of stones; stone carats are added only
		// for display.
		GrossWeight: input.NetGoldWeight + stoneWeight,
	}
}
