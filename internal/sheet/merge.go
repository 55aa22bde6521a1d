package sheet

import (
	"strings"

	"joalheria_xpto/internal/domain/entities"
)

// Rate-table keys recognized by the overlay. Any other key is ignored, which
// lets the sheet carry operator notes without breaking a sync.
const (
	rateKeyGoldRate24K         = "goldrate24k"
	rateKeyMakingChargeFlat    = "makingchargeflat"
	rateKeyMakingChargePerGram = "makingchargepergram"
	rateKeyGSTRate             = "gstrate"
	rateKeyPurityPrefix        = "purity_"
)

// MergeSettings overlays the three parsed price-sheet tables onto the current
// settings and returns a fresh value; the input is never mutated.
//
// Merge semantics, per table:
//   - rates: partial key/value overlay. Present, parseable keys override the
//     matching field; everything else stays as-is.
//   - stones: a non-empty stones table wholesale-replaces the catalog. An
//     empty one keeps the existing catalog, so a partial or failed export
//     never wipes a populated catalog.
//   - slabs: appended per stone id in row order; row order is what the
//     resolver later scans, so it is semantically significant.
//
// GoldRates is always recomputed at the end from the merged 24k rate and
// purity percentages.
func MergeSettings(current entities.Settings, ratesText, stonesText, slabsText string) entities.Settings {
	merged := current.Clone()

	applyRates(&merged, ParseTable(ratesText))

	stones := parseStones(ParseTable(stonesText))
	if len(stones) > 0 {
		attachSlabs(stones, ParseTable(slabsText))
		merged.StoneTypes = stones
	}

	merged.RecomputeGoldRates()
	return merged
}

func applyRates(s *entities.Settings, rows []Row) {
	for _, row := range rows {
		key := strings.ToLower(row.Str("key", "name"))
		if key == "" {
			continue
		}
		value, ok := row.Float("value", "rate")
		if !ok {
			continue
		}
		switch key {
		case rateKeyGoldRate24K:
			s.GoldRate24K = value
		case rateKeyMakingChargeFlat:
			s.MakingChargeFlat = value
		case rateKeyMakingChargePerGram:
			s.MakingChargePerGram = value
		case rateKeyGSTRate:
			s.GSTRate = value
		default:
			if purity := strings.TrimPrefix(key, rateKeyPurityPrefix); purity != key && purity != "" {
				s.PurityPercentages[purity] = value
			}
		}
	}
}

func parseStones(rows []Row) []entities.StoneType {
	var stones []entities.StoneType
	for _, row := range rows {
		id := row.Str("stone_id", "stoneid", "id")
		if id == "" {
			continue
		}
		category := entities.StoneCategoryDiamond
		if row.Str("category") == string(entities.StoneCategoryGemstone) {
			category = entities.StoneCategoryGemstone
		}
		stones = append(stones, entities.StoneType{
			StoneID:  id,
			Name:     row.Str("name"),
			Category: category,
			Clarity:  row.Str("clarity"),
			Color:    row.Str("color"),
		})
	}
	return stones
}

func attachSlabs(stones []entities.StoneType, rows []Row) {
	byID := make(map[string]*entities.StoneType, len(stones))
	for i := range stones {
		byID[stones[i].StoneID] = &stones[i]
	}
	for _, row := range rows {
		id := row.Str("stone_id", "stoneid", "id")
		if id == "" {
			continue
		}
		st, ok := byID[id]
		if !ok {
			// Slab rows for unknown stones are dropped; the stones table is
			// the catalog of record.
			continue
		}
		st.Slabs = append(st.Slabs, entities.StoneSlab{
			Code:          row.Str("code"),
			FromWeight:    row.FloatOrZero("from_weight", "fromweight", "from"),
			ToWeight:      row.FloatOrZero("to_weight", "toweight", "to"),
			PricePerCarat: row.FloatOrZero("price_per_carat", "pricepercarat", "price"),
			Discount:      row.FloatOrZero("discount"),
		})
	}
}
