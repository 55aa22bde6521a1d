package entities

import (
	"errors"
	"math"
	"sort"
	"strconv"
)

// StoneCategory classifies a catalog entry. Anything that is not exactly
// "Gemstone" is treated as a diamond when importing from the price sheet.

type StoneCategory string

const (
	StoneCategoryDiamond  StoneCategory = "Diamond"
	StoneCategoryGemstone StoneCategory = "Gemstone"
)

// StoneSlab is one pricing tier of a stone type. The interval is half-open:
// a per-piece weight w matches when FromWeight <= w < ToWeight.
//
// Discount is carried through parsing and persistence but is not applied by
// the cost formula.
type StoneSlab struct {
	Code          string  `json:"code"`
	FromWeight    float64 `json:"from_weight"`
	ToWeight      float64 `json:"to_weight"`
	PricePerCarat float64 `json:"price_per_carat"`
	Discount      float64 `json:"discount"`
}

// StoneType is a stone catalog entry (e.g. "Round diamond VVS/EF").
//
// Slab order matters: the resolver returns the first matching slab, so the
// list keeps the row order of whatever produced it (user edits or sheet sync).
type StoneType struct {
	StoneID  string        `json:"stone_id"`
	Name     string        `json:"name"`
	Category StoneCategory `json:"category"`
	Clarity  string        `json:"clarity"`
	Color    string        `json:"color"`
	Slabs    []StoneSlab   `json:"slabs"`
}

// GoldRate is the derived per-gram rate for one purity label.
type GoldRate struct {
	Purity     string  `json:"purity"`
	Percentage float64 `json:"percentage"`
	Rate       float64 `json:"rate"`
}

// Settings is the single global pricing configuration.
//
// GoldRates is always derived from GoldRate24K and PurityPercentages via
// RecomputeGoldRates; it must never be edited on its own. Treat the whole
// value as immutable: syncs and edits produce a fresh Settings which the
// caller swaps in wholesale.
type Settings struct {
	GoldRate24K         float64            `json:"gold_rate_24k"`
	PurityPercentages   map[string]float64 `json:"purity_percentages"`
	GoldRates           []GoldRate         `json:"gold_rates"`
	MakingChargeFlat    float64            `json:"making_charge_flat"`
	MakingChargePerGram float64            `json:"making_charge_per_gram"`
	GSTRate             float64            `json:"gst_rate"`
	StoneTypes          []StoneType        `json:"stone_types"`
}

var ErrInvalidSettingsShape = errors.New("invalid settings shape")

// DefaultSettings is the built-in configuration used until the first sync and
// whenever a persisted blob fails validation on load.
func DefaultSettings() Settings {
	s := Settings{
		GoldRate24K: 0,
		PurityPercentages: map[string]float64{
			"24": 100,
			"22": 91.6,
			"18": 76,
			"14": 58.5,
		},
		MakingChargeFlat:    0,
		MakingChargePerGram: 0,
		GSTRate:             0.03,
		StoneTypes:          nil,
	}
	s.RecomputeGoldRates()
	return s
}

// RecomputeGoldRates rebuilds the derived per-purity rate table from
// GoldRate24K and PurityPercentages. Rates are rounded to the nearest unit.
// Purities are ordered by descending karat so the table is deterministic.
func (s *Settings) RecomputeGoldRates() {
	purities := make([]string, 0, len(s.PurityPercentages))
	for p := range s.PurityPercentages {
		purities = append(purities, p)
	}
	sort.Slice(purities, func(i, j int) bool {
		a, errA := strconv.ParseFloat(purities[i], 64)
		b, errB := strconv.ParseFloat(purities[j], 64)
		if errA != nil || errB != nil {
			return purities[i] > purities[j]
		}
		return a > b
	})

	rates := make([]GoldRate, 0, len(purities))
	for _, p := range purities {
		pct := s.PurityPercentages[p]
		rates = append(rates, GoldRate{
			Purity:     p,
			Percentage: pct,
			Rate:       math.Round(s.GoldRate24K * pct / 100),
		})
	}
	s.GoldRates = rates
}

// FindGoldRate looks up the derived rate for a purity label.
func (s Settings) FindGoldRate(purity string) (GoldRate, bool) {
	for _, r := range s.GoldRates {
		if r.Purity == purity {
			return r, true
		}
	}
	return GoldRate{}, false
}

// FindStoneType resolves a catalog reference. StoneEntry references are weak
// and may dangle after a catalog edit or sync; callers must handle the
// not-found case explicitly.
func (s Settings) FindStoneType(stoneID string) (StoneType, bool) {
	for _, st := range s.StoneTypes {
		if st.StoneID == stoneID {
			return st, true
		}
	}
	return StoneType{}, false
}

// Validate is the structural shape check applied to persisted blobs on load.
// A failing blob is discarded in favor of DefaultSettings rather than
// crashing startup.
func (s Settings) Validate() error {
	if len(s.PurityPercentages) == 0 {
		return ErrInvalidSettingsShape
	}
	if s.GoldRate24K < 0 || s.MakingChargeFlat < 0 || s.MakingChargePerGram < 0 {
		return ErrInvalidSettingsShape
	}
	if s.GSTRate < 0 || s.GSTRate >= 1 {
		return ErrInvalidSettingsShape
	}
	for p, pct := range s.PurityPercentages {
		if p == "" || pct < 0 || pct > 100 {
			return ErrInvalidSettingsShape
		}
	}
	for _, st := range s.StoneTypes {
		if st.StoneID == "" {
			return ErrInvalidSettingsShape
		}
	}
	return nil
}

// Clone returns a deep copy so merges never mutate the settings value a
// concurrent reader may be holding.
func (s Settings) Clone() Settings {
	out := s
	out.PurityPercentages = make(map[string]float64, len(s.PurityPercentages))
	for k, v := range s.PurityPercentages {
		out.PurityPercentages[k] = v
	}
	out.GoldRates = append([]GoldRate(nil), s.GoldRates...)
	out.StoneTypes = make([]StoneType, len(s.StoneTypes))
	for i, st := range s.StoneTypes {
		cp := st
		cp.Slabs = append([]StoneSlab(nil), st.Slabs...)
		out.StoneTypes[i] = cp
	}
	return out
}
