package repository

import (
	"testing"

	"joalheria_xpto/internal/domain/entities"
)

func filterRecord() entities.EstimateRecord {
	return entities.EstimateRecord{
		ID:            "est-1",
		ProductName:   "Solitaire Ring",
		Purity:        "18",
		NetGoldWeight: 5,
		Stones: []entities.StoneEntry{
			{StoneTypeID: "rd-1", Weight: 0.5, Quantity: 1},
		},
	}
}

func f64(v float64) *float64 { return &v }

func TestMatchesRawFilter(t *testing.T) {
	rec := filterRecord()

	cases := []struct {
		name   string
		filter entities.EstimateFilter
		want   bool
	}{
		{"empty filter matches", entities.EstimateFilter{}, true},
		{"name substring case-insensitive", entities.EstimateFilter{NameQuery: "solitaire"}, true},
		{"name mismatch", entities.EstimateFilter{NameQuery: "bracelet"}, false},
		{"purity membership", entities.EstimateFilter{Purities: []string{"22", "18"}}, true},
		{"purity excluded", entities.EstimateFilter{Purities: []string{"22", "24"}}, false},
		{"weight range inside", entities.EstimateFilter{MinGoldWeight: f64(2), MaxGoldWeight: f64(8)}, true},
		{"weight below min", entities.EstimateFilter{MinGoldWeight: f64(6)}, false},
		{"weight above max", entities.EstimateFilter{MaxGoldWeight: f64(4)}, false},
		{"stone type membership", entities.EstimateFilter{StoneTypeIDs: []string{"rd-1"}}, true},
		{"stone type excluded", entities.EstimateFilter{StoneTypeIDs: []string{"em-1"}}, false},
		{"price range ignored at raw layer", entities.EstimateFilter{MinTotal: f64(1e9)}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := matchesRawFilter(rec, tc.filter); got != tc.want {
				t.Fatalf("matchesRawFilter(%+v) = %v, want %v", tc.filter, got, tc.want)
			}
		})
	}
}

func TestEstimateItemRoundTrip(t *testing.T) {
	rec := filterRecord()
	got := fromEstimateItem(toEstimateItem(rec))

	if got.ID != rec.ID || got.ProductName != rec.ProductName || got.Purity != rec.Purity {
		t.Fatalf("unexpected round trip: %+v", got)
	}
	if got.NetGoldWeight != rec.NetGoldWeight {
		t.Fatalf("gold weight must round-trip exactly, got %v", got.NetGoldWeight)
	}
	if len(got.Stones) != 1 || got.Stones[0].Weight != 0.5 || got.Stones[0].Quantity != 1 {
		t.Fatalf("stones must round-trip exactly, got %+v", got.Stones)
	}
}
