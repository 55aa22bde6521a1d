package response

import (
	"testing"
	"time"

	"joalheria_xpto/internal/domain/entities"
)

func TestFromPricedEstimate(t *testing.T) {
	now := time.Now().UTC()
	pe := entities.PricedEstimate{
		Record: entities.EstimateRecord{
			ID:            "est-1",
			CreatedAt:     now,
			ProductName:   "Solitaire ring",
			Purity:        "18",
			NetGoldWeight: 5,
			Stones:        []entities.StoneEntry{{StoneTypeID: "rd-1", Name: "Round diamond", Weight: 0.5, Quantity: 1}},
		},
		Breakdown: entities.PriceBreakdown{
			GoldRateValue: 11400,
			GoldCost:      57000,
			MakingCost:    9000,
			Stones: []entities.StoneCost{{
				StoneTypeID:   "rd-1",
				Name:          "Round diamond",
				Weight:        0.5,
				Quantity:      1,
				Slab:          &entities.StoneSlab{Code: "S1", FromWeight: 0, ToWeight: 1, PricePerCarat: 45000},
				PricePerCarat: 45000,
				Cost:          22500,
			}},
			TotalStoneCost: 22500,
			SubTotal:       88500,
			GST:            2655,
			Total:          91155,
			GrossWeight:    5.5,
		},
	}

	res := FromPricedEstimate(pe)
	if res.ID != "est-1" || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected record fields: %+v", res)
	}
	if res.ProductName != "Solitaire ring" || res.Purity != "18" || res.NetGoldWeight != 5 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.Stones) != 1 || res.Stones[0].StoneTypeID != "rd-1" {
		t.Fatalf("unexpected stones: %+v", res.Stones)
	}
	if res.Breakdown.Total != 91155 || res.Breakdown.GrossWeight != 5.5 {
		t.Fatalf("unexpected breakdown: %+v", res.Breakdown)
	}
	if res.Breakdown.Stones[0].Slab == nil || res.Breakdown.Stones[0].Slab.Code != "S1" {
		t.Fatalf("expected slab mapped: %+v", res.Breakdown.Stones[0])
	}
}

func TestFromBreakdown_DanglingSlab(t *testing.T) {
	b := entities.PriceBreakdown{
		Stones: []entities.StoneCost{{StoneTypeID: "gone", Weight: 1, Quantity: 1}},
	}

	res := FromBreakdown(b)
	if res.Stones[0].Slab != nil {
		t.Fatalf("expected nil slab passthrough: %+v", res.Stones[0])
	}
	if res.Stones[0].Cost != 0 {
		t.Fatalf("expected zero cost: %+v", res.Stones[0])
	}
}

func TestFromSettings_SyncedAt(t *testing.T) {
	s := entities.DefaultSettings()

	if res := FromSettings(s, time.Time{}); res.SyncedAt != nil {
		t.Fatalf("expected nil synced_at for never-synced settings")
	}

	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	res := FromSettings(s, at)
	if res.SyncedAt == nil || !res.SyncedAt.Equal(at) {
		t.Fatalf("unexpected synced_at: %+v", res.SyncedAt)
	}
	if len(res.GoldRates) != len(s.GoldRates) {
		t.Fatalf("expected gold rates mapped: %+v", res.GoldRates)
	}
}
