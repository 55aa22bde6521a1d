package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"joalheria_xpto/internal/domain/entities"
	mock_interfaces "joalheria_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func settingsFixture() entities.Settings {
	s := entities.DefaultSettings()
	s.GoldRate24K = 15000
	s.MakingChargeFlat = 1500
	s.MakingChargePerGram = 1800
	s.StoneTypes = []entities.StoneType{
		{
			StoneID: "rd-1",
			Name:    "Round diamond",
			Slabs: []entities.StoneSlab{
				{Code: "S1", FromWeight: 0, ToWeight: 1, PricePerCarat: 30000},
			},
		},
	}
	s.RecomputeGoldRates()
	return s
}

func float64Ptr(v float64) *float64 { return &v }

func TestEstimateUseCase_Quote(t *testing.T) {
	t.Run("negative gold weight", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		_, err := uc.Quote(context.Background(), entities.PricingInput{NetGoldWeight: -1})
		if !errors.Is(err, ErrInvalidGoldWeight) {
			t.Fatalf("expected ErrInvalidGoldWeight, got %v", err)
		}
	})

	t.Run("negative stone weight", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		_, err := uc.Quote(context.Background(), entities.PricingInput{
			Stones: []entities.StoneEntry{{StoneTypeID: "rd-1", Weight: -0.5, Quantity: 1}},
		})
		if !errors.Is(err, ErrInvalidStoneEntry) {
			t.Fatalf("expected ErrInvalidStoneEntry, got %v", err)
		}
	})

	t.Run("settings load error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settingsRepo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewEstimateUseCase(nil, settingsRepo)

		settingsRepo.EXPECT().Load(gomock.Any()).Return(entities.Settings{}, time.Time{}, errors.New("db"))

		_, err := uc.Quote(context.Background(), entities.PricingInput{Purity: "18", NetGoldWeight: 5})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success with live settings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settingsRepo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewEstimateUseCase(nil, settingsRepo)

		settingsRepo.EXPECT().Load(gomock.Any()).Return(settingsFixture(), time.Time{}, nil)

		b, err := uc.Quote(context.Background(), entities.PricingInput{
			Purity:        " 18 ",
			NetGoldWeight: 5,
			Stones:        []entities.StoneEntry{{StoneTypeID: "rd-1", Weight: 0.5, Quantity: 0}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.GoldRateValue != 11400 {
			t.Fatalf("expected trimmed purity to resolve to 11400, got %v", b.GoldRateValue)
		}
		if b.Total == 0 {
			t.Fatalf("expected a non-zero total, got %+v", b)
		}
	})
}

func TestEstimateUseCase_SaveEstimate(t *testing.T) {
	t.Run("invalid weight", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		_, err := uc.SaveEstimate(context.Background(), entities.EstimateRecord{NetGoldWeight: -2})
		if !errors.Is(err, ErrInvalidGoldWeight) {
			t.Fatalf("expected ErrInvalidGoldWeight, got %v", err)
		}
	})

	t.Run("persists raw fields only and prices the response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		settingsRepo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewEstimateUseCase(repo, settingsRepo)

		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.EstimateRecord{})).DoAndReturn(
			func(_ context.Context, rec entities.EstimateRecord) (entities.EstimateRecord, error) {
				if rec.ID == "" {
					t.Fatalf("expected generated id")
				}
				if rec.CreatedAt.IsZero() {
					t.Fatalf("expected created_at")
				}
				if rec.ProductName != "Gold ring" || rec.Purity != "18" {
					t.Fatalf("unexpected record: %+v", rec)
				}
				if len(rec.Stones) != 1 || rec.Stones[0].Quantity != 1 {
					t.Fatalf("expected quantity normalized to 1, got %+v", rec.Stones)
				}
				return rec, nil
			},
		)
		settingsRepo.EXPECT().Load(gomock.Any()).Return(settingsFixture(), time.Time{}, nil)

		res, err := uc.SaveEstimate(context.Background(), entities.EstimateRecord{
			ProductName:   "  Gold ring ",
			Purity:        "18",
			NetGoldWeight: 5,
			Stones:        []entities.StoneEntry{{StoneTypeID: "rd-1", Weight: 0.5, Quantity: 0}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Breakdown.Total == 0 {
			t.Fatalf("expected live breakdown in response")
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.EstimateRecord{}, errors.New("db"))

		_, err := uc.SaveEstimate(context.Background(), entities.EstimateRecord{ProductName: "x"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestEstimateUseCase_ListEstimates(t *testing.T) {
	records := []entities.EstimateRecord{
		{ID: "a", ProductName: "Ring", Purity: "18", NetGoldWeight: 5, CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "b", ProductName: "Chain", Purity: "22", NetGoldWeight: 10, CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	t.Run("price range filters after live pricing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		settingsRepo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewEstimateUseCase(repo, settingsRepo)

		// 18k 5g: 5*11400 + 5*1800 = 66000 + gst. 22k 10g: 10*13740 + 10*1800 = 155400 + gst.
		f := entities.EstimateFilter{MinTotal: float64Ptr(100000)}
		repo.EXPECT().List(gomock.Any(), f).Return(records, nil)
		settingsRepo.EXPECT().Load(gomock.Any()).Return(settingsFixture(), time.Time{}, nil)

		priced, err := uc.ListEstimates(context.Background(), f)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(priced) != 1 || priced[0].Record.ID != "b" {
			t.Fatalf("expected only the heavy chain to pass the price filter, got %+v", priced)
		}
	})

	t.Run("sort by live total descending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		settingsRepo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewEstimateUseCase(repo, settingsRepo)

		f := entities.EstimateFilter{SortBy: entities.SortByTotal, SortDesc: true}
		repo.EXPECT().List(gomock.Any(), f).Return(records, nil)
		settingsRepo.EXPECT().Load(gomock.Any()).Return(settingsFixture(), time.Time{}, nil)

		priced, err := uc.ListEstimates(context.Background(), f)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(priced) != 2 || priced[0].Record.ID != "b" || priced[1].Record.ID != "a" {
			t.Fatalf("expected b before a, got %+v", priced)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.ListEstimates(context.Background(), entities.EstimateFilter{})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestEstimateUseCase_GetEstimate(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		_, err := uc.GetEstimate(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.EstimateRecord{}, nil)

		_, err := uc.GetEstimate(context.Background(), "missing")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("success recomputes live", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		settingsRepo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewEstimateUseCase(repo, settingsRepo)

		rec := entities.EstimateRecord{ID: "est-1", Purity: "18", NetGoldWeight: 5}
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(rec, nil)
		settingsRepo.EXPECT().Load(gomock.Any()).Return(settingsFixture(), time.Time{}, nil)

		priced, err := uc.GetEstimate(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if priced.Breakdown.GoldCost != 57000 {
			t.Fatalf("expected gold cost 57000, got %v", priced.Breakdown.GoldCost)
		}
	})
}

func TestEstimateUseCase_DeleteEstimate(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		if err := uc.DeleteEstimate(context.Background(), ""); !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().Delete(gomock.Any(), "est-1").Return(false, nil)

		if err := uc.DeleteEstimate(context.Background(), "est-1"); !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().Delete(gomock.Any(), "est-1").Return(true, nil)

		if err := uc.DeleteEstimate(context.Background(), " est-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
