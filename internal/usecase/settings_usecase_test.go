package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"joalheria_xpto/internal/domain/entities"
	"joalheria_xpto/internal/usecase/interfaces"
	mock_interfaces "joalheria_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestSettingsUseCase_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISettingsRepository(ctrl)
	uc := NewSettingsUseCase(repo, nil, zap.NewNop())

	want := settingsFixture()
	syncedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	repo.EXPECT().Load(gomock.Any()).Return(want, syncedAt, nil)

	got, at, err := uc.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.GoldRate24K != want.GoldRate24K || !at.Equal(syncedAt) {
		t.Fatalf("unexpected result: %+v at %v", got, at)
	}
}

func TestSettingsUseCase_Update(t *testing.T) {
	t.Run("invalid shape rejected", func(t *testing.T) {
		uc := NewSettingsUseCase(nil, nil, nil)
		_, _, err := uc.Update(context.Background(), entities.Settings{})
		if !errors.Is(err, ErrInvalidSettings) {
			t.Fatalf("expected ErrInvalidSettings, got %v", err)
		}
	})

	t.Run("rederives gold rates and preserves synced_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo, nil, zap.NewNop())

		in := settingsFixture()
		in.GoldRate24K = 16000
		// Stale derived rates sent by the caller must be discarded.
		in.GoldRates = []entities.GoldRate{{Purity: "18", Percentage: 76, Rate: 1}}

		syncedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		repo.EXPECT().Load(gomock.Any()).Return(settingsFixture(), syncedAt, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Settings{}), syncedAt).DoAndReturn(
			func(_ context.Context, s entities.Settings, _ time.Time) error {
				rate, ok := s.FindGoldRate("18")
				if !ok || rate.Rate != 12160 { // round(16000 * 76 / 100)
					t.Fatalf("expected rederived rate 12160, got %+v", s.GoldRates)
				}
				return nil
			},
		)

		out, at, err := uc.Update(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rate, _ := out.FindGoldRate("18"); rate.Rate != 12160 {
			t.Fatalf("expected returned settings rederived, got %+v", out.GoldRates)
		}
		if !at.Equal(syncedAt) {
			t.Fatalf("expected preserved synced_at %v, got %v", syncedAt, at)
		}
	})
}

func TestSettingsUseCase_Sync(t *testing.T) {
	ratesCSV := "key,value\ngoldRate24k,15000\n"
	stonesCSV := "stone_id,name,category\nrd-1,Round diamond,Diamond\n"
	slabsCSV := "stone_id,code,from_weight,to_weight,price_per_carat\nrd-1,S1,0,1,30000\n"

	t.Run("fetch failure leaves settings untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		source := mock_interfaces.NewMockISheetSource(ctrl)
		uc := NewSettingsUseCase(repo, source, zap.NewNop())

		repo.EXPECT().Load(gomock.Any()).Return(settingsFixture(), time.Time{}, nil)
		source.EXPECT().FetchAll(gomock.Any()).Return(interfaces.SheetPayload{}, errors.New("timeout"))
		// No Save call: prior settings remain in effect.

		_, _, err := uc.Sync(context.Background())
		if !errors.Is(err, ErrSyncFailed) {
			t.Fatalf("expected ErrSyncFailed, got %v", err)
		}
	})

	t.Run("successful sync merges, persists and stamps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		source := mock_interfaces.NewMockISheetSource(ctrl)
		uc := NewSettingsUseCase(repo, source, zap.NewNop())

		current := entities.DefaultSettings()
		repo.EXPECT().Load(gomock.Any()).Return(current, time.Time{}, nil)
		source.EXPECT().FetchAll(gomock.Any()).Return(interfaces.SheetPayload{
			Rates: ratesCSV, Stones: stonesCSV, Slabs: slabsCSV,
		}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Settings{}), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Settings, at time.Time) error {
				if s.GoldRate24K != 15000 || len(s.StoneTypes) != 1 {
					t.Fatalf("unexpected merged settings: %+v", s)
				}
				if at.IsZero() {
					t.Fatalf("expected synced_at stamp")
				}
				return nil
			},
		)

		merged, at, err := uc.Sync(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if merged.GoldRate24K != 15000 || at.IsZero() {
			t.Fatalf("unexpected sync result: %+v at %v", merged, at)
		}
		if len(merged.StoneTypes) != 1 || len(merged.StoneTypes[0].Slabs) != 1 {
			t.Fatalf("expected slabs attached, got %+v", merged.StoneTypes)
		}
	})

	t.Run("save failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		source := mock_interfaces.NewMockISheetSource(ctrl)
		uc := NewSettingsUseCase(repo, source, zap.NewNop())

		repo.EXPECT().Load(gomock.Any()).Return(entities.DefaultSettings(), time.Time{}, nil)
		source.EXPECT().FetchAll(gomock.Any()).Return(interfaces.SheetPayload{Rates: ratesCSV}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db"))

		_, _, err := uc.Sync(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
