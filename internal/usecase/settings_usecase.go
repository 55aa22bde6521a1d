package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"joalheria_xpto/internal/domain/entities"
	"joalheria_xpto/internal/sheet"
	"joalheria_xpto/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidSettings = errors.New("invalid settings")
	ErrSyncFailed      = errors.New("price sheet sync failed")
)

// ISettingsUseCase manages the single global pricing configuration.
//
// Update replaces the settings wholesale from a user edit; Sync refreshes
// them from the external price sheet. Both produce a fresh Settings value
// with the derived gold rates recomputed, and both persist before returning,
// so readers always see either the old or the new complete value.
type ISettingsUseCase interface {
	Get(ctx context.Context) (entities.Settings, time.Time, error)
	Update(ctx context.Context, s entities.Settings) (entities.Settings, time.Time, error)
	Sync(ctx context.Context) (entities.Settings, time.Time, error)
}

type SettingsUseCase struct {
	repo   interfaces.ISettingsRepository
	source interfaces.ISheetSource
	log    *zap.Logger
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository, source interfaces.ISheetSource, log *zap.Logger) *SettingsUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &SettingsUseCase{repo: repo, source: source, log: log}
}

func (u *SettingsUseCase) Get(ctx context.Context) (entities.Settings, time.Time, error) {
	return u.repo.Load(ctx)
}

func (u *SettingsUseCase) Update(ctx context.Context, s entities.Settings) (entities.Settings, time.Time, error) {
	if err := s.Validate(); err != nil {
		return entities.Settings{}, time.Time{}, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	// GoldRates is derived state; whatever the caller sent is discarded.
	s = s.Clone()
	s.RecomputeGoldRates()

	// A direct edit preserves the last sync timestamp: only Sync moves it.
	_, syncedAt, err := u.repo.Load(ctx)
	if err != nil {
		return entities.Settings{}, time.Time{}, err
	}
	if err := u.repo.Save(ctx, s, syncedAt); err != nil {
		return entities.Settings{}, time.Time{}, err
	}

	u.log.Info("settings updated",
		zap.Float64("gold_rate_24k", s.GoldRate24K),
		zap.Int("stone_types", len(s.StoneTypes)))
	return s, syncedAt, nil
}

func (u *SettingsUseCase) Sync(ctx context.Context) (entities.Settings, time.Time, error) {
	current, _, err := u.repo.Load(ctx)
	if err != nil {
		return entities.Settings{}, time.Time{}, err
	}

	// All three tabs must fetch successfully before any merging starts; a
	// failed fetch leaves the prior settings untouched.
	payload, err := u.source.FetchAll(ctx)
	if err != nil {
		u.log.Warn("price sheet fetch failed", zap.Error(err))
		return entities.Settings{}, time.Time{}, fmt.Errorf("%w: %v", ErrSyncFailed, err)
	}

	merged := sheet.MergeSettings(current, payload.Rates, payload.Stones, payload.Slabs)
	syncedAt := time.Now().UTC()
	if err := u.repo.Save(ctx, merged, syncedAt); err != nil {
		return entities.Settings{}, time.Time{}, err
	}

	u.log.Info("settings synced from price sheet",
		zap.Float64("gold_rate_24k", merged.GoldRate24K),
		zap.Int("stone_types", len(merged.StoneTypes)),
		zap.Time("synced_at", syncedAt))
	return merged, syncedAt, nil
}
