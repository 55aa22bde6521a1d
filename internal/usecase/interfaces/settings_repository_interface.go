package interfaces

import (
	"context"
	"time"

	"joalheria_xpto/internal/domain/entities"
)

//go:generate mockgen -source=settings_repository_interface.go -destination=mocks/settings_repository_mock.go -package=mock_interfaces

// ISettingsRepository persists the single Settings value plus the last
// successful sync timestamp between sessions.
//
// Load always returns a usable Settings: when nothing is stored, or the
// stored blob fails its structural check, implementations fall back to
// entities.DefaultSettings() with a zero syncedAt instead of erroring.
type ISettingsRepository interface {
	Load(ctx context.Context) (settings entities.Settings, syncedAt time.Time, err error)
	Save(ctx context.Context, settings entities.Settings, syncedAt time.Time) error
}
