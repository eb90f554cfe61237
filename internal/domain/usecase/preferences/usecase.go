package preferences

import (
	"context"

	"taskboard/internal/domain/model"
)

// UseCase restores and remembers the board view between sessions.
type UseCase interface {
	Load(ctx context.Context) model.ViewPreferences
	Save(ctx context.Context, prefs model.ViewPreferences)
}
