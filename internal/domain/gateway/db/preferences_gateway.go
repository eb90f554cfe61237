package db

import (
	"context"

	"taskboard/internal/domain/model"
)

// PreferencesGateway persists the board view state per profile
type PreferencesGateway interface {
	// Load returns the stored preferences; the zero value when nothing is stored
	Load(ctx context.Context, profile string) (model.ViewPreferences, error)

	// Save stores the preferences, replacing previous ones
	Save(ctx context.Context, profile string, prefs model.ViewPreferences) error

	// Health reports the state of the backing store
	Health(ctx context.Context) model.ComponentHealthStatus
}
