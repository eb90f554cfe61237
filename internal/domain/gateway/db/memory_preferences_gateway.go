package db

import (
	"context"
	"sync"

	"taskboard/internal/domain/model"
)

// MemoryPreferencesGateway keeps preferences for the life of the process.
// It is used when persistence is disabled.
type MemoryPreferencesGateway struct {
	mu    sync.Mutex
	prefs map[string]model.ViewPreferences
}

func NewMemoryPreferencesGateway() *MemoryPreferencesGateway {
	return &MemoryPreferencesGateway{prefs: make(map[string]model.ViewPreferences)}
}

func (gateway *MemoryPreferencesGateway) Load(_ context.Context, profile string) (model.ViewPreferences, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()
	return gateway.prefs[profile], nil
}

func (gateway *MemoryPreferencesGateway) Save(_ context.Context, profile string, prefs model.ViewPreferences) error {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()
	gateway.prefs[profile] = prefs
	return nil
}

func (gateway *MemoryPreferencesGateway) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusDisabled,
		Details: map[string]string{"store": "memory"},
	}
}
