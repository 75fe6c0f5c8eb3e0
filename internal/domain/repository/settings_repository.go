package repository

import "context"

// SettingsRepository reads the key/value scheduling configuration.
// The store is read-only from the orchestrator's perspective.
type SettingsRepository interface {
	// GetValue returns the value for a single key, or errors.ErrSettingNotFound
	// when the key has no row.
	GetValue(ctx context.Context, key string) (string, error)
	// GetValues returns the values for the given keys in one batched lookup.
	// Absent keys are simply missing from the returned map.
	GetValues(ctx context.Context, keys []string) (map[string]string, error)
}
