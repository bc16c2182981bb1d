package config

import "errors"

// Sentinel error for a preset not found at index or ID
var ErrPresetNotFound = errors.New("preset not found")

// StoreInterface defines the interface for local client storage
type StoreInterface interface {
	// Preset operations
	AddPreset(p RequestPreset) error
	GetAll() []RequestPreset
	Len() int
	Get(index int) (RequestPreset, bool)
	GetWithError(index int) (RequestPreset, error)
	GetPresetByID(id string) (RequestPreset, bool)
	DeletePreset(id string) error

	// Settings operations
	Settings() Settings
	SaveSettings(s Settings) error

	Close() error
}

// NewStore creates a new local store (defaults to SQLite in the user's
// home directory)
func NewStore() (StoreInterface, error) {
	// Return an untyped nil on failure: a nil *SQLiteStore wrapped in the
	// interface would slip past callers' nil checks and panic on first use.
	store, err := NewSQLiteStore()
	if err != nil {
		return nil, err
	}
	return store, nil
}
