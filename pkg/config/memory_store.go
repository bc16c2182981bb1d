package config

import (
	"fmt"
	"sort"
	"sync"
)

// MemoryStore is an in-memory StoreInterface used when SQLite is
// unavailable and in tests. Nothing survives the process.
type MemoryStore struct {
	mutex    sync.RWMutex
	presets  []RequestPreset
	settings Settings
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// AddPreset saves a new request preset
func (ms *MemoryStore) AddPreset(p RequestPreset) error {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()
	for _, existing := range ms.presets {
		if existing.ID == p.ID {
			return fmt.Errorf("preset %q already exists", p.ID)
		}
	}
	ms.presets = append(ms.presets, p)
	sort.Slice(ms.presets, func(i, j int) bool { return ms.presets[i].Name < ms.presets[j].Name })
	return nil
}

// GetAll returns all presets ordered by name
func (ms *MemoryStore) GetAll() []RequestPreset {
	ms.mutex.RLock()
	defer ms.mutex.RUnlock()
	out := make([]RequestPreset, len(ms.presets))
	copy(out, ms.presets)
	return out
}

// Len returns the number of saved presets
func (ms *MemoryStore) Len() int {
	ms.mutex.RLock()
	defer ms.mutex.RUnlock()
	return len(ms.presets)
}

// Get returns the preset at a specific index
func (ms *MemoryStore) Get(index int) (RequestPreset, bool) {
	presets := ms.GetAll()
	if index < 0 || index >= len(presets) {
		return RequestPreset{}, false
	}
	return presets[index], true
}

// GetWithError returns the preset at a specific index with error context
func (ms *MemoryStore) GetWithError(index int) (RequestPreset, error) {
	presets := ms.GetAll()
	if index < 0 || index >= len(presets) {
		return RequestPreset{}, fmt.Errorf("%w: index %d out of bounds (length %d)", ErrPresetNotFound, index, len(presets))
	}
	return presets[index], nil
}

// GetPresetByID returns the preset with the given ID
func (ms *MemoryStore) GetPresetByID(id string) (RequestPreset, bool) {
	ms.mutex.RLock()
	defer ms.mutex.RUnlock()
	for _, p := range ms.presets {
		if p.ID == id {
			return p, true
		}
	}
	return RequestPreset{}, false
}

// DeletePreset removes a preset by ID
func (ms *MemoryStore) DeletePreset(id string) error {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()
	for i, p := range ms.presets {
		if p.ID == id {
			ms.presets = append(ms.presets[:i], ms.presets[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: id %q", ErrPresetNotFound, id)
}

// Settings returns the in-memory settings
func (ms *MemoryStore) Settings() Settings {
	ms.mutex.RLock()
	defer ms.mutex.RUnlock()
	return ms.settings
}

// SaveSettings stores the settings in memory
func (ms *MemoryStore) SaveSettings(s Settings) error {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()
	ms.settings = s
	return nil
}

// Close is a no-op for the in-memory store
func (ms *MemoryStore) Close() error {
	return nil
}
