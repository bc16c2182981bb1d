package config

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"studeploy/pkg/logging"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists request presets and client settings using SQLite
type SQLiteStore struct {
	db     *sql.DB
	mutex  sync.RWMutex
	dbPath string
}

// NewSQLiteStore creates and initializes a SQLite-backed store under the
// user's home directory
func NewSQLiteStore() (*SQLiteStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".studeploy")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	return NewSQLiteStoreAt(filepath.Join(configDir, "studeploy.db"))
}

// NewSQLiteStoreAt opens a store at an explicit database path.
func NewSQLiteStoreAt(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{
		db:     db,
		dbPath: dbPath,
	}

	if err := store.initializeSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database schema: %w", err)
	}

	logging.LogDebug("SQLite store initialized at: %s", dbPath)
	return store, nil
}

// initializeSchema creates the database tables
func (cs *SQLiteStore) initializeSchema() error {
	schema := `
	-- Saved deployment request presets
	CREATE TABLE IF NOT EXISTS presets (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		cpu REAL NOT NULL,
		memory INTEGER NOT NULL,
		storage INTEGER NOT NULL
	);

	-- Single-row client settings
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_presets_name ON presets(name);
	`

	_, err := cs.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

// Close closes the database connection
func (cs *SQLiteStore) Close() error {
	if cs.db != nil {
		return cs.db.Close()
	}
	return nil
}

// AddPreset saves a new request preset
func (cs *SQLiteStore) AddPreset(p RequestPreset) error {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()

	query := `
		INSERT INTO presets (id, name, cpu, memory, storage)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := cs.db.Exec(query, p.ID, p.Name, p.CPU, p.Memory, p.Storage)
	if err != nil {
		return fmt.Errorf("failed to add preset: %w", err)
	}

	logging.LogDebug("Added preset: %s (%s)", p.ID, p.Name)
	return nil
}

// GetAll returns all presets ordered by name
func (cs *SQLiteStore) GetAll() []RequestPreset {
	cs.mutex.RLock()
	defer cs.mutex.RUnlock()

	query := `SELECT id, name, cpu, memory, storage FROM presets ORDER BY name`

	rows, err := cs.db.Query(query)
	if err != nil {
		logging.LogError("Failed to query presets: %v", err)
		return []RequestPreset{}
	}
	defer rows.Close()

	var presets []RequestPreset
	for rows.Next() {
		var p RequestPreset
		if err := rows.Scan(&p.ID, &p.Name, &p.CPU, &p.Memory, &p.Storage); err != nil {
			logging.LogError("Failed to scan preset row: %v", err)
			continue
		}
		presets = append(presets, p)
	}

	return presets
}

// Len returns the number of saved presets
func (cs *SQLiteStore) Len() int {
	cs.mutex.RLock()
	defer cs.mutex.RUnlock()

	var count int
	if err := cs.db.QueryRow("SELECT COUNT(*) FROM presets").Scan(&count); err != nil {
		logging.LogError("Failed to count presets: %v", err)
		return 0
	}

	return count
}

// Get returns the preset at a specific index (for table row mapping)
func (cs *SQLiteStore) Get(index int) (RequestPreset, bool) {
	presets := cs.GetAll()
	if index < 0 || index >= len(presets) {
		return RequestPreset{}, false
	}
	return presets[index], true
}

// GetWithError returns the preset at a specific index with error context
func (cs *SQLiteStore) GetWithError(index int) (RequestPreset, error) {
	presets := cs.GetAll()
	if index < 0 || index >= len(presets) {
		return RequestPreset{}, fmt.Errorf("%w: index %d out of bounds (length %d)", ErrPresetNotFound, index, len(presets))
	}
	return presets[index], nil
}

// GetPresetByID returns the preset with the given ID
func (cs *SQLiteStore) GetPresetByID(id string) (RequestPreset, bool) {
	cs.mutex.RLock()
	defer cs.mutex.RUnlock()

	query := `SELECT id, name, cpu, memory, storage FROM presets WHERE id = ?`

	var p RequestPreset
	err := cs.db.QueryRow(query, id).Scan(&p.ID, &p.Name, &p.CPU, &p.Memory, &p.Storage)
	if err != nil {
		if err == sql.ErrNoRows {
			return RequestPreset{}, false
		}
		logging.LogError("Failed to query preset by ID: %v", err)
		return RequestPreset{}, false
	}

	return p, true
}

// DeletePreset removes a preset by ID
func (cs *SQLiteStore) DeletePreset(id string) error {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()

	result, err := cs.db.Exec("DELETE FROM presets WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete preset: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: id %q", ErrPresetNotFound, id)
	}

	logging.LogDebug("Deleted preset: %s", id)
	return nil
}

// Settings returns the persisted client settings, zero-valued when unset
func (cs *SQLiteStore) Settings() Settings {
	cs.mutex.RLock()
	defer cs.mutex.RUnlock()

	var s Settings
	err := cs.db.QueryRow(`SELECT value FROM settings WHERE key = 'server_url'`).Scan(&s.ServerURL)
	if err != nil && err != sql.ErrNoRows {
		logging.LogError("Failed to read settings: %v", err)
	}
	return s
}

// SaveSettings persists the client settings
func (cs *SQLiteStore) SaveSettings(s Settings) error {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()

	query := `
		INSERT INTO settings (key, value) VALUES ('server_url', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	if _, err := cs.db.Exec(query, s.ServerURL); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	logging.LogDebug("Saved settings (server_url=%s)", s.ServerURL)
	return nil
}
