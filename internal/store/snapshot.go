// Package store persists the report state as a single JSON snapshot in
// a local SQLite database. There is exactly one logical record, written
// best-effort after every state change and read once at startup.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"quickreport/internal/logging"
	"quickreport/internal/report"
)

// snapshotKey is the fixed storage key the snapshot lives under. The
// value is a schema version marker; bumping it orphans old snapshots
// instead of corrupting them.
const snapshotKey = "quick_report_v4"

// SnapshotStore owns the SQLite handle for snapshot persistence.
type SnapshotStore struct {
	db   *sql.DB
	mu   sync.Mutex
	path string
}

// Open initializes the snapshot database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*SnapshotStore, error) {
	logging.Store("Opening snapshot store at %s", path)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		logging.Get(logging.CategoryStore).Debug("failed to set busy_timeout: %v", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		logging.Get(logging.CategoryStore).Debug("failed to set journal_mode=WAL: %v", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS snapshots (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create snapshot schema: %w", err)
	}

	return &SnapshotStore{db: db, path: path}, nil
}

// Load reads the persisted snapshot. ok is false when no snapshot
// exists or the stored payload does not parse; a corrupt snapshot is
// logged and discarded rather than failing startup.
func (s *SnapshotStore) Load() (state report.State, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var value string
	row := s.db.QueryRow(`SELECT value FROM snapshots WHERE key = ?`, snapshotKey)
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return report.State{}, false, nil
		}
		return report.State{}, false, fmt.Errorf("failed to read snapshot: %w", err)
	}

	if err := json.Unmarshal([]byte(value), &state); err != nil {
		logging.StoreError("discarding corrupt snapshot: %v", err)
		return report.State{}, false, nil
	}

	return coerce(state), true, nil
}

// Save writes the snapshot, replacing any previous one.
func (s *SnapshotStore) Save(state report.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO snapshots (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		snapshotKey, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *SnapshotStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// coerce repairs snapshots written by older versions: unknown markets
// collapse to ML, missing collections become their smallest valid
// shape. Scalar fields added over time already zero-value correctly on
// unmarshal.
func coerce(state report.State) report.State {
	if state.Items == nil {
		state.Items = []report.CampaignItem{}
	}
	for i := range state.Items {
		if !state.Items[i].Market.Valid() {
			state.Items[i].Market = report.MarketML
		}
		if len(state.Items[i].Notes) == 0 {
			state.Items[i].Notes = []string{""}
		}
	}
	if state.ProductCatalog == nil {
		state.ProductCatalog = []string{}
	}
	return state
}
