package kv

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"chronopulse/internal/domain"
	"chronopulse/internal/errors"
	"chronopulse/internal/logging"

	_ "modernc.org/sqlite"
)

const currentVersion = 1

// SQLiteRepository implements Repository on top of a single-table
// SQLite key-value store. Each collection is one JSON document;
// timestamps travel as RFC 3339 text inside the document and come back
// as time.Time on load.
type SQLiteRepository struct {
	db    *sql.DB
	seeds SeedDefaults
}

// New opens (or creates) the SQLite store at dbPath and runs migrations.
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithSeeds(dbPath, DefaultSeeds())
}

// NewWithSeeds opens the store with custom seed names for empty collections.
func NewWithSeeds(dbPath string, seeds SeedDefaults) (*SQLiteRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dbPath != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.NewStorageError("create store directory", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open store", err)
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, errors.NewStorageError(fmt.Sprintf("exec pragma %q", p), err)
		}
	}

	r := &SQLiteRepository{db: db, seeds: seeds}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, errors.NewStorageError("migrate store", err)
	}
	return r, nil
}

// NewMemory creates an in-process SQLite store for testing.
func NewMemory() (*SQLiteRepository, error) {
	return New(":memory:")
}

// Close closes the underlying database.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) migrate() error {
	var version int
	if err := r.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		const ddl = `
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`
		if _, err := r.db.Exec(ddl); err != nil {
			return err
		}
	}

	_, err := r.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

// save serializes value as JSON and upserts it under key.
func (r *SQLiteRepository) save(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.NewStorageError(fmt.Sprintf("serialize %s", key), err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(data),
	)
	if err != nil {
		return errors.NewStorageError(fmt.Sprintf("save %s", key), err)
	}
	return nil
}

// load deserializes the value stored under key into dest. It reports
// whether dest was populated; an absent key, a read failure or corrupt
// JSON all log and leave dest untouched so the caller's default stands.
func (r *SQLiteRepository) load(ctx context.Context, key string, dest interface{}) bool {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		logging.Errorf("chronopulse: load %s: %v\n", key, err)
		return false
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		logging.Errorf("chronopulse: corrupt value for %s, falling back to default: %v\n", key, err)
		return false
	}
	return true
}

// SaveEntries persists the time entry collection.
func (r *SQLiteRepository) SaveEntries(ctx context.Context, entries []domain.TimeEntry) error {
	return r.save(ctx, KeyTimeEntries, entries)
}

// LoadEntries loads the time entry collection, or an empty one.
func (r *SQLiteRepository) LoadEntries(ctx context.Context) []domain.TimeEntry {
	var entries []domain.TimeEntry
	if !r.load(ctx, KeyTimeEntries, &entries) || entries == nil {
		return []domain.TimeEntry{}
	}
	return entries
}

// SaveProjects persists the project collection.
func (r *SQLiteRepository) SaveProjects(ctx context.Context, projects []domain.Project) error {
	return r.save(ctx, KeyProjects, projects)
}

// LoadProjects loads the project collection, seeding a default project
// when nothing usable is persisted.
func (r *SQLiteRepository) LoadProjects(ctx context.Context) []domain.Project {
	var projects []domain.Project
	if !r.load(ctx, KeyProjects, &projects) || len(projects) == 0 {
		return r.seeds.SeedProjects()
	}
	return projects
}

// SaveActivities persists the activity collection.
func (r *SQLiteRepository) SaveActivities(ctx context.Context, activities []domain.Activity) error {
	return r.save(ctx, KeyActivities, activities)
}

// LoadActivities loads the activity collection, seeding a default
// activity when nothing usable is persisted.
func (r *SQLiteRepository) LoadActivities(ctx context.Context) []domain.Activity {
	var activities []domain.Activity
	if !r.load(ctx, KeyActivities, &activities) || len(activities) == 0 {
		return r.seeds.SeedActivities()
	}
	return activities
}

// SaveSettings persists the settings record and mirrors the PIN under
// its own key so the gate can be read without decoding the full record.
func (r *SQLiteRepository) SaveSettings(ctx context.Context, settings domain.AppSettings) error {
	if err := r.save(ctx, KeySettings, settings); err != nil {
		return err
	}
	return r.save(ctx, KeyPIN, settings.PIN)
}

// LoadSettings loads the settings record, or the defaults.
func (r *SQLiteRepository) LoadSettings(ctx context.Context) domain.AppSettings {
	settings := domain.DefaultSettings()
	r.load(ctx, KeySettings, &settings)
	return settings
}
