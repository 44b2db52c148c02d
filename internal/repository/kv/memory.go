package kv

import (
	"context"
	"encoding/json"
	"sync"

	"chronopulse/internal/domain"
	"chronopulse/internal/errors"
	"chronopulse/internal/logging"
)

// MemoryRepository implements Repository on a plain map. It keeps the
// same JSON round-trip as the SQLite store so serialization behavior is
// exercised in tests too. Safe for concurrent use, since persistence
// writes arrive from background goroutines.
type MemoryRepository struct {
	mu    sync.Mutex
	data  map[string]string
	seeds SeedDefaults

	// FailWrites makes every Save call return a storage error, for
	// exercising the swallowed-write path.
	FailWrites bool
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		data:  make(map[string]string),
		seeds: DefaultSeeds(),
	}
}

// NewMemoryRepositoryWithSeeds creates an in-memory repository with
// custom seed names.
func NewMemoryRepositoryWithSeeds(seeds SeedDefaults) *MemoryRepository {
	return &MemoryRepository{
		data:  make(map[string]string),
		seeds: seeds,
	}
}

// Close is a no-op for the in-memory repository.
func (r *MemoryRepository) Close() error {
	return nil
}

// Corrupt overwrites the stored value for key with text that is not
// valid JSON, for exercising the corrupt-read fallback.
func (r *MemoryRepository) Corrupt(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = "{not json"
}

// Raw returns the stored serialized value for key, for assertions.
func (r *MemoryRepository) Raw(key string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	raw, ok := r.data[key]
	return raw, ok
}

func (r *MemoryRepository) save(key string, value interface{}) error {
	if r.FailWrites {
		return errors.NewStorageError("save "+key, nil)
	}
	data, err := json.Marshal(value)
	if err != nil {
		return errors.NewStorageError("serialize "+key, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = string(data)
	return nil
}

func (r *MemoryRepository) load(key string, dest interface{}) bool {
	r.mu.Lock()
	raw, ok := r.data[key]
	r.mu.Unlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		logging.Debugf("corrupt value for %s, falling back to default: %v\n", key, err)
		return false
	}
	return true
}

// SaveEntries persists the time entry collection.
func (r *MemoryRepository) SaveEntries(_ context.Context, entries []domain.TimeEntry) error {
	return r.save(KeyTimeEntries, entries)
}

// LoadEntries loads the time entry collection, or an empty one.
func (r *MemoryRepository) LoadEntries(_ context.Context) []domain.TimeEntry {
	var entries []domain.TimeEntry
	if !r.load(KeyTimeEntries, &entries) || entries == nil {
		return []domain.TimeEntry{}
	}
	return entries
}

// SaveProjects persists the project collection.
func (r *MemoryRepository) SaveProjects(_ context.Context, projects []domain.Project) error {
	return r.save(KeyProjects, projects)
}

// LoadProjects loads the project collection, seeding when empty.
func (r *MemoryRepository) LoadProjects(_ context.Context) []domain.Project {
	var projects []domain.Project
	if !r.load(KeyProjects, &projects) || len(projects) == 0 {
		return r.seeds.SeedProjects()
	}
	return projects
}

// SaveActivities persists the activity collection.
func (r *MemoryRepository) SaveActivities(_ context.Context, activities []domain.Activity) error {
	return r.save(KeyActivities, activities)
}

// LoadActivities loads the activity collection, seeding when empty.
func (r *MemoryRepository) LoadActivities(_ context.Context) []domain.Activity {
	var activities []domain.Activity
	if !r.load(KeyActivities, &activities) || len(activities) == 0 {
		return r.seeds.SeedActivities()
	}
	return activities
}

// SaveSettings persists the settings record and mirrors the PIN.
func (r *MemoryRepository) SaveSettings(_ context.Context, settings domain.AppSettings) error {
	if err := r.save(KeySettings, settings); err != nil {
		return err
	}
	return r.save(KeyPIN, settings.PIN)
}

// LoadSettings loads the settings record, or the defaults.
func (r *MemoryRepository) LoadSettings(_ context.Context) domain.AppSettings {
	settings := domain.DefaultSettings()
	r.load(KeySettings, &settings)
	return settings
}
