// Package kv implements the persistence adapter: a durable key-value
// store holding one JSON document per collection. Loads never fail from
// the caller's perspective; absent or corrupt values fall back to the
// collection's default so the in-memory state stays authoritative.
package kv

import (
	"context"

	"chronopulse/internal/domain"
)

// Storage keys, one per persisted collection. The PIN is co-located with
// the settings record but mirrored under its own key.
const (
	KeyTimeEntries = "chronopulse_time_entries"
	KeyProjects    = "chronopulse_projects"
	KeyActivities  = "chronopulse_activities"
	KeySettings    = "chronopulse_settings"
	KeyPIN         = "chronopulse_pin"
)

// SeedDefaults are the records used to populate empty collections on
// first load so the app is usable before any setup.
type SeedDefaults struct {
	ProjectName  string
	ActivityName string
}

// DefaultSeeds returns the stock seed names.
func DefaultSeeds() SeedDefaults {
	return SeedDefaults{
		ProjectName:  "Standard Project",
		ActivityName: "Standard Work",
	}
}

// SeedProjects returns the project collection used when none is persisted.
func (s SeedDefaults) SeedProjects() []domain.Project {
	return []domain.Project{{ID: "1", Name: s.ProjectName, Active: true}}
}

// SeedActivities returns the activity collection used when none is persisted.
func (s SeedDefaults) SeedActivities() []domain.Activity {
	return []domain.Activity{{ID: "1", Name: s.ActivityName, Active: true}}
}

// Repository defines the interface for collection persistence.
//
// Save methods report errors so callers can log them, but callers are
// expected to treat failures as non-fatal. Load methods never return an
// error: a missing or unreadable value yields the collection default.
type Repository interface {
	SaveEntries(ctx context.Context, entries []domain.TimeEntry) error
	LoadEntries(ctx context.Context) []domain.TimeEntry

	SaveProjects(ctx context.Context, projects []domain.Project) error
	LoadProjects(ctx context.Context) []domain.Project

	SaveActivities(ctx context.Context, activities []domain.Activity) error
	LoadActivities(ctx context.Context) []domain.Activity

	SaveSettings(ctx context.Context, settings domain.AppSettings) error
	LoadSettings(ctx context.Context) domain.AppSettings

	Close() error
}
