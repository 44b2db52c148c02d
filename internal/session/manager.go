// Package session owns the live collections (entries, projects,
// activities, settings) and is their sole mutator. It enforces the
// at-most-one-open-entry invariant, recomputes derived state after every
// entry mutation and hands each change to the persistence adapter on a
// best-effort basis.
package session

import (
	"context"
	"sync"
	"time"

	"chronopulse/internal/config"
	"chronopulse/internal/domain"
	"chronopulse/internal/errors"
	"chronopulse/internal/logging"
	"chronopulse/internal/repository/kv"
	"chronopulse/internal/stats"
	"chronopulse/internal/validation"

	"github.com/google/uuid"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// IDGenerator produces globally-unique opaque string ids.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator is the default IDGenerator, backed by random UUIDs.
type UUIDGenerator struct{}

// NewID returns a fresh UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Manager maintains the in-memory collections and mediates between the
// pure accounting functions and the persistence adapter.
//
// Manager is not safe for concurrent use: all mutations are expected to
// arrive from the single logical thread of UI event handling. Background
// persistence writes operate on snapshot copies only.
type Manager struct {
	repo kv.Repository
	ids  IDGenerator

	entryValidator *validation.EntryValidator
	pinValidator   *validation.PINValidator

	entries    []domain.TimeEntry
	projects   []domain.Project
	activities []domain.Activity
	settings   domain.AppSettings

	active     *domain.TimeEntry
	monthStats domain.MonthlyStats
	unfinished []domain.TimeEntry

	onRefresh    func()
	writeTimeout time.Duration
	writes       sync.WaitGroup
}

// NewManager creates a Manager, loading all four collections from the
// repository and computing the initial derived state. A nil cfg uses
// defaults.
func NewManager(repo kv.Repository, cfg *config.Config) *Manager {
	validator := validation.NewValidator()
	writeTimeout := 5 * time.Second
	if cfg != nil {
		validator = validation.NewValidatorWithConfig(cfg)
		writeTimeout = cfg.GetWriteTimeout()
	}

	ctx := context.Background()
	m := &Manager{
		repo:           repo,
		ids:            UUIDGenerator{},
		entryValidator: validation.NewEntryValidatorWithValidator(validator),
		pinValidator:   validation.NewPINValidatorWithValidator(validator),
		entries:        repo.LoadEntries(ctx),
		projects:       repo.LoadProjects(ctx),
		activities:     repo.LoadActivities(ctx),
		settings:       repo.LoadSettings(ctx),
		writeTimeout:   writeTimeout,
	}
	m.recompute()
	return m
}

// SetIDGenerator replaces the id generator; used by tests for
// deterministic ids.
func (m *Manager) SetIDGenerator(ids IDGenerator) {
	m.ids = ids
}

// SetRefreshFunc registers a callback invoked after every recompute so
// the presentation layer can re-render from updated state.
func (m *Manager) SetRefreshFunc(fn func()) {
	m.onRefresh = fn
}

// Flush waits for in-flight persistence writes to finish. Call before
// process exit; mutations themselves never wait on it.
func (m *Manager) Flush() {
	m.writes.Wait()
}

// ========== Entry lifecycle ==========

// StartEntry opens a new entry at the current time. An already-open
// entry is implicitly closed first, so at most one open entry exists
// when this returns.
func (m *Manager) StartEntry(projectID, activityID, note string) (domain.TimeEntry, error) {
	if err := m.entryValidator.ValidateEntryStart(projectID, activityID, note); err != nil {
		return domain.TimeEntry{}, errors.NewValidationError("invalid entry", err)
	}

	now := timeNow()

	// Close the open session, if any, before opening the next one. Using
	// the same instant for the implicit close and the new start keeps
	// prev.EndTime <= next.StartTime.
	for i := range m.entries {
		if m.entries[i].EndTime == nil {
			m.entries[i] = m.entries[i].Close(now)
		}
	}

	entry := domain.NewTimeEntry(m.ids.NewID(), projectID, activityID, now, note)
	m.entries = append(m.entries, entry)

	m.persistEntries()
	m.recompute()
	return entry, nil
}

// EndEntry closes the entry with the given id at the current time.
// Closing an already-closed entry is a no-op; an unknown id reports a
// NotFound error without mutating anything.
func (m *Manager) EndEntry(id string) error {
	for i := range m.entries {
		if m.entries[i].ID != id {
			continue
		}
		if m.entries[i].EndTime != nil {
			return nil
		}
		m.entries[i] = m.entries[i].Close(timeNow())
		m.persistEntries()
		m.recompute()
		return nil
	}
	return errors.NewNotFoundError("time entry", id)
}

// DeleteEntry removes the entry with the given id.
func (m *Manager) DeleteEntry(id string) error {
	for i := range m.entries {
		if m.entries[i].ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			m.persistEntries()
			m.recompute()
			return nil
		}
	}
	return errors.NewNotFoundError("time entry", id)
}

// AddEntryWithTimes inserts a fully-closed historical entry. It does not
// interact with the open-entry invariant: a closed entry may be added
// while another entry is open.
func (m *Manager) AddEntryWithTimes(projectID, activityID string, startTime, endTime time.Time, note string) (domain.TimeEntry, error) {
	if err := m.entryValidator.ValidateHistoricalEntry(projectID, activityID, startTime, endTime, note); err != nil {
		return domain.TimeEntry{}, errors.NewValidationError("invalid entry", err)
	}

	entry := domain.NewTimeEntry(m.ids.NewID(), projectID, activityID, startTime, note).Close(endTime)
	m.entries = append(m.entries, entry)

	m.persistEntries()
	m.recompute()
	return entry, nil
}

// ========== Projects and activities ==========

// AddProject appends a new active project with a fresh id.
func (m *Manager) AddProject(name string) (domain.Project, error) {
	cleaned, err := m.entryValidator.ValidateTagName("project_name", name)
	if err != nil {
		return domain.Project{}, errors.NewValidationError("invalid project name", err)
	}

	project := domain.NewProject(m.ids.NewID(), cleaned)
	m.projects = append(m.projects, project)
	m.persistProjects()
	return project, nil
}

// UpdateProject replaces the name and active flag of the project with
// the given id. Projects are never deleted, only deactivated.
func (m *Manager) UpdateProject(id, name string, active bool) error {
	cleaned, err := m.entryValidator.ValidateTagName("project_name", name)
	if err != nil {
		return errors.NewValidationError("invalid project name", err)
	}

	for i := range m.projects {
		if m.projects[i].ID == id {
			m.projects[i].Name = cleaned
			m.projects[i].Active = active
			m.persistProjects()
			return nil
		}
	}
	return errors.NewNotFoundError("project", id)
}

// AddActivity appends a new active activity with a fresh id.
func (m *Manager) AddActivity(name string) (domain.Activity, error) {
	cleaned, err := m.entryValidator.ValidateTagName("activity_name", name)
	if err != nil {
		return domain.Activity{}, errors.NewValidationError("invalid activity name", err)
	}

	activity := domain.NewActivity(m.ids.NewID(), cleaned)
	m.activities = append(m.activities, activity)
	m.persistActivities()
	return activity, nil
}

// UpdateActivity replaces the name and active flag of the activity with
// the given id.
func (m *Manager) UpdateActivity(id, name string, active bool) error {
	cleaned, err := m.entryValidator.ValidateTagName("activity_name", name)
	if err != nil {
		return errors.NewValidationError("invalid activity name", err)
	}

	for i := range m.activities {
		if m.activities[i].ID == id {
			m.activities[i].Name = cleaned
			m.activities[i].Active = active
			m.persistActivities()
			return nil
		}
	}
	return errors.NewNotFoundError("activity", id)
}

// ========== Settings and PIN ==========

// UpdateSettings replaces the settings record wholesale.
func (m *Manager) UpdateSettings(settings domain.AppSettings) {
	m.settings = settings
	m.persistSettings()
}

// SetPIN stores the pin and enables the gate.
//
// The pin is kept in cleartext: it gates casual access to a local
// single-user app and is not a security boundary.
func (m *Manager) SetPIN(pin string) error {
	if err := m.pinValidator.ValidatePIN(pin); err != nil {
		return errors.NewValidationError("invalid PIN", err)
	}
	m.settings.PIN = pin
	m.settings.PINEnabled = true
	m.persistSettings()
	return nil
}

// CheckPIN compares pin against the stored one.
func (m *Manager) CheckPIN(pin string) bool {
	return m.settings.PIN == pin
}

// RemovePIN clears the pin and disables the gate.
func (m *Manager) RemovePIN() {
	m.settings.PIN = ""
	m.settings.PINEnabled = false
	m.persistSettings()
}

// MarkBackedUp stamps the last-backup time. The actual upload is a stub;
// only the bookkeeping exists.
func (m *Manager) MarkBackedUp() domain.AppSettings {
	now := timeNow()
	m.settings.LastBackup = &now
	m.persistSettings()
	return m.settings
}

// ========== Read accessors ==========

// Entries returns a copy of the entry log.
func (m *Manager) Entries() []domain.TimeEntry {
	out := make([]domain.TimeEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Projects returns a copy of the project collection.
func (m *Manager) Projects() []domain.Project {
	out := make([]domain.Project, len(m.projects))
	copy(out, m.projects)
	return out
}

// ActiveProjects returns only the projects selectable for new entries.
func (m *Manager) ActiveProjects() []domain.Project {
	out := make([]domain.Project, 0)
	for _, p := range m.projects {
		if p.Active {
			out = append(out, p)
		}
	}
	return out
}

// Activities returns a copy of the activity collection.
func (m *Manager) Activities() []domain.Activity {
	out := make([]domain.Activity, len(m.activities))
	copy(out, m.activities)
	return out
}

// ActiveActivities returns only the activities selectable for new entries.
func (m *Manager) ActiveActivities() []domain.Activity {
	out := make([]domain.Activity, 0)
	for _, a := range m.activities {
		if a.Active {
			out = append(out, a)
		}
	}
	return out
}

// Settings returns the current settings record.
func (m *Manager) Settings() domain.AppSettings {
	return m.settings
}

// ActiveEntry returns the open entry, or nil when no session is running.
func (m *Manager) ActiveEntry() *domain.TimeEntry {
	if m.active == nil {
		return nil
	}
	entry := *m.active
	return &entry
}

// CurrentMonthStats returns the statistics for the current calendar month.
func (m *Manager) CurrentMonthStats() domain.MonthlyStats {
	return m.monthStats
}

// UnfinishedSessions returns the open entries left over from previous days.
func (m *Manager) UnfinishedSessions() []domain.TimeEntry {
	out := make([]domain.TimeEntry, len(m.unfinished))
	copy(out, m.unfinished)
	return out
}

// HasUnfinishedSessions reports whether any session was left open on a
// previous day.
func (m *Manager) HasUnfinishedSessions() bool {
	return len(m.unfinished) > 0
}

// FilterEntries returns the entries for a month, optionally narrowed by
// project and/or activity id. This is the query behind export and
// reporting views.
func (m *Manager) FilterEntries(month time.Month, year int, projectID, activityID string) []domain.TimeEntry {
	return stats.Filter(m.entries, month, year, projectID, activityID)
}

// DailyStats returns the statistics for one calendar day.
func (m *Manager) DailyStats(date time.Time) domain.DailyStats {
	return stats.Daily(m.entries, date)
}

// MonthlyStats returns the statistics for an arbitrary month.
func (m *Manager) MonthlyStats(month time.Month, year int) domain.MonthlyStats {
	return stats.Monthly(m.entries, month, year)
}

// ProjectName resolves a project id to its name. Dangling references
// resolve to the "unknown" sentinel; integrity is not assumed.
func (m *Manager) ProjectName(id string) string {
	for _, p := range m.projects {
		if p.ID == id {
			return p.Name
		}
	}
	return domain.UnknownName
}

// ActivityName resolves an activity id to its name, or "unknown".
func (m *Manager) ActivityName(id string) string {
	for _, a := range m.activities {
		if a.ID == id {
			return a.Name
		}
	}
	return domain.UnknownName
}

// ========== Internals ==========

// recompute re-derives the active entry, the current-month statistics
// and the unfinished-session list from the entry log, then signals the
// presentation layer. Called after every entry mutation.
func (m *Manager) recompute() {
	now := timeNow()
	m.active = stats.Active(m.entries)
	m.monthStats = stats.Monthly(m.entries, now.Month(), now.Year())
	m.unfinished = stats.Unfinished(m.entries)

	if m.onRefresh != nil {
		m.onRefresh()
	}
}

func (m *Manager) persistEntries() {
	snapshot := make([]domain.TimeEntry, len(m.entries))
	copy(snapshot, m.entries)
	m.persist("entries", func(ctx context.Context) error {
		return m.repo.SaveEntries(ctx, snapshot)
	})
}

func (m *Manager) persistProjects() {
	snapshot := make([]domain.Project, len(m.projects))
	copy(snapshot, m.projects)
	m.persist("projects", func(ctx context.Context) error {
		return m.repo.SaveProjects(ctx, snapshot)
	})
}

func (m *Manager) persistActivities() {
	snapshot := make([]domain.Activity, len(m.activities))
	copy(snapshot, m.activities)
	m.persist("activities", func(ctx context.Context) error {
		return m.repo.SaveActivities(ctx, snapshot)
	})
}

func (m *Manager) persistSettings() {
	snapshot := m.settings
	m.persist("settings", func(ctx context.Context) error {
		return m.repo.SaveSettings(ctx, snapshot)
	})
}

// persist runs a write in the background. Failures are logged and
// swallowed: the in-memory state stays authoritative for the session,
// and a crash before the write lands loses at most that mutation.
func (m *Manager) persist(what string, write func(context.Context) error) {
	m.writes.Add(1)
	go func() {
		defer m.writes.Done()
		ctx, cancel := context.WithTimeout(context.Background(), m.writeTimeout)
		defer cancel()
		if err := write(ctx); err != nil {
			logging.Errorf("chronopulse: persist %s: %v\n", what, err)
		}
	}()
}
