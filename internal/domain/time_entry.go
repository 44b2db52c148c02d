package domain

import (
	"time"
)

// TimeEntry represents one recorded work session in the domain model.
// This is a pure domain model without storage-specific concerns.
// An entry with no EndTime is open (the active session).
type TimeEntry struct {
	ID         string     `json:"id"`
	ProjectID  string     `json:"projectId"`
	ActivityID string     `json:"activityId"`
	StartTime  time.Time  `json:"startTime"`
	EndTime    *time.Time `json:"endTime,omitempty"`
	Note       string     `json:"note,omitempty"`
	Completed  bool       `json:"completed"`
}

// NewTimeEntry creates a new open TimeEntry for the given project and activity.
func NewTimeEntry(id, projectID, activityID string, startTime time.Time, note string) TimeEntry {
	return TimeEntry{
		ID:         id,
		ProjectID:  projectID,
		ActivityID: activityID,
		StartTime:  startTime,
		Note:       note,
	}
}

// IsOpen returns true if the entry is currently open (no end time).
func (te TimeEntry) IsOpen() bool {
	return te.EndTime == nil
}

// Close sets the end time and marks the entry completed.
func (te TimeEntry) Close(endTime time.Time) TimeEntry {
	te.EndTime = &endTime
	te.Completed = true
	return te
}

// Duration returns the duration of the entry.
// If the entry is still open, it returns the duration up to now.
func (te TimeEntry) Duration() time.Duration {
	if te.EndTime == nil {
		return time.Since(te.StartTime)
	}
	return te.EndTime.Sub(te.StartTime)
}

// StartedOn returns the calendar day the entry belongs to, truncated to
// local midnight. An entry is always bucketed under its start day even
// when it ends on the next day.
func (te TimeEntry) StartedOn() time.Time {
	return DateOf(te.StartTime)
}

// IsValid checks if the time entry has valid data.
func (te TimeEntry) IsValid() bool {
	if te.ProjectID == "" || te.ActivityID == "" {
		return false
	}
	if te.StartTime.IsZero() {
		return false
	}
	if te.EndTime != nil && te.EndTime.Before(te.StartTime) {
		return false
	}
	return true
}

// DateOf truncates a timestamp to local midnight of its calendar day.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two timestamps fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
