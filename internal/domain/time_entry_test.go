package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestNewTimeEntry(t *testing.T) {
	startTime := time.Now()

	result := NewTimeEntry("entry-1", "proj-1", "act-1", startTime, "reviewing")

	assert.Equal(t, "entry-1", result.ID)
	assert.Equal(t, "proj-1", result.ProjectID)
	assert.Equal(t, "act-1", result.ActivityID)
	assert.Equal(t, startTime, result.StartTime)
	assert.Equal(t, "reviewing", result.Note)
	assert.Nil(t, result.EndTime)
	assert.False(t, result.Completed)
}

func TestTimeEntry_IsOpen(t *testing.T) {
	tests := []struct {
		name     string
		entry    TimeEntry
		expected bool
	}{
		{
			name: "open entry with nil end time",
			entry: TimeEntry{
				ID:        "1",
				StartTime: time.Now(),
				EndTime:   nil,
			},
			expected: true,
		},
		{
			name: "closed entry with end time",
			entry: TimeEntry{
				ID:        "1",
				StartTime: time.Now().Add(-time.Hour),
				EndTime:   timePtr(time.Now()),
				Completed: true,
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.entry.IsOpen())
		})
	}
}

func TestTimeEntry_Close(t *testing.T) {
	startTime := time.Now().Add(-time.Hour)
	endTime := time.Now()

	entry := NewTimeEntry("1", "p", "a", startTime, "")
	closed := entry.Close(endTime)

	assert.NotNil(t, closed.EndTime)
	assert.Equal(t, endTime, *closed.EndTime)
	assert.True(t, closed.Completed)
	// Close is value-based; the original is untouched
	assert.Nil(t, entry.EndTime)
}

func TestTimeEntry_Duration(t *testing.T) {
	start := time.Date(2024, 3, 5, 9, 0, 0, 0, time.Local)
	end := time.Date(2024, 3, 5, 17, 0, 0, 0, time.Local)

	closed := TimeEntry{ID: "1", StartTime: start, EndTime: &end}
	assert.Equal(t, 8*time.Hour, closed.Duration())

	open := TimeEntry{ID: "2", StartTime: time.Now().Add(-time.Minute)}
	assert.InDelta(t, time.Minute.Seconds(), open.Duration().Seconds(), 5)
}

func TestTimeEntry_StartedOn(t *testing.T) {
	start := time.Date(2024, 3, 5, 23, 50, 0, 0, time.Local)
	entry := TimeEntry{ID: "1", StartTime: start}

	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local), entry.StartedOn())
}

func TestTimeEntry_IsValid(t *testing.T) {
	now := time.Now()
	earlier := now.Add(-time.Hour)

	tests := []struct {
		name     string
		entry    TimeEntry
		expected bool
	}{
		{
			name:     "valid open entry",
			entry:    TimeEntry{ID: "1", ProjectID: "p", ActivityID: "a", StartTime: now},
			expected: true,
		},
		{
			name:     "valid closed entry",
			entry:    TimeEntry{ID: "1", ProjectID: "p", ActivityID: "a", StartTime: earlier, EndTime: &now},
			expected: true,
		},
		{
			name:     "missing project reference",
			entry:    TimeEntry{ID: "1", ActivityID: "a", StartTime: now},
			expected: false,
		},
		{
			name:     "missing activity reference",
			entry:    TimeEntry{ID: "1", ProjectID: "p", StartTime: now},
			expected: false,
		},
		{
			name:     "zero start time",
			entry:    TimeEntry{ID: "1", ProjectID: "p", ActivityID: "a"},
			expected: false,
		},
		{
			name:     "end before start",
			entry:    TimeEntry{ID: "1", ProjectID: "p", ActivityID: "a", StartTime: now, EndTime: &earlier},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.entry.IsValid())
		})
	}
}

func TestSameDay(t *testing.T) {
	tests := []struct {
		name     string
		a, b     time.Time
		expected bool
	}{
		{
			name:     "same day different times",
			a:        time.Date(2024, 3, 5, 0, 10, 0, 0, time.Local),
			b:        time.Date(2024, 3, 5, 23, 50, 0, 0, time.Local),
			expected: true,
		},
		{
			name:     "adjacent days near midnight",
			a:        time.Date(2024, 3, 5, 23, 59, 59, 0, time.Local),
			b:        time.Date(2024, 3, 6, 0, 0, 0, 0, time.Local),
			expected: false,
		},
		{
			name:     "same day-of-month different month",
			a:        time.Date(2024, 3, 5, 12, 0, 0, 0, time.Local),
			b:        time.Date(2024, 4, 5, 12, 0, 0, 0, time.Local),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SameDay(tt.a, tt.b))
		})
	}
}
