// Package stats contains the pure time-accounting functions: duration
// arithmetic, daily bucketing and status classification, monthly
// aggregation and open-session detection. No I/O, no side effects;
// callers pass entry slices in and get derived data out.
package stats

import (
	"fmt"
	"math"
	"time"

	"chronopulse/internal/domain"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// DurationSeconds returns the whole seconds between start and end,
// truncated toward zero. Ordering is not enforced; inverted arguments
// yield a negative duration and are the caller's responsibility.
func DurationSeconds(start, end time.Time) int64 {
	return int64(end.Sub(start) / time.Second)
}

// FormatDuration formats a second count as zero-padded HH:MM:SS.
// Hours are unbounded; there is no day wraparound, so 90000 seconds
// renders as "25:00:00".
func FormatDuration(seconds int64) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

// HoursRounded converts seconds to hours rounded to 2 decimal places.
func HoursRounded(seconds float64) float64 {
	return round2(seconds / 3600)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Daily computes the statistics for the calendar day of date.
//
// Entries are bucketed by the local calendar day of their StartTime; an
// entry starting at 23:50 and ending 00:10 the next day belongs entirely
// to its start day. Closed entries contribute their duration to the
// total; open entries contribute nothing but flag the day incomplete.
func Daily(entries []domain.TimeEntry, date time.Time) domain.DailyStats {
	var totalSeconds int64
	hasIncomplete := false
	count := 0

	for _, entry := range entries {
		if !domain.SameDay(entry.StartTime, date) {
			continue
		}
		count++
		if entry.EndTime != nil {
			totalSeconds += DurationSeconds(entry.StartTime, *entry.EndTime)
		} else {
			hasIncomplete = true
		}
	}

	status := domain.DayEmpty
	if count > 0 {
		if hasIncomplete {
			status = domain.DayIncomplete
		} else {
			status = domain.DayComplete
		}
	} else if !domain.DateOf(date).After(domain.DateOf(timeNow())) {
		// No entries on today or a past day means the day is missing.
		status = domain.DayMissing
	}

	return domain.DailyStats{
		Date:       date,
		TotalHours: HoursRounded(float64(totalSeconds)),
		Entries:    count,
		Status:     status,
	}
}

// Monthly computes the statistics for the given calendar month.
//
// The total accumulates each day's already-rounded hour figure converted
// back to seconds, so per-day rounding error carries into the monthly
// total. This matches the historical behavior and is asserted by tests;
// switching to exact second summation would change reported totals.
//
// Per-project and per-activity counts include only closed entries of the
// month; a day still counts as worked when its only entry is open.
func Monthly(entries []domain.TimeEntry, month time.Month, year int) domain.MonthlyStats {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	var totalSeconds float64
	daysWorked := 0

	for day := 1; day <= daysInMonth; day++ {
		dayStats := Daily(entries, time.Date(year, month, day, 0, 0, 0, 0, time.Local))
		if dayStats.Entries > 0 {
			totalSeconds += dayStats.TotalHours * 3600
			daysWorked++
		}
	}

	byProject := make(map[string]int)
	byActivity := make(map[string]int)
	for _, entry := range entries {
		if entry.StartTime.Month() != month || entry.StartTime.Year() != year {
			continue
		}
		if entry.EndTime == nil {
			continue
		}
		byProject[entry.ProjectID]++
		byActivity[entry.ActivityID]++
	}

	totalHours := HoursRounded(totalSeconds)
	avgHoursPerDay := 0.0
	if daysWorked > 0 {
		avgHoursPerDay = round2(totalHours / float64(daysWorked))
	}

	return domain.MonthlyStats{
		Month:             month,
		Year:              year,
		TotalHours:        totalHours,
		AvgHoursPerDay:    avgHoursPerDay,
		DaysWorked:        daysWorked,
		EntriesByProject:  byProject,
		EntriesByActivity: byActivity,
	}
}

// Unfinished returns the open entries whose start date is strictly
// before today. An entry left open since today is the active session,
// not an unfinished one.
func Unfinished(entries []domain.TimeEntry) []domain.TimeEntry {
	today := domain.DateOf(timeNow())

	unfinished := make([]domain.TimeEntry, 0)
	for _, entry := range entries {
		if entry.EndTime == nil && entry.StartedOn().Before(today) {
			unfinished = append(unfinished, entry)
		}
	}
	return unfinished
}

// HasUnfinished reports whether any session was left open on a previous day.
func HasUnfinished(entries []domain.TimeEntry) bool {
	return len(Unfinished(entries)) > 0
}

// Active returns the first open entry, or nil when no session is running.
func Active(entries []domain.TimeEntry) *domain.TimeEntry {
	for i := range entries {
		if entries[i].EndTime == nil {
			entry := entries[i]
			return &entry
		}
	}
	return nil
}

// Filter returns the entries whose StartTime falls in the given month
// and year, optionally narrowed to a project and/or activity id. Empty
// ids match everything. This is the query surface for export and
// reporting views.
func Filter(entries []domain.TimeEntry, month time.Month, year int, projectID, activityID string) []domain.TimeEntry {
	filtered := make([]domain.TimeEntry, 0)
	for _, entry := range entries {
		if entry.StartTime.Month() != month || entry.StartTime.Year() != year {
			continue
		}
		if projectID != "" && entry.ProjectID != projectID {
			continue
		}
		if activityID != "" && entry.ActivityID != activityID {
			continue
		}
		filtered = append(filtered, entry)
	}
	return filtered
}
