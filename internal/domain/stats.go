package domain

import "time"

// DayStatus classifies a single calendar day of the entry log.
type DayStatus string

const (
	// DayComplete means the day has entries and all of them are closed.
	DayComplete DayStatus = "complete"
	// DayIncomplete means the day has at least one open entry.
	DayIncomplete DayStatus = "incomplete"
	// DayMissing means the day has no entries but is today or in the past.
	DayMissing DayStatus = "missing"
	// DayEmpty means the day has no entries and is in the future.
	DayEmpty DayStatus = "empty"
)

// DailyStats summarizes one calendar day of the entry log.
// Derived data, never persisted.
type DailyStats struct {
	Date       time.Time `json:"date"`
	TotalHours float64   `json:"totalHours"`
	Entries    int       `json:"entries"`
	Status     DayStatus `json:"status"`
}

// MonthlyStats summarizes one calendar month of the entry log.
// Derived data, never persisted.
type MonthlyStats struct {
	Month             time.Month     `json:"month"`
	Year              int            `json:"year"`
	TotalHours        float64        `json:"totalHours"`
	AvgHoursPerDay    float64        `json:"avgHoursPerDay"`
	DaysWorked        int            `json:"daysWorked"`
	EntriesByProject  map[string]int `json:"entriesByProject"`
	EntriesByActivity map[string]int `json:"entriesByActivity"`
}
