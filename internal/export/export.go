// Package export renders time entries to CSV and JSON for use outside
// the application.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"chronopulse/internal/domain"
	"chronopulse/internal/errors"
	"chronopulse/internal/stats"
)

// Format identifies an export output format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", errors.NewInvalidInputError("format", s, "must be csv or json")
	}
}

// NameResolver resolves tag ids to display names.
type NameResolver interface {
	ProjectName(id string) string
	ActivityName(id string) string
}

// Record is one exported entry with ids resolved to names and times
// rendered in the configured formats. Open entries carry an empty End
// and a zero duration.
type Record struct {
	Date      string  `json:"date"`
	Start     string  `json:"start"`
	End       string  `json:"end,omitempty"`
	Duration  string  `json:"duration"`
	Hours     float64 `json:"hours"`
	Project   string  `json:"project"`
	Activity  string  `json:"activity"`
	Note      string  `json:"note,omitempty"`
	Completed bool    `json:"completed"`
}

// BuildRecords converts entries into export records using the given
// date and clock layouts.
func BuildRecords(entries []domain.TimeEntry, names NameResolver, dateLayout, timeLayout string) []Record {
	records := make([]Record, 0, len(entries))
	for _, entry := range entries {
		record := Record{
			Date:      entry.StartTime.Format(dateLayout),
			Start:     entry.StartTime.Format(timeLayout),
			Duration:  stats.FormatDuration(0),
			Project:   names.ProjectName(entry.ProjectID),
			Activity:  names.ActivityName(entry.ActivityID),
			Note:      entry.Note,
			Completed: entry.Completed,
		}
		if entry.EndTime != nil {
			seconds := stats.DurationSeconds(entry.StartTime, *entry.EndTime)
			record.End = entry.EndTime.Format(timeLayout)
			record.Duration = stats.FormatDuration(seconds)
			record.Hours = stats.HoursRounded(float64(seconds))
		}
		records = append(records, record)
	}
	return records
}

// Write renders records in the requested format.
func Write(w io.Writer, format Format, records []Record) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, records)
	default:
		return WriteCSV(w, records)
	}
}

// WriteCSV writes records as CSV with a header row.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)

	header := []string{"date", "start", "end", "duration", "hours", "project", "activity", "note", "completed"}
	if err := cw.Write(header); err != nil {
		return errors.NewStorageError("write csv header", err)
	}

	for _, r := range records {
		row := []string{
			r.Date,
			r.Start,
			r.End,
			r.Duration,
			formatHours(r.Hours),
			r.Project,
			r.Activity,
			r.Note,
			formatBool(r.Completed),
		}
		if err := cw.Write(row); err != nil {
			return errors.NewStorageError("write csv row", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.NewStorageError("flush csv", err)
	}
	return nil
}

// WriteJSON writes records as an indented JSON array.
func WriteJSON(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return errors.NewStorageError("write json", err)
	}
	return nil
}

func formatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', 2, 64)
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
