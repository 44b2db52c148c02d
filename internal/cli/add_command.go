package cli

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// datetimeLayouts accepted for the --start and --end flags.
var datetimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
}

// AddCommand handles the add command for backfilled entries
type AddCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute inserts a closed historical entry with explicit times.
func (c *AddCommand) Execute(ctx context.Context, projectName, activityName, startArg, endArg string, noteArgs []string) error {
	projectID, err := c.app.resolveProject(projectName)
	if err != nil {
		return err
	}
	activityID, err := c.app.resolveActivity(activityName)
	if err != nil {
		return err
	}

	startTime, err := parseDateTime(startArg)
	if err != nil {
		return fmt.Errorf("invalid start time: %w", err)
	}
	endTime, err := parseDateTime(endArg)
	if err != nil {
		return fmt.Errorf("invalid end time: %w", err)
	}

	entry, err := c.app.manager.AddEntryWithTimes(projectID, activityID, startTime, endTime, strings.Join(noteArgs, " "))
	if err != nil {
		return c.errorHandler.Handle("add entry", err)
	}

	c.app.printf("Added entry %s\n", c.app.entryLine(entry))
	return nil
}

// parseDateTime parses a wall-clock timestamp in one of the accepted layouts.
func parseDateTime(s string) (time.Time, error) {
	for _, layout := range datetimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q, expected e.g. 2006-01-02 15:04", s)
}

// parseDate parses a calendar date.
func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// parseMonth parses a calendar month, returning its month and year.
func parseMonth(s string) (time.Month, int, error) {
	t, err := time.ParseInLocation("2006-01", s, time.Local)
	if err != nil {
		return 0, 0, fmt.Errorf("unrecognized month %q, expected YYYY-MM", s)
	}
	return t.Month(), t.Year(), nil
}
