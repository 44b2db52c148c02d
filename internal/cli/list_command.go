package cli

import (
	"context"
	"sort"

	"chronopulse/internal/domain"
)

// ListCommand handles the list command
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute lists entries for a month, optionally narrowed by project or
// activity name. An empty monthArg means the current month.
func (c *ListCommand) Execute(ctx context.Context, monthArg, projectName, activityName string) error {
	now := timeNow()
	month, year := now.Month(), now.Year()
	if monthArg != "" {
		var err error
		month, year, err = parseMonth(monthArg)
		if err != nil {
			return err
		}
	}

	var projectID, activityID string
	if projectName != "" {
		var err error
		if projectID, err = c.app.resolveProject(projectName); err != nil {
			return err
		}
	}
	if activityName != "" {
		var err error
		if activityID, err = c.app.resolveActivity(activityName); err != nil {
			return err
		}
	}

	entries := c.app.manager.FilterEntries(month, year, projectID, activityID)
	if len(entries) == 0 {
		c.app.println("No entries found")
		return nil
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].StartTime.Before(entries[j].StartTime)
	})
	c.printEntries(entries)
	return nil
}

func (c *ListCommand) printEntries(entries []domain.TimeEntry) {
	lastDate := ""
	for _, entry := range entries {
		date := entry.StartTime.Format(c.app.dateFormat())
		if date != lastDate {
			c.app.println(date)
			lastDate = date
		}
		c.app.printf("  %s\n", c.app.entryLine(entry))
	}
}
