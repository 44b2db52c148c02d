package cli

import (
	"context"

	"chronopulse/internal/export"
)

// ExportCommand handles the export command
type ExportCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute writes one month of entries to the output in the requested
// format, optionally narrowed by project or activity name.
func (c *ExportCommand) Execute(ctx context.Context, monthArg, formatArg, projectName, activityName string) error {
	format, err := export.ParseFormat(formatArg)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	now := timeNow()
	month, year := now.Month(), now.Year()
	if monthArg != "" {
		if month, year, err = parseMonth(monthArg); err != nil {
			return err
		}
	}

	var projectID, activityID string
	if projectName != "" {
		if projectID, err = c.app.resolveProject(projectName); err != nil {
			return err
		}
	}
	if activityName != "" {
		if activityID, err = c.app.resolveActivity(activityName); err != nil {
			return err
		}
	}

	entries := c.app.manager.FilterEntries(month, year, projectID, activityID)
	records := export.BuildRecords(entries, c.app.manager, c.app.dateFormat(), c.app.timeFormat())

	if err := export.Write(c.app.out, format, records); err != nil {
		return c.errorHandler.Handle("export entries", err)
	}
	return nil
}
