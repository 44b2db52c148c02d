package cli

import (
	"context"

	"chronopulse/internal/stats"
)

// StopCommand handles the stop command
type StopCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewStopCommand creates a new stop command handler
func NewStopCommand(app *App) *StopCommand {
	return &StopCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute closes the running session, if any.
func (c *StopCommand) Execute(ctx context.Context) error {
	active := c.app.manager.ActiveEntry()
	if active == nil {
		c.app.println("No session is running")
		return nil
	}

	if err := c.app.manager.EndEntry(active.ID); err != nil {
		return c.errorHandler.Handle("stop session", err)
	}

	elapsed := stats.FormatDuration(stats.DurationSeconds(active.StartTime, timeNow()))
	c.app.printf("Stopped session: %s / %s (%s)\n",
		c.app.manager.ProjectName(active.ProjectID),
		c.app.manager.ActivityName(active.ActivityID),
		elapsed)
	return nil
}
