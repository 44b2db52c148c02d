package cli

import (
	"context"
	"strings"
)

// StartCommand handles the start command
type StartCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewStartCommand creates a new start command handler
func NewStartCommand(app *App) *StartCommand {
	return &StartCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute opens a new session. Any running session is closed first by
// the manager, so the open-session invariant holds.
func (c *StartCommand) Execute(ctx context.Context, projectName, activityName string, noteArgs []string) error {
	projectID, err := c.app.resolveProject(projectName)
	if err != nil {
		return err
	}
	activityID, err := c.app.resolveActivity(activityName)
	if err != nil {
		return err
	}

	wasRunning := c.app.manager.ActiveEntry() != nil

	entry, err := c.app.manager.StartEntry(projectID, activityID, strings.Join(noteArgs, " "))
	if err != nil {
		return c.errorHandler.Handle("start session", err)
	}

	if wasRunning {
		c.app.println("Previous session stopped")
	}
	c.app.printf("Started session: %s / %s\n",
		c.app.manager.ProjectName(entry.ProjectID),
		c.app.manager.ActivityName(entry.ActivityID))
	return nil
}
