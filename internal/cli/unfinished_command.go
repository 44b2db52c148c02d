package cli

import (
	"context"
)

// UnfinishedCommand handles the unfinished command
type UnfinishedCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewUnfinishedCommand creates a new unfinished command handler
func NewUnfinishedCommand(app *App) *UnfinishedCommand {
	return &UnfinishedCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute lists sessions left open on previous days. With closeAll set
// it closes each of them at the current time.
func (c *UnfinishedCommand) Execute(ctx context.Context, closeAll bool) error {
	unfinished := c.app.manager.UnfinishedSessions()
	if len(unfinished) == 0 {
		c.app.println("No unfinished sessions")
		return nil
	}

	for _, entry := range unfinished {
		c.app.printf("%s\n", c.app.entryLine(entry))
	}

	if !closeAll {
		c.app.println("Close them with 'unfinished --close', or delete with 'delete <id>'")
		return nil
	}

	for _, entry := range unfinished {
		if err := c.app.manager.EndEntry(entry.ID); err != nil {
			return c.errorHandler.Handle("close session", err)
		}
	}
	c.app.printf("Closed %d session(s)\n", len(unfinished))
	return nil
}
