package cli

import (
	"context"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute removes the entry with the given id.
func (c *DeleteCommand) Execute(ctx context.Context, id string) error {
	if err := c.app.manager.DeleteEntry(id); err != nil {
		return c.errorHandler.Handle("delete entry", err)
	}
	c.app.printf("Deleted entry %s\n", id)
	return nil
}
