package cli

import (
	"context"
)

// PINCommand handles the pin subcommands
type PINCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewPINCommand creates a new pin command handler
func NewPINCommand(app *App) *PINCommand {
	return &PINCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Set stores a new pin after a confirmation pass.
func (c *PINCommand) Set(ctx context.Context, pin, confirm string) error {
	if pin != confirm {
		c.app.println("PINs do not match")
		return nil
	}
	if err := c.app.manager.SetPIN(pin); err != nil {
		return c.errorHandler.Handle("set PIN", err)
	}
	c.app.println("PIN enabled")
	return nil
}

// Check compares a pin against the stored one.
func (c *PINCommand) Check(ctx context.Context, pin string) error {
	if !c.app.manager.Settings().PINEnabled {
		c.app.println("PIN is not enabled")
		return nil
	}
	if c.app.manager.CheckPIN(pin) {
		c.app.println("PIN correct")
	} else {
		c.app.println("PIN incorrect")
	}
	return nil
}

// Remove disables the pin gate. The stored pin must be supplied.
func (c *PINCommand) Remove(ctx context.Context, pin string) error {
	if !c.app.manager.Settings().PINEnabled {
		c.app.println("PIN is not enabled")
		return nil
	}
	if !c.app.manager.CheckPIN(pin) {
		c.app.println("PIN incorrect")
		return nil
	}
	c.app.manager.RemovePIN()
	c.app.println("PIN removed")
	return nil
}
