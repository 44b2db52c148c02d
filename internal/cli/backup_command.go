package cli

import (
	"context"
)

// BackupCommand handles the backup command.
//
// Remote upload is not implemented; the command records the backup
// timestamp and reports where the data lives so it can be copied.
type BackupCommand struct {
	app *App
}

// NewBackupCommand creates a new backup command handler
func NewBackupCommand(app *App) *BackupCommand {
	return &BackupCommand{app: app}
}

// Execute stamps the last-backup time and prints the store location.
func (c *BackupCommand) Execute(ctx context.Context) error {
	settings := c.app.manager.MarkBackedUp()

	c.app.printf("Data store: %s\n", c.app.config.GetStoragePath())
	if settings.LastBackup != nil {
		c.app.printf("Backup recorded at %s\n", settings.LastBackup.Format(c.app.timeFormat()))
	}
	return nil
}
