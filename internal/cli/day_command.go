package cli

import (
	"context"

	"chronopulse/internal/domain"
)

// DayCommand handles the day command
type DayCommand struct {
	app *App
}

// NewDayCommand creates a new day command handler
func NewDayCommand(app *App) *DayCommand {
	return &DayCommand{app: app}
}

// Execute prints the statistics and entries for one calendar day.
// An empty dateArg means today.
func (c *DayCommand) Execute(ctx context.Context, dateArg string) error {
	date := timeNow()
	if dateArg != "" {
		var err error
		if date, err = parseDate(dateArg); err != nil {
			return err
		}
	}

	day := c.app.manager.DailyStats(date)
	c.app.printf("%s: %.2fh, %d entries, %s\n",
		date.Format(c.app.dateFormat()), day.TotalHours, day.Entries, day.Status)

	for _, entry := range c.app.manager.Entries() {
		if domain.SameDay(entry.StartTime, date) {
			c.app.printf("  %s\n", c.app.entryLine(entry))
		}
	}
	return nil
}
