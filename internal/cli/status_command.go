package cli

import (
	"context"
	"time"

	"chronopulse/internal/stats"

	"github.com/fatih/color"
)

// StatusCommand handles the status command
type StatusCommand struct {
	app *App
}

// NewStatusCommand creates a new status command handler
func NewStatusCommand(app *App) *StatusCommand {
	return &StatusCommand{app: app}
}

// Execute prints a snapshot of the running session, today's total and
// the current month. With watch enabled it reprints every second until
// the context is cancelled.
func (c *StatusCommand) Execute(ctx context.Context, watch bool) error {
	c.printStatus()
	if !watch {
		return nil
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c.printStatus()
		}
	}
}

func (c *StatusCommand) printStatus() {
	now := timeNow()

	active := c.app.manager.ActiveEntry()
	if active != nil {
		elapsed := stats.FormatDuration(stats.DurationSeconds(active.StartTime, now))
		c.app.printf("%s %s / %s (%s)\n",
			color.GreenString("tracking"),
			c.app.manager.ProjectName(active.ProjectID),
			c.app.manager.ActivityName(active.ActivityID),
			elapsed)
	} else {
		c.app.printf("%s\n", color.YellowString("idle"))
	}

	day := c.app.manager.DailyStats(now)
	c.app.printf("today: %.2fh (%d entries, %s)\n", day.TotalHours, day.Entries, day.Status)

	month := c.app.manager.CurrentMonthStats()
	c.app.printf("%s %d: %.2fh over %d days (avg %.2fh)\n",
		now.Month(), now.Year(), month.TotalHours, month.DaysWorked, month.AvgHoursPerDay)

	if c.app.manager.HasUnfinishedSessions() {
		c.app.printf("%s %d unfinished session(s) from previous days; see 'unfinished'\n",
			color.RedString("warning:"), len(c.app.manager.UnfinishedSessions()))
	}
}
