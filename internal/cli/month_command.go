package cli

import (
	"context"
	"sort"
)

// MonthCommand handles the month command
type MonthCommand struct {
	app *App
}

// NewMonthCommand creates a new month command handler
func NewMonthCommand(app *App) *MonthCommand {
	return &MonthCommand{app: app}
}

// Execute prints the statistics for one calendar month.
// An empty monthArg means the current month.
func (c *MonthCommand) Execute(ctx context.Context, monthArg string) error {
	now := timeNow()
	month, year := now.Month(), now.Year()
	if monthArg != "" {
		var err error
		if month, year, err = parseMonth(monthArg); err != nil {
			return err
		}
	}

	stats := c.app.manager.MonthlyStats(month, year)
	c.app.printf("%s %d\n", stats.Month, stats.Year)
	c.app.printf("  total:   %.2fh\n", stats.TotalHours)
	c.app.printf("  days:    %d\n", stats.DaysWorked)
	c.app.printf("  avg/day: %.2fh\n", stats.AvgHoursPerDay)

	c.printBreakdown("projects", stats.EntriesByProject, c.app.manager.ProjectName)
	c.printBreakdown("activities", stats.EntriesByActivity, c.app.manager.ActivityName)
	return nil
}

// printBreakdown renders an id-to-count map with resolved names, sorted
// by count descending.
func (c *MonthCommand) printBreakdown(title string, counts map[string]int, nameOf func(string) string) {
	if len(counts) == 0 {
		return
	}

	type row struct {
		name  string
		count int
	}
	rows := make([]row, 0, len(counts))
	for id, count := range counts {
		rows = append(rows, row{name: nameOf(id), count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].name < rows[j].name
	})

	c.app.printf("  %s:\n", title)
	for _, r := range rows {
		c.app.printf("    %-20s %d\n", r.name, r.count)
	}
}
