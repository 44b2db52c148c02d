package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"chronopulse/internal/config"
	"chronopulse/internal/domain"
	"chronopulse/internal/session"
	"chronopulse/internal/stats"

	"github.com/fatih/color"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App bundles the session manager and configuration for command handlers.
type App struct {
	manager *session.Manager
	config  *config.Config
	out     io.Writer
}

// NewApp creates a CLI application around an already-initialized manager.
func NewApp(manager *session.Manager, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &App{
		manager: manager,
		config:  cfg,
		out:     os.Stdout,
	}
}

// SetOutput redirects command output; used by tests.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...interface{}) {
	fmt.Fprintln(a.out, args...)
}

// timeFormat returns the configured clock layout.
func (a *App) timeFormat() string {
	return a.config.Display.TimeFormat
}

// dateFormat returns the configured date layout.
func (a *App) dateFormat() string {
	return a.config.Display.DateFormat
}

// entryLine renders one entry as a display row.
func (a *App) entryLine(entry domain.TimeEntry) string {
	start := entry.StartTime.Format(a.timeFormat())
	project := a.manager.ProjectName(entry.ProjectID)
	activity := a.manager.ActivityName(entry.ActivityID)

	var end, duration string
	if entry.EndTime == nil {
		end = color.GreenString("running")
		duration = stats.FormatDuration(stats.DurationSeconds(entry.StartTime, timeNow()))
	} else {
		end = entry.EndTime.Format(a.timeFormat())
		duration = stats.FormatDuration(stats.DurationSeconds(entry.StartTime, *entry.EndTime))
	}

	line := fmt.Sprintf("%s  %s - %s (%s)  %s / %s", entry.ID, start, end, duration, project, activity)
	if entry.Note != "" {
		line += "  " + entry.Note
	}
	return line
}

// resolveProject maps a project name to its id among active projects.
// An empty name selects the first active project.
func (a *App) resolveProject(name string) (string, error) {
	projects := a.manager.ActiveProjects()
	if name == "" {
		if len(projects) == 0 {
			return "", fmt.Errorf("no active projects; add one with 'project add'")
		}
		return projects[0].ID, nil
	}
	for _, p := range projects {
		if p.Name == name {
			return p.ID, nil
		}
	}
	return "", fmt.Errorf("no active project named %q; add one with 'project add'", name)
}

// resolveActivity maps an activity name to its id among active
// activities. An empty name selects the first active activity.
func (a *App) resolveActivity(name string) (string, error) {
	activities := a.manager.ActiveActivities()
	if name == "" {
		if len(activities) == 0 {
			return "", fmt.Errorf("no active activities; add one with 'activity add'")
		}
		return activities[0].ID, nil
	}
	for _, act := range activities {
		if act.Name == name {
			return act.ID, nil
		}
	}
	return "", fmt.Errorf("no active activity named %q; add one with 'activity add'", name)
}
