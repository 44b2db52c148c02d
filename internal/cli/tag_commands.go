package cli

import (
	"context"

	"chronopulse/internal/domain"

	"github.com/fatih/color"
)

// ProjectCommand handles the project subcommands
type ProjectCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewProjectCommand creates a new project command handler
func NewProjectCommand(app *App) *ProjectCommand {
	return &ProjectCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Add creates a new project.
func (c *ProjectCommand) Add(ctx context.Context, name string) error {
	project, err := c.app.manager.AddProject(name)
	if err != nil {
		return c.errorHandler.Handle("add project", err)
	}
	c.app.printf("Added project %s (%s)\n", project.Name, project.ID)
	return nil
}

// List prints all projects, including deactivated ones.
func (c *ProjectCommand) List(ctx context.Context) error {
	printTags(c.app, tagsFromProjects(c.app.manager.Projects()))
	return nil
}

// Update renames a project and/or flips its active flag.
func (c *ProjectCommand) Update(ctx context.Context, id, name string, active bool) error {
	if err := c.app.manager.UpdateProject(id, name, active); err != nil {
		return c.errorHandler.Handle("update project", err)
	}
	c.app.printf("Updated project %s\n", id)
	return nil
}

// ActivityCommand handles the activity subcommands
type ActivityCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewActivityCommand creates a new activity command handler
func NewActivityCommand(app *App) *ActivityCommand {
	return &ActivityCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Add creates a new activity.
func (c *ActivityCommand) Add(ctx context.Context, name string) error {
	activity, err := c.app.manager.AddActivity(name)
	if err != nil {
		return c.errorHandler.Handle("add activity", err)
	}
	c.app.printf("Added activity %s (%s)\n", activity.Name, activity.ID)
	return nil
}

// List prints all activities, including deactivated ones.
func (c *ActivityCommand) List(ctx context.Context) error {
	printTags(c.app, tagsFromActivities(c.app.manager.Activities()))
	return nil
}

// Update renames an activity and/or flips its active flag.
func (c *ActivityCommand) Update(ctx context.Context, id, name string, active bool) error {
	if err := c.app.manager.UpdateActivity(id, name, active); err != nil {
		return c.errorHandler.Handle("update activity", err)
	}
	c.app.printf("Updated activity %s\n", id)
	return nil
}

type tagRow struct {
	id     string
	name   string
	active bool
}

func tagsFromProjects(projects []domain.Project) []tagRow {
	rows := make([]tagRow, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, tagRow{id: p.ID, name: p.Name, active: p.Active})
	}
	return rows
}

func tagsFromActivities(activities []domain.Activity) []tagRow {
	rows := make([]tagRow, 0, len(activities))
	for _, a := range activities {
		rows = append(rows, tagRow{id: a.ID, name: a.Name, active: a.Active})
	}
	return rows
}

func printTags(app *App, rows []tagRow) {
	if len(rows) == 0 {
		app.println("None")
		return
	}
	for _, row := range rows {
		status := color.GreenString("active")
		if !row.active {
			status = color.HiBlackString("inactive")
		}
		app.printf("%s  %-20s %s\n", row.id, row.name, status)
	}
}
