package domain

// UnknownName is returned when an entry references a project or activity
// id that no longer resolves. Tags are never deleted, only deactivated,
// but referential integrity is not assumed.
const UnknownName = "unknown"

// Project is a named, toggleable tag applied to time entries.
// Active controls selectability for new entries; historical entries keep
// referencing inactive projects.
type Project struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// NewProject creates a new active Project with the given name.
func NewProject(id, name string) Project {
	return Project{
		ID:     id,
		Name:   name,
		Active: true,
	}
}

// IsValid checks if the project has valid data.
func (p Project) IsValid() bool {
	return p.ID != "" && p.Name != ""
}

// String returns the project name for display purposes.
func (p Project) String() string {
	return p.Name
}

// Activity is a named, toggleable tag applied to time entries,
// structurally identical to Project but maintained as its own collection.
type Activity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// NewActivity creates a new active Activity with the given name.
func NewActivity(id, name string) Activity {
	return Activity{
		ID:     id,
		Name:   name,
		Active: true,
	}
}

// IsValid checks if the activity has valid data.
func (a Activity) IsValid() bool {
	return a.ID != "" && a.Name != ""
}

// String returns the activity name for display purposes.
func (a Activity) String() string {
	return a.Name
}
