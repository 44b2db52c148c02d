package cli

import (
	"bytes"
	"testing"

	"chronopulse/internal/config"
	"chronopulse/internal/repository/kv"
	"chronopulse/internal/session"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

// setupTestApp builds an App over an in-memory repository with the
// default seeds and a capture buffer for output.
func setupTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()

	repo := kv.NewMemoryRepository()
	manager := session.NewManager(repo, nil)
	t.Cleanup(manager.Flush)

	app := NewApp(manager, config.NewConfig())
	buf := &bytes.Buffer{}
	app.SetOutput(buf)
	return app, buf
}

func TestApp_ResolveProject(t *testing.T) {
	app, _ := setupTestApp(t)

	// Empty name selects the first active project (the seed)
	id, err := app.resolveProject("")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	id, err = app.resolveProject("Standard Project")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = app.resolveProject("Nope")
	assert.Error(t, err)
}

func TestApp_ResolveProject_SkipsInactive(t *testing.T) {
	app, _ := setupTestApp(t)

	project, err := app.manager.AddProject("Dormant")
	require.NoError(t, err)
	require.NoError(t, app.manager.UpdateProject(project.ID, "Dormant", false))

	_, err = app.resolveProject("Dormant")
	assert.Error(t, err)
}

func TestApp_ResolveActivity(t *testing.T) {
	app, _ := setupTestApp(t)

	id, err := app.resolveActivity("Standard Work")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = app.resolveActivity("Nope")
	assert.Error(t, err)
}
