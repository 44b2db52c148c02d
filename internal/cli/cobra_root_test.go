package cli

import (
	"bytes"
	"testing"

	"chronopulse/internal/config"
	"chronopulse/internal/repository/kv"
	"chronopulse/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRoot(t *testing.T) (*RootCommand, *bytes.Buffer) {
	t.Helper()

	repo := kv.NewMemoryRepository()
	manager := session.NewManager(repo, nil)
	t.Cleanup(manager.Flush)

	root := NewRootCommand(manager, config.NewConfig())
	buf := &bytes.Buffer{}
	root.App().SetOutput(buf)
	return root, buf
}

func TestRootCommand_StartStop(t *testing.T) {
	root, buf := setupTestRoot(t)

	root.SetArgs([]string{"start", "wiring", "things"})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "Started session")

	buf.Reset()
	root.SetArgs([]string{"stop"})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "Stopped session")
}

func TestRootCommand_StartWithUnknownProject(t *testing.T) {
	root, _ := setupTestRoot(t)

	root.SetArgs([]string{"start", "--project", "Nope"})
	assert.Error(t, root.Execute())
}

func TestRootCommand_ProjectLifecycle(t *testing.T) {
	root, buf := setupTestRoot(t)

	root.SetArgs([]string{"project", "add", "Client Work"})
	require.NoError(t, root.Execute())

	buf.Reset()
	root.SetArgs([]string{"project", "list"})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "Client Work")
}

func TestRootCommand_AddRequiresTimes(t *testing.T) {
	root, _ := setupTestRoot(t)

	root.SetArgs([]string{"add", "a", "note"})
	assert.Error(t, root.Execute())
}

func TestRootCommand_FlagOverridesConfig(t *testing.T) {
	root, buf := setupTestRoot(t)

	root.SetArgs([]string{"--date-format", "2006-01-02", "day", "2024-03-05"})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "2024-03-05:")
}
