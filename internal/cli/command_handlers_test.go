package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"chronopulse/internal/config"
	"chronopulse/internal/domain"
	"chronopulse/internal/repository/kv"
	"chronopulse/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartCommand_Execute(t *testing.T) {
	app, buf := setupTestApp(t)
	cmd := NewStartCommand(app)
	ctx := context.Background()

	t.Run("starts with default tags", func(t *testing.T) {
		err := cmd.Execute(ctx, "", "", []string{"morning", "block"})
		require.NoError(t, err)

		active := app.manager.ActiveEntry()
		require.NotNil(t, active)
		assert.Equal(t, "morning block", active.Note)
		assert.Contains(t, buf.String(), "Started session: Standard Project / Standard Work")
	})

	t.Run("starting again stops the previous session", func(t *testing.T) {
		buf.Reset()
		err := cmd.Execute(ctx, "", "", nil)
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "Previous session stopped")
		assert.Len(t, app.manager.Entries(), 2)
	})

	t.Run("unknown project name", func(t *testing.T) {
		err := cmd.Execute(ctx, "Nope", "", nil)
		assert.Error(t, err)
	})
}

func TestStopCommand_Execute(t *testing.T) {
	app, buf := setupTestApp(t)
	cmd := NewStopCommand(app)
	ctx := context.Background()

	t.Run("no running session", func(t *testing.T) {
		require.NoError(t, cmd.Execute(ctx))
		assert.Contains(t, buf.String(), "No session is running")
	})

	t.Run("stops the running session", func(t *testing.T) {
		buf.Reset()
		_, err := app.manager.StartEntry(mustProjectID(t, app), mustActivityID(t, app), "")
		require.NoError(t, err)

		require.NoError(t, cmd.Execute(ctx))
		assert.Contains(t, buf.String(), "Stopped session")
		assert.Nil(t, app.manager.ActiveEntry())
	})
}

func TestAddCommand_Execute(t *testing.T) {
	app, buf := setupTestApp(t)
	cmd := NewAddCommand(app)
	ctx := context.Background()

	t.Run("adds a closed entry", func(t *testing.T) {
		start := time.Now().Add(-3 * time.Hour).Format("2006-01-02 15:04")
		end := time.Now().Add(-2 * time.Hour).Format("2006-01-02 15:04")

		err := cmd.Execute(ctx, "", "", start, end, []string{"backfill"})
		require.NoError(t, err)

		entries := app.manager.Entries()
		require.Len(t, entries, 1)
		assert.True(t, entries[0].Completed)
		assert.Contains(t, buf.String(), "Added entry")
	})

	t.Run("rejects malformed times", func(t *testing.T) {
		err := cmd.Execute(ctx, "", "", "yesterday", "later", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid start time")
	})

	t.Run("rejects end before start", func(t *testing.T) {
		err := cmd.Execute(ctx, "", "", "2024-03-05 17:00", "2024-03-05 09:00", nil)
		assert.Error(t, err)
	})
}

func TestDeleteCommand_Execute(t *testing.T) {
	app, buf := setupTestApp(t)
	cmd := NewDeleteCommand(app)
	ctx := context.Background()

	entry, err := app.manager.StartEntry(mustProjectID(t, app), mustActivityID(t, app), "")
	require.NoError(t, err)

	require.NoError(t, cmd.Execute(ctx, entry.ID))
	assert.Contains(t, buf.String(), "Deleted entry")
	assert.Empty(t, app.manager.Entries())

	err = cmd.Execute(ctx, entry.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete entry")
}

func TestListCommand_Execute(t *testing.T) {
	app, buf := setupTestApp(t)
	cmd := NewListCommand(app)
	ctx := context.Background()

	t.Run("empty month", func(t *testing.T) {
		require.NoError(t, cmd.Execute(ctx, "", "", ""))
		assert.Contains(t, buf.String(), "No entries found")
	})

	t.Run("lists current month grouped by day", func(t *testing.T) {
		buf.Reset()
		start := time.Now().Add(-30 * time.Minute)
		_, err := app.manager.AddEntryWithTimes(mustProjectID(t, app), mustActivityID(t, app), start, start.Add(15*time.Minute), "review")
		require.NoError(t, err)

		require.NoError(t, cmd.Execute(ctx, "", "", ""))
		out := buf.String()
		assert.Contains(t, out, start.Format(app.dateFormat()))
		assert.Contains(t, out, "Standard Project / Standard Work")
		assert.Contains(t, out, "review")
	})

	t.Run("rejects malformed month", func(t *testing.T) {
		err := cmd.Execute(ctx, "March", "", "")
		assert.Error(t, err)
	})
}

func TestUnfinishedCommand_Execute(t *testing.T) {
	app, buf := setupTestApp(t)
	cmd := NewUnfinishedCommand(app)
	ctx := context.Background()

	t.Run("nothing unfinished", func(t *testing.T) {
		require.NoError(t, cmd.Execute(ctx, false))
		assert.Contains(t, buf.String(), "No unfinished sessions")
	})

	t.Run("lists and closes stale sessions", func(t *testing.T) {
		staleApp, staleBuf := setupTestAppWithStaleEntry(t, "stale-1")
		staleCmd := NewUnfinishedCommand(staleApp)

		require.NoError(t, staleCmd.Execute(ctx, false))
		assert.Contains(t, staleBuf.String(), "running")
		assert.True(t, staleApp.manager.HasUnfinishedSessions())

		staleBuf.Reset()
		require.NoError(t, staleCmd.Execute(ctx, true))
		assert.Contains(t, staleBuf.String(), "Closed 1 session(s)")
		assert.False(t, staleApp.manager.HasUnfinishedSessions())
	})
}

func TestPINCommand(t *testing.T) {
	app, buf := setupTestApp(t)
	cmd := NewPINCommand(app)
	ctx := context.Background()

	t.Run("set with mismatched confirmation", func(t *testing.T) {
		require.NoError(t, cmd.Set(ctx, "1234", "4321"))
		assert.Contains(t, buf.String(), "PINs do not match")
		assert.False(t, app.manager.Settings().PINEnabled)
	})

	t.Run("set rejects short pins", func(t *testing.T) {
		err := cmd.Set(ctx, "12", "12")
		assert.Error(t, err)
	})

	t.Run("set, check and remove", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, cmd.Set(ctx, "1234", "1234"))
		assert.Contains(t, buf.String(), "PIN enabled")

		buf.Reset()
		require.NoError(t, cmd.Check(ctx, "1234"))
		assert.Contains(t, buf.String(), "PIN correct")

		buf.Reset()
		require.NoError(t, cmd.Check(ctx, "0000"))
		assert.Contains(t, buf.String(), "PIN incorrect")

		buf.Reset()
		require.NoError(t, cmd.Remove(ctx, "0000"))
		assert.Contains(t, buf.String(), "PIN incorrect")
		assert.True(t, app.manager.Settings().PINEnabled)

		buf.Reset()
		require.NoError(t, cmd.Remove(ctx, "1234"))
		assert.Contains(t, buf.String(), "PIN removed")
		assert.False(t, app.manager.Settings().PINEnabled)
	})
}

func TestProjectCommand(t *testing.T) {
	app, buf := setupTestApp(t)
	cmd := NewProjectCommand(app)
	ctx := context.Background()

	require.NoError(t, cmd.Add(ctx, "Client Work"))
	assert.Contains(t, buf.String(), "Added project Client Work")

	buf.Reset()
	require.NoError(t, cmd.List(ctx))
	assert.Contains(t, buf.String(), "Client Work")
	assert.Contains(t, buf.String(), "Standard Project")

	var id string
	for _, p := range app.manager.Projects() {
		if p.Name == "Client Work" {
			id = p.ID
		}
	}
	require.NotEmpty(t, id)

	buf.Reset()
	require.NoError(t, cmd.Update(ctx, id, "Client Work", false))
	require.NoError(t, cmd.List(ctx))
	assert.Contains(t, buf.String(), "inactive")

	err := cmd.Update(ctx, "nope", "Name", true)
	assert.Error(t, err)
}

func TestStatusCommand_Execute(t *testing.T) {
	app, buf := setupTestApp(t)
	cmd := NewStatusCommand(app)
	ctx := context.Background()

	t.Run("idle", func(t *testing.T) {
		require.NoError(t, cmd.Execute(ctx, false))
		assert.Contains(t, buf.String(), "idle")
	})

	t.Run("tracking", func(t *testing.T) {
		buf.Reset()
		_, err := app.manager.StartEntry(mustProjectID(t, app), mustActivityID(t, app), "")
		require.NoError(t, err)

		require.NoError(t, cmd.Execute(ctx, false))
		assert.Contains(t, buf.String(), "tracking")
	})

	t.Run("warns about unfinished sessions", func(t *testing.T) {
		staleApp, staleBuf := setupTestAppWithStaleEntry(t, "stale-2")

		require.NoError(t, NewStatusCommand(staleApp).Execute(ctx, false))
		out := staleBuf.String()
		assert.Contains(t, out, "idle")
		assert.Contains(t, out, "unfinished session(s)")
	})
}

func mustProjectID(t *testing.T, app *App) string {
	t.Helper()
	id, err := app.resolveProject("")
	require.NoError(t, err)
	return id
}

func mustActivityID(t *testing.T, app *App) string {
	t.Helper()
	id, err := app.resolveActivity("")
	require.NoError(t, err)
	return id
}

// setupTestAppWithStaleEntry builds an App whose repository already
// holds an open entry started yesterday.
func setupTestAppWithStaleEntry(t *testing.T, id string) (*App, *bytes.Buffer) {
	t.Helper()

	repo := kv.NewMemoryRepository()
	stale := []domain.TimeEntry{
		{ID: id, ProjectID: "p1", ActivityID: "a1", StartTime: time.Now().AddDate(0, 0, -1)},
	}
	require.NoError(t, repo.SaveEntries(context.Background(), stale))

	manager := session.NewManager(repo, nil)
	t.Cleanup(manager.Flush)

	app := NewApp(manager, config.NewConfig())
	buf := &bytes.Buffer{}
	app.SetOutput(buf)
	return app, buf
}
