package kv

import (
	"context"
	"testing"
	"time"

	"chronopulse/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_EntriesRoundTrip(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	start := time.Date(2024, 3, 5, 9, 0, 0, 0, time.Local)
	entries := []domain.TimeEntry{
		{ID: "open", ProjectID: "p", ActivityID: "a", StartTime: start},
	}

	require.NoError(t, repo.SaveEntries(ctx, entries))
	loaded := repo.LoadEntries(ctx)

	require.Len(t, loaded, 1)
	assertEntryEqual(t, entries[0], loaded[0])
}

func TestMemoryRepository_SeedsAndDefaults(t *testing.T) {
	repo := NewMemoryRepositoryWithSeeds(SeedDefaults{
		ProjectName:  "Seeded Project",
		ActivityName: "Seeded Activity",
	})
	ctx := context.Background()

	assert.Equal(t, "Seeded Project", repo.LoadProjects(ctx)[0].Name)
	assert.Equal(t, "Seeded Activity", repo.LoadActivities(ctx)[0].Name)
	assert.Equal(t, domain.DefaultSettings(), repo.LoadSettings(ctx))
	assert.Empty(t, repo.LoadEntries(ctx))
}

func TestMemoryRepository_CorruptFallsBack(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.SaveSettings(ctx, domain.AppSettings{PINEnabled: true, PIN: "1234"}))
	repo.Corrupt(KeySettings)

	assert.Equal(t, domain.DefaultSettings(), repo.LoadSettings(ctx))
}

func TestMemoryRepository_FailWrites(t *testing.T) {
	repo := NewMemoryRepository()
	repo.FailWrites = true
	ctx := context.Background()

	assert.Error(t, repo.SaveEntries(ctx, nil))
	assert.Error(t, repo.SaveProjects(ctx, nil))
	assert.Error(t, repo.SaveActivities(ctx, nil))
	assert.Error(t, repo.SaveSettings(ctx, domain.AppSettings{}))
}

func TestMemoryRepository_MirrorsPIN(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.SaveSettings(ctx, domain.AppSettings{PINEnabled: true, PIN: "4321"}))

	raw, ok := repo.Raw(KeyPIN)
	require.True(t, ok)
	assert.Equal(t, `"4321"`, raw)
}
