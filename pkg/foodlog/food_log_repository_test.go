package foodlog

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"recipe-dashboard/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepositoryClearIsAbsorbing(t *testing.T) {
	repo := NewMemoryFoodLogRepository()
	ctx := context.Background()
	require.NoError(t, repo.CreateSession(ctx, "s"))

	histories := [][]string{
		nil,
		{"Curry"},
		{"Curry", "Curry", "Salad"},
	}
	for _, history := range histories {
		for _, name := range history {
			require.NoError(t, repo.AppendEntry(ctx, "s", name))
		}
		require.NoError(t, repo.ClearEntries(ctx, "s"))

		entries, err := repo.GetEntries(ctx, "s")
		require.NoError(t, err)
		assert.Empty(t, entries)
	}
}

func TestMemoryRepositoryEntriesAreCopies(t *testing.T) {
	repo := NewMemoryFoodLogRepository()
	ctx := context.Background()
	require.NoError(t, repo.CreateSession(ctx, "s"))
	require.NoError(t, repo.AppendEntry(ctx, "s", "Curry"))

	entries, err := repo.GetEntries(ctx, "s")
	require.NoError(t, err)
	entries[0] = "Changed"

	entries, err = repo.GetEntries(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, []string{"Curry"}, entries)
}

func TestMemoryRepositoryPurgeIdle(t *testing.T) {
	repo := NewMemoryFoodLogRepository().(*memoryFoodLogRepository)
	ctx := context.Background()

	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return clock }
	require.NoError(t, repo.CreateSession(ctx, "old"))

	clock = clock.Add(2 * time.Hour)
	require.NoError(t, repo.CreateSession(ctx, "fresh"))

	purged := repo.PurgeIdle(ctx, clock.Add(-time.Hour))
	assert.Equal(t, 1, purged)

	_, err := repo.GetEntries(ctx, "old")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = repo.GetEntries(ctx, "fresh")
	assert.NoError(t, err)
}

func TestMemoryRepositoryConcurrentSessions(t *testing.T) {
	repo := NewMemoryFoodLogRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		id := fmt.Sprintf("s%d", i)
		require.NoError(t, repo.CreateSession(ctx, id))
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = repo.AppendEntry(ctx, id, "Curry")
			}
		}()
	}
	wg.Wait()

	for i := 0; i < 8; i++ {
		entries, err := repo.GetEntries(ctx, fmt.Sprintf("s%d", i))
		require.NoError(t, err)
		assert.Len(t, entries, 50)
	}
}
