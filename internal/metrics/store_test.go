package metrics

import (
	"testing"

	"github.com/courtkeep/courtkeep/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) MetricsStore {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	t.Cleanup(teardown)

	return New(db)
}

func TestIncrementAndGetAll(t *testing.T) {
	store := setupTestDB(t)

	// 1. Initially, there should be no counters
	counters, err := store.GetAll()
	require.NoError(t, err)
	assert.Empty(t, counters)

	// 2. Increment a new key
	store.Increment("matches_recorded")
	counters, err = store.GetAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"matches_recorded": 1}, counters)

	// 3. Increment the same key again
	store.Increment("matches_recorded")
	counters, err = store.GetAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"matches_recorded": 2}, counters)

	// 4. Increment a different key
	store.Increment("exports_generated")
	counters, err = store.GetAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"matches_recorded":  2,
		"exports_generated": 1,
	}, counters)
}
