package tennis_test

import (
	"testing"

	"github.com/courtkeep/courtkeep/internal/tennis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeScore(t *testing.T) {
	t.Run("rewrites each set higher-first", func(t *testing.T) {
		normalized, err := tennis.NormalizeScore("4-6,7-5,3-6")
		require.NoError(t, err)
		assert.Equal(t, "6-4,7-5,6-3", normalized)
	})

	t.Run("is idempotent", func(t *testing.T) {
		once, err := tennis.NormalizeScore("4-6,2-6")
		require.NoError(t, err)
		twice, err := tennis.NormalizeScore(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})

	t.Run("keeps draw sentinels intact", func(t *testing.T) {
		normalized, err := tennis.NormalizeScore("5-5")
		require.NoError(t, err)
		assert.Equal(t, "5-5", normalized)
	})

	t.Run("rejects invalid scores", func(t *testing.T) {
		invalid := []string{"", "6", "6-", "-4", "6-4-2", "a-b", "6-100", "6--4", "6-4,,"}
		for _, score := range invalid {
			_, err := tennis.NormalizeScore(score)
			assert.ErrorIs(t, err, tennis.ErrInvalidScore, "score %q should be rejected", score)
		}
	})

	t.Run("allows spaces around tokens", func(t *testing.T) {
		normalized, err := tennis.NormalizeScore(" 4-6, 6-2")
		require.NoError(t, err)
		assert.Equal(t, "6-4,6-2", normalized)
	})
}

func TestIsDraw(t *testing.T) {
	assert.True(t, tennis.IsDraw("5-5"))
	assert.True(t, tennis.IsDraw("6-6"))
	assert.False(t, tennis.IsDraw("6-4"))
	// Sentinel comparison is on the whole score field, not per set.
	assert.False(t, tennis.IsDraw("5-5,6-4"))
	assert.False(t, tennis.IsDraw("6-6,6-4"))
}

func TestMatchWinner(t *testing.T) {
	t.Run("side with most set wins takes the match", func(t *testing.T) {
		winner, err := tennis.MatchWinner([][2]int{{6, 4}, {3, 6}, {6, 2}}, tennis.TieSideA)
		require.NoError(t, err)
		assert.Equal(t, tennis.SideA, winner)

		winner, err = tennis.MatchWinner([][2]int{{4, 6}, {6, 3}, {2, 6}}, tennis.TieSideA)
		require.NoError(t, err)
		assert.Equal(t, tennis.SideB, winner)
	})

	t.Run("tied sets resolve by policy", func(t *testing.T) {
		sets := [][2]int{{6, 4}, {4, 6}}

		winner, err := tennis.MatchWinner(sets, tennis.TieSideA)
		require.NoError(t, err)
		assert.Equal(t, tennis.SideA, winner)

		winner, err = tennis.MatchWinner(sets, tennis.TieSideB)
		require.NoError(t, err)
		assert.Equal(t, tennis.SideB, winner)

		_, err = tennis.MatchWinner(sets, tennis.TieError)
		assert.Error(t, err)
	})

	t.Run("equal sub-scores count for neither side", func(t *testing.T) {
		winner, err := tennis.MatchWinner([][2]int{{4, 4}, {6, 3}}, tennis.TieError)
		require.NoError(t, err)
		assert.Equal(t, tennis.SideA, winner)
	})
}

func TestReassignSides(t *testing.T) {
	base := tennis.MatchRecord{
		ID:        "m1",
		MatchType: tennis.MatchTypeDoubles,
		Winner1ID: "w1",
		Winner2ID: "w2",
		Loser1ID:  "l1",
		Loser2ID:  "l2",
		Score:     "6-4,6-2",
	}

	t.Run("keeps sides when recorded winners still win", func(t *testing.T) {
		m := base
		err := tennis.ReassignSides(&m, "6-3,6-1", tennis.TieSideA)
		require.NoError(t, err)
		assert.Equal(t, "w1", m.Winner1ID)
		assert.Equal(t, "6-3,6-1", m.Score)
	})

	t.Run("swaps sides when the edited score favours the losers", func(t *testing.T) {
		m := base
		err := tennis.ReassignSides(&m, "4-6,2-6", tennis.TieSideA)
		require.NoError(t, err)
		assert.Equal(t, "l1", m.Winner1ID)
		assert.Equal(t, "l2", m.Winner2ID)
		assert.Equal(t, "w1", m.Loser1ID)
		assert.Equal(t, "w2", m.Loser2ID)
		assert.Equal(t, "6-4,6-2", m.Score, "stored score is normalized")
	})

	t.Run("draw sentinel leaves sides untouched", func(t *testing.T) {
		m := base
		err := tennis.ReassignSides(&m, "5-5", tennis.TieSideA)
		require.NoError(t, err)
		assert.Equal(t, "w1", m.Winner1ID)
		assert.Equal(t, "5-5", m.Score)
	})

	t.Run("rejects invalid edits without touching the record", func(t *testing.T) {
		m := base
		err := tennis.ReassignSides(&m, "six-four", tennis.TieSideA)
		assert.ErrorIs(t, err, tennis.ErrInvalidScore)
		assert.Equal(t, base, m)
	})
}
