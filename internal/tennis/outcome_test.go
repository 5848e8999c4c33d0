package tennis_test

import (
	"testing"

	"github.com/courtkeep/courtkeep/internal/tennis"
	"github.com/stretchr/testify/assert"
)

func singlesMatch(winner, loser, score string) tennis.MatchRecord {
	return tennis.MatchRecord{
		ID:        "m1",
		MatchType: tennis.MatchTypeSingles,
		Winner1ID: winner,
		Loser1ID:  loser,
		Score:     score,
	}
}

func TestOutcomeClassification(t *testing.T) {
	t.Run("win and loss are symmetric", func(t *testing.T) {
		m := singlesMatch("alice", "bob", "6-4,6-2")

		assert.True(t, tennis.WonBy(m, "alice"))
		assert.False(t, tennis.LostBy(m, "alice"))
		assert.True(t, tennis.LostBy(m, "bob"))
		assert.False(t, tennis.WonBy(m, "bob"))
	})

	t.Run("draw is neither win nor loss for anyone", func(t *testing.T) {
		m := singlesMatch("alice", "bob", "5-5")

		for _, id := range []string{"alice", "bob"} {
			assert.False(t, tennis.WonBy(m, id))
			assert.False(t, tennis.LostBy(m, id))
			assert.True(t, tennis.Participates(m, id))
		}
	})

	t.Run("non-participant contributes to no category", func(t *testing.T) {
		m := singlesMatch("alice", "bob", "6-4")

		assert.False(t, tennis.Participates(m, "carol"))
		assert.False(t, tennis.WonBy(m, "carol"))
		assert.False(t, tennis.LostBy(m, "carol"))
	})

	t.Run("empty player id never matches empty doubles slots", func(t *testing.T) {
		m := singlesMatch("alice", "bob", "6-4")
		assert.False(t, tennis.Participates(m, ""))
	})

	// Exactly one of won, lost, draw-participant, non-participant holds for
	// every (match, player) pair.
	t.Run("categories are mutually exclusive", func(t *testing.T) {
		matches := []tennis.MatchRecord{
			singlesMatch("alice", "bob", "6-4,4-6,7-5"),
			singlesMatch("bob", "carol", "5-5"),
			{
				ID:        "d1",
				MatchType: tennis.MatchTypeDoubles,
				Winner1ID: "alice", Winner2ID: "carol",
				Loser1ID: "bob", Loser2ID: "dave",
				Score: "6-6",
			},
		}

		for _, m := range matches {
			for _, id := range []string{"alice", "bob", "carol", "dave", "eve"} {
				categories := 0
				if tennis.WonBy(m, id) {
					categories++
				}
				if tennis.LostBy(m, id) {
					categories++
				}
				if tennis.IsDraw(m.Score) && tennis.Participates(m, id) {
					categories++
				}
				if !tennis.Participates(m, id) {
					categories++
				}
				assert.Equal(t, 1, categories, "match %s player %s", m.ID, id)
			}
		}
	})
}

func TestValidate(t *testing.T) {
	valid := tennis.MatchRecord{
		MatchType: tennis.MatchTypeSingles,
		Winner1ID: "alice",
		Loser1ID:  "bob",
		Score:     "6-4,6-2",
	}
	assert.NoError(t, tennis.Validate(valid))

	t.Run("rejects missing participants", func(t *testing.T) {
		m := valid
		m.Loser1ID = ""
		assert.Error(t, tennis.Validate(m))
	})

	t.Run("rejects partial doubles pair", func(t *testing.T) {
		m := valid
		m.MatchType = tennis.MatchTypeDoubles
		m.Winner2ID = "carol"
		assert.Error(t, tennis.Validate(m))
	})

	t.Run("rejects second players on a singles match", func(t *testing.T) {
		m := valid
		m.Winner2ID = "carol"
		assert.Error(t, tennis.Validate(m))
	})

	t.Run("rejects duplicated participant", func(t *testing.T) {
		m := valid
		m.Loser1ID = "alice"
		assert.Error(t, tennis.Validate(m))
	})

	t.Run("rejects unnormalized score", func(t *testing.T) {
		m := valid
		m.Score = "4-6,6-2"
		assert.Error(t, tennis.Validate(m))
	})

	t.Run("rejects unparseable score", func(t *testing.T) {
		m := valid
		m.Score = "banana"
		assert.ErrorIs(t, tennis.Validate(m), tennis.ErrInvalidScore)
	})
}
