package fees_test

import (
	"testing"
	"time"

	"github.com/courtkeep/courtkeep/internal/fees"
	"github.com/courtkeep/courtkeep/internal/tennis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConstants = fees.Constants{
	BaseFee:        30000,
	BetFee:         20000,
	SpecialLossFee: 60000,
	MaxDailyFee:    100000,
}

func onDay(s string) int64 {
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	// Mid-day, so the local day bucket is unambiguous.
	return d.Add(12 * time.Hour).Unix()
}

func loss(id, winner, loser, score string, date int64) tennis.MatchRecord {
	return tennis.MatchRecord{
		ID: id, MatchType: tennis.MatchTypeSingles,
		Winner1ID: winner, Loser1ID: loser, Score: score, MatchDate: date,
	}
}

func TestCalculate(t *testing.T) {
	players := []tennis.Player{
		{ID: "a", Name: "Player A", Active: true},
		{ID: "b", Name: "Player B", Active: true},
	}

	t.Run("winner pays no bet fee and is excluded", func(t *testing.T) {
		matches := []tennis.MatchRecord{loss("m1", "a", "b", "6-4", onDay("2024-03-01"))}
		result := fees.Calculate(players, matches, testConstants)
		require.Len(t, result, 1)
		assert.Equal(t, "b", result[0].PlayerID)
		assert.Equal(t, int64(20000), result[0].BetFee)
		assert.Equal(t, int64(50000), result[0].TotalFee)
	})

	t.Run("six-love loss charges the special fee", func(t *testing.T) {
		matches := []tennis.MatchRecord{loss("m1", "a", "b", "6-0", onDay("2024-03-01"))}
		result := fees.Calculate(players, matches, testConstants)
		require.Len(t, result, 1)
		assert.Equal(t, int64(60000), result[0].BetFee)
	})

	t.Run("daily fee is capped per player per day", func(t *testing.T) {
		d := onDay("2024-03-01")
		matches := []tennis.MatchRecord{
			loss("m1", "a", "b", "6-0", d),
			loss("m2", "a", "b", "6-0", d),
		}
		result := fees.Calculate(players, matches, testConstants)
		require.Len(t, result, 1)
		assert.Equal(t, int64(100000), result[0].BetFee, "two special losses clamp to the daily cap")
	})

	t.Run("cap applies per day, not per period", func(t *testing.T) {
		matches := []tennis.MatchRecord{
			loss("m1", "a", "b", "6-0", onDay("2024-03-01")),
			loss("m2", "a", "b", "6-0", onDay("2024-03-01")),
			loss("m3", "a", "b", "6-0", onDay("2024-03-02")),
		}
		result := fees.Calculate(players, matches, testConstants)
		require.Len(t, result, 1)
		assert.Equal(t, int64(160000), result[0].BetFee)
	})

	t.Run("a draw charges both participants, nobody else", func(t *testing.T) {
		all := append(players, tennis.Player{ID: "c", Name: "Player C", Active: true})
		matches := []tennis.MatchRecord{loss("m1", "a", "b", "5-5", onDay("2024-03-01"))}

		result := fees.Calculate(all, matches, testConstants)
		require.Len(t, result, 2)
		ids := []string{result[0].PlayerID, result[1].PlayerID}
		assert.ElementsMatch(t, []string{"a", "b"}, ids)
		for _, f := range result {
			assert.Equal(t, 1, f.Draws)
			assert.Equal(t, int64(20000), f.BetFee)
		}
	})

	t.Run("inactive players skip the base fee", func(t *testing.T) {
		inactive := []tennis.Player{{ID: "b", Name: "Player B", Active: false}}
		matches := []tennis.MatchRecord{loss("m1", "a", "b", "6-4", onDay("2024-03-01"))}

		result := fees.Calculate(inactive, matches, testConstants)
		require.Len(t, result, 1)
		assert.Zero(t, result[0].BaseFee)
		assert.Equal(t, result[0].BetFee, result[0].TotalFee)
	})

	t.Run("sorted by total fee descending", func(t *testing.T) {
		all := append(players, tennis.Player{ID: "c", Name: "Player C", Active: true})
		matches := []tennis.MatchRecord{
			loss("m1", "a", "b", "6-4", onDay("2024-03-01")),
			loss("m2", "a", "c", "6-0", onDay("2024-03-01")),
		}

		result := fees.Calculate(all, matches, testConstants)
		require.Len(t, result, 2)
		assert.Equal(t, "c", result[0].PlayerID)
		assert.Equal(t, "b", result[1].PlayerID)
	})

	t.Run("no matches means no rows", func(t *testing.T) {
		assert.Empty(t, fees.Calculate(players, nil, testConstants))
	})
}
