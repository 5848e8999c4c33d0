package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/courtkeep/courtkeep/internal/export"
	"github.com/courtkeep/courtkeep/internal/fees"
	"github.com/courtkeep/courtkeep/internal/tennis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMatchRows(t *testing.T) {
	players := []tennis.Player{
		{ID: "a", Name: "Kim Minjun"},
		{ID: "b", Name: "Lee Seoyeon"},
		{ID: "c", Name: "Park Jihoo"},
		{ID: "d", Name: "Choi Haeun"},
	}
	date := time.Date(2024, 3, 1, 19, 30, 0, 0, time.Local).Unix()
	matches := []tennis.MatchRecord{
		{ID: "m1", MatchType: tennis.MatchTypeDoubles, Winner1ID: "a", Winner2ID: "c", Loser1ID: "b", Loser2ID: "d", Score: "6-4,6-2", MatchDate: date},
		{ID: "m2", MatchType: tennis.MatchTypeSingles, Winner1ID: "a", Loser1ID: "ghost", Score: "6-0", MatchDate: date},
	}

	rows := export.ToMatchRows(matches, players)
	require.Len(t, rows, 2)

	assert.Equal(t, "doubles", rows[0].Type)
	assert.Equal(t, "Kim Minjun & Park Jihoo", rows[0].Team1)
	assert.Equal(t, "Lee Seoyeon & Choi Haeun", rows[0].Team2)
	assert.Equal(t, "6-4,6-2", rows[0].Score)
	assert.Contains(t, rows[0].Time, "2024-03-01")

	// Unknown player references keep their raw ID instead of dropping the row.
	assert.Equal(t, "ghost", rows[1].Team2)
}

func TestToFeeRows(t *testing.T) {
	rows := export.ToFeeRows([]fees.PlayerFee{
		{PlayerID: "b", PlayerName: "Lee Seoyeon", TotalMatches: 3, Losses: 2, Draws: 1, BaseFee: 30000, BetFee: 60000, TotalFee: 90000},
		{PlayerID: "x"},
	})
	require.Len(t, rows, 2)
	assert.Equal(t, "Lee Seoyeon", rows[0].Player)
	assert.Equal(t, int64(90000), rows[0].TotalFee)
	assert.Equal(t, "x", rows[1].Player, "missing name falls back to the ID")
}

func TestMatchesCSV(t *testing.T) {
	t.Run("header plus rows, no trailing newline", func(t *testing.T) {
		csv := export.MatchesCSV([]export.MatchRow{
			{Time: "2024-03-01 19:30", Type: "singles", Team1: "Kim Minjun", Team2: "Lee Seoyeon", Score: "6-4"},
		})

		lines := strings.Split(csv, "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "Time,Type,Team1,Team2,Score", lines[0])
		assert.Equal(t, "2024-03-01 19:30,singles,Kim Minjun,Lee Seoyeon,6-4", lines[1])
		assert.False(t, strings.HasSuffix(csv, "\n"))
	})

	t.Run("fields containing the delimiter are quoted", func(t *testing.T) {
		csv := export.MatchesCSV([]export.MatchRow{
			{Time: "2024-03-01 19:30", Type: "singles", Team1: "Kim, Minjun", Team2: "Lee Seoyeon", Score: "6-4,6-2"},
		})

		assert.Contains(t, csv, `"Kim, Minjun"`)
		assert.Contains(t, csv, `"6-4,6-2"`)
	})

	t.Run("zero rows yield empty output", func(t *testing.T) {
		assert.Empty(t, export.MatchesCSV(nil))
		assert.Empty(t, export.FeesCSV(nil))
	})
}

func TestFeesCSV(t *testing.T) {
	csv := export.FeesCSV([]export.FeeRow{
		{Player: "Lee Seoyeon", Matches: 3, Wins: 0, Draws: 1, Losses: 2, BaseFee: 30000, BetFee: 60000, TotalFee: 90000},
	})

	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Player,Matches,Wins,Draws,Losses,BaseFee,BetFee,TotalFee", lines[0])
	assert.Equal(t, "Lee Seoyeon,3,0,1,2,30000,60000,90000", lines[1])
}
