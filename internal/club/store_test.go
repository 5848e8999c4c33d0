package club_test

import (
	"testing"

	"github.com/courtkeep/courtkeep/internal/club"
	"github.com/courtkeep/courtkeep/internal/database"
	"github.com/courtkeep/courtkeep/internal/tennis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) club.ClubStore {
	t.Helper()
	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	t.Cleanup(teardown)
	return club.New(db, tennis.TieSideA)
}

func seedPlayers(t *testing.T, store club.ClubStore) {
	t.Helper()
	require.NoError(t, store.UpsertPlayers([]tennis.Player{
		{ID: "p1", Name: "Kim Minjun", Age: 31, PlayingStyle: tennis.StyleAggressiveBaseliner, Active: true},
		{ID: "p2", Name: "Lee Seoyeon", Age: 28, PlayingStyle: tennis.StyleCounterpuncher, Active: true},
		{ID: "p3", Name: "Park Jiho", Age: 35, PlayingStyle: tennis.StyleServeAndVolley, Active: false},
		{ID: "p4", Name: "Choi Haeun", Age: 24, PlayingStyle: tennis.StyleAllCourt, Active: true},
	}))
}

func TestUpsertAndListPlayers(t *testing.T) {
	store := setupTestStore(t)
	seedPlayers(t, store)

	players, err := store.ListPlayers()
	require.NoError(t, err)
	require.Len(t, players, 4)
	assert.Equal(t, "Choi Haeun", players[0].Name, "players should be ordered by name")

	// Upserting an existing ID updates in place.
	require.NoError(t, store.UpsertPlayer(tennis.Player{
		ID: "p1", Name: "Kim Minjun", Age: 32, PlayingStyle: tennis.StyleAggressiveBaseliner, Active: true,
	}))
	players, err = store.ListPlayers()
	require.NoError(t, err)
	assert.Len(t, players, 4)
}

func TestGetPlayers(t *testing.T) {
	store := setupTestStore(t)
	seedPlayers(t, store)

	players, err := store.GetPlayers([]string{"p1", "p3"})
	require.NoError(t, err)
	assert.Len(t, players, 2)

	players, err = store.GetPlayers(nil)
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestFindPlayerByName(t *testing.T) {
	store := setupTestStore(t)
	seedPlayers(t, store)

	p, err := store.FindPlayerByName("minjun")
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)

	_, err = store.FindPlayerByName("nobody")
	assert.Error(t, err)
}

func TestSetPlayerActive(t *testing.T) {
	store := setupTestStore(t)
	seedPlayers(t, store)

	require.NoError(t, store.SetPlayerActive("p3", true))
	p, err := store.FindPlayerByName("Park Jiho")
	require.NoError(t, err)
	assert.True(t, p.Active)

	assert.Error(t, store.SetPlayerActive("ghost", true))
}

func TestIsKnownPlayer(t *testing.T) {
	store := setupTestStore(t)
	seedPlayers(t, store)

	assert.True(t, store.IsKnownPlayer("p2"))
	assert.False(t, store.IsKnownPlayer("ghost"))
}

func TestCreateMatch(t *testing.T) {
	store := setupTestStore(t)
	seedPlayers(t, store)

	t.Run("singles", func(t *testing.T) {
		match, err := store.CreateMatch(club.MatchSubmission{
			MatchType: tennis.MatchTypeSingles,
			Winner1ID: "p1",
			Loser1ID:  "p2",
			Score:     "6-4,6-2",
			MatchDate: 1717200000,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, match.ID)
		assert.Equal(t, int64(1717200000), match.MatchDate)

		got, err := store.GetMatch(match.ID)
		require.NoError(t, err)
		assert.Equal(t, match.Score, got.Score)
		assert.Empty(t, got.Winner2ID)
	})

	t.Run("doubles", func(t *testing.T) {
		match, err := store.CreateMatch(club.MatchSubmission{
			MatchType: tennis.MatchTypeDoubles,
			Winner1ID: "p1",
			Winner2ID: "p2",
			Loser1ID:  "p3",
			Loser2ID:  "p4",
			Score:     "7-5,6-4",
			MatchDate: 1717200000,
		})
		require.NoError(t, err)

		got, err := store.GetMatch(match.ID)
		require.NoError(t, err)
		assert.Equal(t, "p2", got.Winner2ID)
		assert.Equal(t, "p4", got.Loser2ID)
	})

	t.Run("defaults match date to creation time", func(t *testing.T) {
		match, err := store.CreateMatch(club.MatchSubmission{
			MatchType: tennis.MatchTypeSingles,
			Winner1ID: "p1",
			Loser1ID:  "p4",
			Score:     "6-0,6-0",
		})
		require.NoError(t, err)
		assert.Equal(t, match.CreatedAt, match.MatchDate)
	})

	t.Run("rejects invalid submissions", func(t *testing.T) {
		cases := []club.MatchSubmission{
			{MatchType: tennis.MatchTypeSingles, Winner1ID: "p1", Loser1ID: "p2", Score: "4-6,2-6", MatchDate: 1},
			{MatchType: tennis.MatchTypeSingles, Winner1ID: "p1", Loser1ID: "p2", Score: "banana", MatchDate: 1},
			{MatchType: tennis.MatchTypeSingles, Winner1ID: "p1", Loser1ID: "p1", Score: "6-4", MatchDate: 1},
			{MatchType: tennis.MatchTypeDoubles, Winner1ID: "p1", Loser1ID: "p2", Score: "6-4", MatchDate: 1},
		}
		for _, sub := range cases {
			_, err := store.CreateMatch(sub)
			assert.Error(t, err, "submission %+v should be rejected", sub)
		}
	})
}

func TestUpdateMatchScore(t *testing.T) {
	store := setupTestStore(t)
	seedPlayers(t, store)

	match, err := store.CreateMatch(club.MatchSubmission{
		MatchType: tennis.MatchTypeSingles,
		Winner1ID: "p1",
		Loser1ID:  "p2",
		Score:     "6-4,6-2",
		MatchDate: 1717200000,
	})
	require.NoError(t, err)

	t.Run("correction keeping the winner", func(t *testing.T) {
		updated, err := store.UpdateMatchScore(match.ID, "6-4,7-5", 0)
		require.NoError(t, err)
		assert.Equal(t, "6-4,7-5", updated.Score)
		assert.Equal(t, "p1", updated.Winner1ID)
		assert.Equal(t, int64(1717200000), updated.MatchDate, "date stays when zero is passed")
	})

	t.Run("correction flipping the winner", func(t *testing.T) {
		updated, err := store.UpdateMatchScore(match.ID, "4-6,2-6", 1717300000)
		require.NoError(t, err)
		assert.Equal(t, "p2", updated.Winner1ID)
		assert.Equal(t, "p1", updated.Loser1ID)
		assert.Equal(t, "6-4,6-2", updated.Score, "stored score is normalized")
		assert.Equal(t, int64(1717300000), updated.MatchDate)

		got, err := store.GetMatch(match.ID)
		require.NoError(t, err)
		assert.Equal(t, "p2", got.Winner1ID)
	})

	t.Run("invalid score leaves the match untouched", func(t *testing.T) {
		before, err := store.GetMatch(match.ID)
		require.NoError(t, err)

		_, err = store.UpdateMatchScore(match.ID, "not-a-score", 0)
		assert.Error(t, err)

		after, err := store.GetMatch(match.ID)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("unknown match", func(t *testing.T) {
		_, err := store.UpdateMatchScore("ghost", "6-4", 0)
		assert.Error(t, err)
	})
}

func TestListMatchesOrder(t *testing.T) {
	store := setupTestStore(t)
	seedPlayers(t, store)

	later, err := store.CreateMatch(club.MatchSubmission{
		MatchType: tennis.MatchTypeSingles, Winner1ID: "p1", Loser1ID: "p2",
		Score: "6-1,6-1", MatchDate: 2000,
	})
	require.NoError(t, err)
	earlier, err := store.CreateMatch(club.MatchSubmission{
		MatchType: tennis.MatchTypeSingles, Winner1ID: "p2", Loser1ID: "p1",
		Score: "7-6,6-4", MatchDate: 1000,
	})
	require.NoError(t, err)

	matches, err := store.ListMatches()
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, earlier.ID, matches[0].ID)
	assert.Equal(t, later.ID, matches[1].ID)
}

func TestDeleteMatch(t *testing.T) {
	store := setupTestStore(t)
	seedPlayers(t, store)

	match, err := store.CreateMatch(club.MatchSubmission{
		MatchType: tennis.MatchTypeSingles, Winner1ID: "p1", Loser1ID: "p2",
		Score: "6-3,6-3", MatchDate: 1000,
	})
	require.NoError(t, err)

	require.NoError(t, store.DeleteMatch(match.ID))
	_, err = store.GetMatch(match.ID)
	assert.Error(t, err)

	assert.Error(t, store.DeleteMatch(match.ID))
}

func TestClear(t *testing.T) {
	store := setupTestStore(t)
	seedPlayers(t, store)
	_, err := store.CreateMatch(club.MatchSubmission{
		MatchType: tennis.MatchTypeSingles, Winner1ID: "p1", Loser1ID: "p2",
		Score: "6-3,6-3", MatchDate: 1000,
	})
	require.NoError(t, err)

	store.Clear()

	players, err := store.ListPlayers()
	require.NoError(t, err)
	assert.Empty(t, players)
	matches, err := store.ListMatches()
	require.NoError(t, err)
	assert.Empty(t, matches)
}
