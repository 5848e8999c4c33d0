package club

import "github.com/courtkeep/courtkeep/internal/tennis"

// ClubStore defines the interface for interacting with the club's data. The
// computation engine never touches it directly; handlers take snapshots from
// here and pass them to the pure aggregation functions.
type ClubStore interface {
	UpsertPlayer(p tennis.Player) error
	UpsertPlayers(players []tennis.Player) error
	ListPlayers() ([]tennis.Player, error)
	GetPlayers(playerIDs []string) ([]tennis.Player, error)
	FindPlayerByName(name string) (*tennis.Player, error)
	SetPlayerActive(playerID string, active bool) error
	IsKnownPlayer(playerID string) bool

	CreateMatch(sub MatchSubmission) (*tennis.MatchRecord, error)
	UpdateMatchScore(matchID, editedScore string, matchDate int64) (*tennis.MatchRecord, error)
	GetMatch(matchID string) (*tennis.MatchRecord, error)
	ListMatches() ([]tennis.MatchRecord, error)
	DeleteMatch(matchID string) error

	Clear()
}
