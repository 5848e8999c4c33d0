package club

import (
	"sync"

	"github.com/courtkeep/courtkeep/internal/tennis"
)

// MockStore is a mock implementation of the ClubStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	UpsertPlayerFunc     func(p tennis.Player) error
	UpsertPlayersFunc    func(players []tennis.Player) error
	ListPlayersFunc      func() ([]tennis.Player, error)
	GetPlayersFunc       func(playerIDs []string) ([]tennis.Player, error)
	FindPlayerByNameFunc func(name string) (*tennis.Player, error)
	SetPlayerActiveFunc  func(playerID string, active bool) error
	IsKnownPlayerFunc    func(playerID string) bool
	CreateMatchFunc      func(sub MatchSubmission) (*tennis.MatchRecord, error)
	UpdateMatchScoreFunc func(matchID, editedScore string, matchDate int64) (*tennis.MatchRecord, error)
	GetMatchFunc         func(matchID string) (*tennis.MatchRecord, error)
	ListMatchesFunc      func() ([]tennis.MatchRecord, error)
	DeleteMatchFunc      func(matchID string) error
	ClearFunc            func()

	// Call records
	UpsertPlayerCalls     []tennis.Player
	UpsertPlayersCalls    [][]tennis.Player
	GetPlayersCalls       [][]string
	FindPlayerByNameCalls []string
	CreateMatchCalls      []MatchSubmission
	UpdateMatchScoreCalls []struct {
		MatchID     string
		EditedScore string
		MatchDate   int64
	}
	DeleteMatchCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) UpsertPlayer(p tennis.Player) error {
	m.mu.Lock()
	m.UpsertPlayerCalls = append(m.UpsertPlayerCalls, p)
	m.mu.Unlock()
	if m.UpsertPlayerFunc != nil {
		return m.UpsertPlayerFunc(p)
	}
	return nil
}

func (m *MockStore) UpsertPlayers(players []tennis.Player) error {
	m.mu.Lock()
	m.UpsertPlayersCalls = append(m.UpsertPlayersCalls, players)
	m.mu.Unlock()
	if m.UpsertPlayersFunc != nil {
		return m.UpsertPlayersFunc(players)
	}
	return nil
}

func (m *MockStore) ListPlayers() ([]tennis.Player, error) {
	if m.ListPlayersFunc != nil {
		return m.ListPlayersFunc()
	}
	return []tennis.Player{}, nil
}

func (m *MockStore) GetPlayers(playerIDs []string) ([]tennis.Player, error) {
	m.mu.Lock()
	m.GetPlayersCalls = append(m.GetPlayersCalls, playerIDs)
	m.mu.Unlock()
	if m.GetPlayersFunc != nil {
		return m.GetPlayersFunc(playerIDs)
	}
	return []tennis.Player{}, nil
}

func (m *MockStore) FindPlayerByName(name string) (*tennis.Player, error) {
	m.mu.Lock()
	m.FindPlayerByNameCalls = append(m.FindPlayerByNameCalls, name)
	m.mu.Unlock()
	if m.FindPlayerByNameFunc != nil {
		return m.FindPlayerByNameFunc(name)
	}
	return nil, nil
}

func (m *MockStore) SetPlayerActive(playerID string, active bool) error {
	if m.SetPlayerActiveFunc != nil {
		return m.SetPlayerActiveFunc(playerID, active)
	}
	return nil
}

func (m *MockStore) IsKnownPlayer(playerID string) bool {
	if m.IsKnownPlayerFunc != nil {
		return m.IsKnownPlayerFunc(playerID)
	}
	return false
}

func (m *MockStore) CreateMatch(sub MatchSubmission) (*tennis.MatchRecord, error) {
	m.mu.Lock()
	m.CreateMatchCalls = append(m.CreateMatchCalls, sub)
	m.mu.Unlock()
	if m.CreateMatchFunc != nil {
		return m.CreateMatchFunc(sub)
	}
	return nil, nil
}

func (m *MockStore) UpdateMatchScore(matchID, editedScore string, matchDate int64) (*tennis.MatchRecord, error) {
	m.mu.Lock()
	m.UpdateMatchScoreCalls = append(m.UpdateMatchScoreCalls, struct {
		MatchID     string
		EditedScore string
		MatchDate   int64
	}{matchID, editedScore, matchDate})
	m.mu.Unlock()
	if m.UpdateMatchScoreFunc != nil {
		return m.UpdateMatchScoreFunc(matchID, editedScore, matchDate)
	}
	return nil, nil
}

func (m *MockStore) GetMatch(matchID string) (*tennis.MatchRecord, error) {
	if m.GetMatchFunc != nil {
		return m.GetMatchFunc(matchID)
	}
	return nil, nil
}

func (m *MockStore) ListMatches() ([]tennis.MatchRecord, error) {
	if m.ListMatchesFunc != nil {
		return m.ListMatchesFunc()
	}
	return []tennis.MatchRecord{}, nil
}

func (m *MockStore) DeleteMatch(matchID string) error {
	m.mu.Lock()
	m.DeleteMatchCalls = append(m.DeleteMatchCalls, matchID)
	m.mu.Unlock()
	if m.DeleteMatchFunc != nil {
		return m.DeleteMatchFunc(matchID)
	}
	return nil
}

func (m *MockStore) Clear() {
	if m.ClearFunc != nil {
		m.ClearFunc()
	}
}
