package notifier

import (
	"sync"

	"github.com/courtkeep/courtkeep/internal/fees"
	"github.com/courtkeep/courtkeep/internal/ranking"
	"github.com/courtkeep/courtkeep/internal/tennis"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendResultNotificationFunc func(match *tennis.MatchRecord, players []tennis.Player, dryRun bool) error
	SendLeaderboardFunc        func(stats []ranking.PlayerStat, dryRun bool) error
	SendFeeSummaryFunc         func(playerFees []fees.PlayerFee, dryRun bool) error

	// Call records
	SendResultNotificationCalls []struct{ Match *tennis.MatchRecord }
	SendLeaderboardCalls        [][]ranking.PlayerStat
	SendFeeSummaryCalls         [][]fees.PlayerFee
	SendPlayerStatsCalls        []struct {
		Stat  *ranking.PlayerStat
		Query string
	}
	SendPlayerNotFoundCalls []string

	// Last formatted responses
	LastLeaderboardResponse    any
	LastFeeSummaryResponse     any
	LastPlayerStatsResponse    any
	LastPlayerNotFoundResponse any
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = nil
	m.SendLeaderboardCalls = nil
	m.SendFeeSummaryCalls = nil
	m.SendPlayerStatsCalls = nil
	m.SendPlayerNotFoundCalls = nil
	m.LastLeaderboardResponse = nil
	m.LastFeeSummaryResponse = nil
	m.LastPlayerStatsResponse = nil
	m.LastPlayerNotFoundResponse = nil
}

func (m *Mock) SendResultNotification(match *tennis.MatchRecord, players []tennis.Player, dryRun bool) error {
	m.mu.Lock()
	m.SendResultNotificationCalls = append(m.SendResultNotificationCalls, struct{ Match *tennis.MatchRecord }{match})
	m.mu.Unlock()
	if m.SendResultNotificationFunc != nil {
		return m.SendResultNotificationFunc(match, players, dryRun)
	}
	return nil
}

func (m *Mock) SendLeaderboard(stats []ranking.PlayerStat, dryRun bool) error {
	m.mu.Lock()
	m.SendLeaderboardCalls = append(m.SendLeaderboardCalls, stats)
	m.mu.Unlock()
	if m.SendLeaderboardFunc != nil {
		return m.SendLeaderboardFunc(stats, dryRun)
	}
	return nil
}

func (m *Mock) SendFeeSummary(playerFees []fees.PlayerFee, dryRun bool) error {
	m.mu.Lock()
	m.SendFeeSummaryCalls = append(m.SendFeeSummaryCalls, playerFees)
	m.mu.Unlock()
	if m.SendFeeSummaryFunc != nil {
		return m.SendFeeSummaryFunc(playerFees, dryRun)
	}
	return nil
}

func (m *Mock) SendPlayerStats(stat *ranking.PlayerStat, query string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPlayerStatsCalls = append(m.SendPlayerStatsCalls, struct {
		Stat  *ranking.PlayerStat
		Query string
	}{stat, query})
	return nil
}

func (m *Mock) SendPlayerNotFound(query string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPlayerNotFoundCalls = append(m.SendPlayerNotFoundCalls, query)
	return nil
}

func (m *Mock) FormatLeaderboardResponse(stats []ranking.PlayerStat) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastLeaderboardResponse = stats
	return stats, nil
}

func (m *Mock) FormatFeeSummaryResponse(playerFees []fees.PlayerFee) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastFeeSummaryResponse = playerFees
	return playerFees, nil
}

func (m *Mock) FormatPlayerStatsResponse(stat *ranking.PlayerStat, query string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastPlayerStatsResponse = stat
	return stat, nil
}

func (m *Mock) FormatPlayerNotFoundResponse(query string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastPlayerNotFoundResponse = query
	return query, nil
}
