package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	matchesRecorded     int
	rankingComputations int
	computeDurations    []float64
	exportsGenerated    int
	notifSent           int
	notifFailed         int
	startupTime         float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		computeDurations: make([]float64, 0),
	}
}

func (m *Mock) IncMatchesRecorded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesRecorded++
}

func (m *Mock) IncRankingComputations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rankingComputations++
}

func (m *Mock) ObserveComputeDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.computeDurations = append(m.computeDurations, duration)
}

func (m *Mock) IncExportsGenerated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exportsGenerated++
}

func (m *Mock) IncNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifSent++
}

func (m *Mock) IncNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// MatchesRecorded returns the number of times IncMatchesRecorded was called.
func (m *Mock) MatchesRecordedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesRecorded
}

// RankingComputationsCount returns the number of times IncRankingComputations was called.
func (m *Mock) RankingComputationsCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rankingComputations
}

// ExportsGeneratedCount returns the number of times IncExportsGenerated was called.
func (m *Mock) ExportsGeneratedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.exportsGenerated
}

// NotifSentCount returns the number of times IncNotifSent was called.
func (m *Mock) NotifSentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifSent
}

// NotifFailedCount returns the number of times IncNotifFailed was called.
func (m *Mock) NotifFailedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifFailed
}
