package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncMatchesRecorded()
	IncRankingComputations()
	ObserveComputeDuration(duration float64)
	IncExportsGenerated()
	IncNotifSent()
	IncNotifFailed()
	SetStartupTime(duration float64)
}

// MetricsStore persists named counters across restarts. Prometheus counters
// reset with the process; these do not.
type MetricsStore interface {
	Increment(key string)
	GetAll() (map[string]int, error)
}
