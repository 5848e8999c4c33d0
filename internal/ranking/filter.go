package ranking

import (
	"strings"

	"github.com/courtkeep/courtkeep/internal/tennis"
)

// FilterMatches narrows a match collection by the filter's date, type and
// player dimensions. All predicates compose by logical AND. The input is
// never mutated; the result is a new slice preserving the original order.
func FilterMatches(matches []tennis.MatchRecord, f Filter) []tennis.MatchRecord {
	out := make([]tennis.MatchRecord, 0, len(matches))
	for _, m := range matches {
		if !matchesFilter(m, f) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func matchesFilter(m tennis.MatchRecord, f Filter) bool {
	if f.From != nil && m.MatchDate < f.From.Unix() {
		return false
	}
	if f.To != nil && m.MatchDate > f.To.Unix() {
		return false
	}
	if f.MatchType != "" && f.MatchType != string(tennis.MatchTypeAll) &&
		string(m.MatchType) != f.MatchType {
		return false
	}
	if f.PlayerID != "" && !tennis.Participates(m, f.PlayerID) {
		return false
	}
	return true
}

// FilterStats narrows aggregated rows by a case-insensitive player-name
// substring. An empty query passes everything.
func FilterStats(stats []PlayerStat, query string) []PlayerStat {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return stats
	}

	out := make([]PlayerStat, 0, len(stats))
	for _, s := range stats {
		if strings.Contains(strings.ToLower(s.PlayerName), query) {
			out = append(out, s)
		}
	}
	return out
}
