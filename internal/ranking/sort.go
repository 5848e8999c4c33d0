package ranking

import "sort"

// Sort orders aggregated stats by the given field. The sort is stable, so
// players with equal keys keep their relative input order and results are
// reproducible across runs. An unknown field falls back to points; the
// default direction is descending. The input slice is not modified.
func Sort(stats []PlayerStat, field SortField, direction Direction) []PlayerStat {
	out := make([]PlayerStat, len(stats))
	copy(out, stats)

	key := sortKey(field)
	asc := direction == Ascending
	sort.SliceStable(out, func(i, j int) bool {
		if asc {
			return key(out[i]) < key(out[j])
		}
		return key(out[i]) > key(out[j])
	})
	return out
}

func sortKey(field SortField) func(PlayerStat) float64 {
	switch field {
	case SortTotal:
		return func(s PlayerStat) float64 { return float64(s.Total) }
	case SortWins:
		return func(s PlayerStat) float64 { return float64(s.Wins) }
	case SortDraws:
		return func(s PlayerStat) float64 { return float64(s.Draws) }
	case SortLosses:
		return func(s PlayerStat) float64 { return float64(s.Losses) }
	case SortWinRate:
		return func(s PlayerStat) float64 { return s.WinRate }
	case SortNotLoseRate:
		return func(s PlayerStat) float64 { return s.NotLoseRate }
	default:
		return func(s PlayerStat) float64 { return float64(s.Points) }
	}
}
