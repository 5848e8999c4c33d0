package ranking

import "github.com/courtkeep/courtkeep/internal/tennis"

// Points awarded per match outcome.
const (
	pointsWin  = 3
	pointsDraw = 1
	pointsLoss = -1
)

// Aggregate folds a filtered match collection into per-player counters and
// derived rates. Every input player gets a row, in input order, including
// players with no qualifying matches (all-zero counters, 0 rates). The
// computation is a pure function of its arguments; matches referencing
// unknown players simply never match the participation check.
func Aggregate(players []tennis.Player, matches []tennis.MatchRecord) []PlayerStat {
	stats := make([]PlayerStat, 0, len(players))
	for _, p := range players {
		var wins, draws, losses, points int
		for _, m := range matches {
			if !tennis.Participates(m, p.ID) {
				continue
			}
			switch {
			case tennis.IsDraw(m.Score):
				draws++
				points += pointsDraw
			case tennis.WonBy(m, p.ID):
				wins++
				points += pointsWin
			case tennis.LostBy(m, p.ID):
				losses++
				points += pointsLoss
			}
		}

		total := wins + draws + losses
		stat := PlayerStat{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Points:     points,
			Wins:       wins,
			Draws:      draws,
			Losses:     losses,
			Total:      total,
		}
		// Guard the zero-match case explicitly: rates are 0, never NaN.
		if total > 0 {
			stat.WinRate = float64(wins) / float64(total) * 100
			stat.NotLoseRate = float64(wins+draws) / float64(total) * 100
		}
		stats = append(stats, stat)
	}
	return stats
}
