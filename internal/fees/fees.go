package fees

import (
	"sort"
	"time"

	"github.com/courtkeep/courtkeep/internal/tennis"
)

// specialLossScore is the scoreline that triggers the punitive loss fee.
const specialLossScore = "6-0"

// Constants holds the club's fee schedule. Amounts are in the smallest
// currency unit (KRW has no minor unit, so these are plain won).
type Constants struct {
	// BaseFee is charged once per active player with any qualifying match.
	BaseFee int64 `json:"base_fee"`
	// BetFee is charged per lost or drawn match.
	BetFee int64 `json:"bet_fee"`
	// SpecialLossFee replaces BetFee for a 6-0 loss.
	SpecialLossFee int64 `json:"special_loss_fee"`
	// MaxDailyFee caps the accumulated match fees per player per day.
	MaxDailyFee int64 `json:"max_daily_fee"`
}

// DefaultConstants is the fee schedule used when none is configured.
var DefaultConstants = Constants{
	BaseFee:        30000,
	BetFee:         20000,
	SpecialLossFee: 60000,
	MaxDailyFee:    100000,
}

// PlayerFee is a player's computed fee for an export period.
type PlayerFee struct {
	PlayerID     string `json:"player_id"`
	PlayerName   string `json:"player_name"`
	TotalMatches int    `json:"total_matches"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	BaseFee      int64  `json:"base_fee"`
	BetFee       int64  `json:"bet_fee"`
	TotalFee     int64  `json:"total_fee"`
}

// Calculate derives per-player fees from a filtered match collection. Match
// fees accumulate per local calendar day and each day is clamped to
// MaxDailyFee before summing, so one bad day cannot run away. Only players
// with a positive bet fee are returned, ordered by total fee descending
// (stable). Pure function of its inputs.
func Calculate(players []tennis.Player, matches []tennis.MatchRecord, c Constants) []PlayerFee {
	out := make([]PlayerFee, 0, len(players))
	for _, p := range players {
		fee := forPlayer(p, matches, c)
		if fee.BetFee <= 0 {
			continue
		}
		out = append(out, fee)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalFee > out[j].TotalFee
	})
	return out
}

// forPlayer folds one player's matches into daily buckets. Every outcome
// check is parametrized on the player under evaluation.
func forPlayer(p tennis.Player, matches []tennis.MatchRecord, c Constants) PlayerFee {
	fee := PlayerFee{PlayerID: p.ID, PlayerName: p.Name}
	daily := make(map[string]int64)

	for _, m := range matches {
		if !tennis.Participates(m, p.ID) {
			continue
		}
		fee.TotalMatches++
		day := time.Unix(m.MatchDate, 0).Format("2006-01-02")

		switch {
		case tennis.IsDraw(m.Score):
			fee.Draws++
			daily[day] += c.BetFee
		case tennis.WonBy(m, p.ID):
			fee.Wins++
		case tennis.LostBy(m, p.ID):
			fee.Losses++
			if m.Score == specialLossScore {
				daily[day] += c.SpecialLossFee
			} else {
				daily[day] += c.BetFee
			}
		}
	}

	for _, amount := range daily {
		if amount > c.MaxDailyFee {
			amount = c.MaxDailyFee
		}
		fee.BetFee += amount
	}

	if p.Active {
		fee.BaseFee = c.BaseFee
	}
	fee.TotalFee = fee.BaseFee + fee.BetFee
	return fee
}
