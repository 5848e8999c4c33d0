package notifier

import (
	"github.com/courtkeep/courtkeep/internal/fees"
	"github.com/courtkeep/courtkeep/internal/ranking"
	"github.com/courtkeep/courtkeep/internal/tennis"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For recorded and corrected matches
	SendResultNotification(match *tennis.MatchRecord, players []tennis.Player, dryRun bool) error
	// For slash commands
	SendLeaderboard(stats []ranking.PlayerStat, dryRun bool) error
	SendFeeSummary(playerFees []fees.PlayerFee, dryRun bool) error
	SendPlayerStats(stat *ranking.PlayerStat, query string, dryRun bool) error
	SendPlayerNotFound(query string, dryRun bool) error

	// For formatting responses for slash commands
	FormatLeaderboardResponse(stats []ranking.PlayerStat) (any, error)
	FormatFeeSummaryResponse(playerFees []fees.PlayerFee) (any, error)
	FormatPlayerStatsResponse(stat *ranking.PlayerStat, query string) (any, error)
	FormatPlayerNotFoundResponse(query string) (any, error)
}
