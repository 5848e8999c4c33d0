package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/courtkeep/courtkeep/internal/fees"
	"github.com/courtkeep/courtkeep/internal/metrics"
	"github.com/courtkeep/courtkeep/internal/notifier"
	"github.com/courtkeep/courtkeep/internal/ranking"
	"github.com/courtkeep/courtkeep/internal/tennis"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// Implement the Notifier interface
func (s *Notifier) SendResultNotification(match *tennis.MatchRecord, players []tennis.Player, dryRun bool) error {
	msg := s.formatResultNotification(match, players)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendLeaderboard(stats []ranking.PlayerStat, dryRun bool) error {
	msg := s.formatLeaderboard(stats)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendFeeSummary(playerFees []fees.PlayerFee, dryRun bool) error {
	msg := s.formatFeeSummary(playerFees)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendPlayerStats(stat *ranking.PlayerStat, query string, dryRun bool) error {
	msg := s.formatPlayerStats(stat)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendPlayerNotFound(query string, dryRun bool) error {
	msg := s.formatPlayerNotFound(query)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// FormatLeaderboardResponse formats a leaderboard message for a slash command response.
func (s *Notifier) FormatLeaderboardResponse(stats []ranking.PlayerStat) (any, error) {
	return s.formatLeaderboard(stats), nil
}

// FormatFeeSummaryResponse formats a fee summary message for a slash command response.
func (s *Notifier) FormatFeeSummaryResponse(playerFees []fees.PlayerFee) (any, error) {
	return s.formatFeeSummary(playerFees), nil
}

// FormatPlayerStatsResponse formats a player stats message for a slash command response.
func (s *Notifier) FormatPlayerStatsResponse(stat *ranking.PlayerStat, query string) (any, error) {
	return s.formatPlayerStats(stat), nil
}

// FormatPlayerNotFoundResponse formats a player not found message for a slash command response.
func (s *Notifier) FormatPlayerNotFoundResponse(query string) (any, error) {
	return s.formatPlayerNotFound(query), nil
}

// formatResultNotification creates the Slack message for a recorded match using Block Kit.
func (s *Notifier) formatResultNotification(match *tennis.MatchRecord, players []tennis.Player) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header
	headerText := slack.NewTextBlockObject("plain_text", "🎾 Match recorded! 🎾", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	// Details
	timeStr := time.Unix(match.MatchDate, 0).Format("Monday 02 Jan, 15:04")
	detailsText := fmt.Sprintf("%s match on %s", match.MatchType, timeStr)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, false, false), nil, nil))

	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}
	displayName := func(id string) string {
		if name, ok := names[id]; ok {
			return name
		}
		return id
	}
	teamName := func(first, second string) string {
		parts := []string{displayName(first)}
		if second != "" {
			parts = append(parts, displayName(second))
		}
		return strings.Join(parts, " & ")
	}

	winners := teamName(match.Winner1ID, match.Winner2ID)
	losers := teamName(match.Loser1ID, match.Loser2ID)

	var resultText string
	if tennis.IsDraw(match.Score) {
		resultText = fmt.Sprintf("%s and %s drew at %s", winners, losers, match.Score)
	} else {
		resultText = fmt.Sprintf("%s beat %s %s 🏆", winners, losers, match.Score)
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", resultText, true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatLeaderboard creates a Slack message to display the club rankings.
func (s *Notifier) formatLeaderboard(stats []ranking.PlayerStat) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header
	headerText := slack.NewTextBlockObject("plain_text", "🏆 Club Rankings 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(stats) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No stats available yet. Go play some matches!", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	// Player Ranks
	for i, stat := range stats {
		rank := i + 1
		var medal string
		switch rank {
		case 1:
			medal = "🥇"
		case 2:
			medal = "🥈"
		case 3:
			medal = "🥉"
		}

		playerText := fmt.Sprintf("%d. %s %s\n> Points: %d | W-D-L: %d-%d-%d | Win %%: %.2f%% | Not-Lose %%: %.2f%%",
			rank,
			medal,
			stat.PlayerName,
			stat.Points,
			stat.Wins,
			stat.Draws,
			stat.Losses,
			stat.WinRate,
			stat.NotLoseRate,
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", playerText, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatFeeSummary creates a Slack message to display each player's monthly fees.
func (s *Notifier) formatFeeSummary(playerFees []fees.PlayerFee) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header
	headerText := slack.NewTextBlockObject("plain_text", "💰 Fee Summary 💰", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(playerFees) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No fees due for this period.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for _, fee := range playerFees {
		feeText := fmt.Sprintf("%s\n> Matches: %d (W-D-L: %d-%d-%d)\n> Base: %s | Bet: %s | Total: %s",
			fee.PlayerName,
			fee.TotalMatches,
			fee.Wins,
			fee.Draws,
			fee.Losses,
			formatWon(fee.BaseFee),
			formatWon(fee.BetFee),
			formatWon(fee.TotalFee),
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", feeText, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerStats creates a Slack message to display a single player's stats.
func (s *Notifier) formatPlayerStats(stat *ranking.PlayerStat) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header
	headerText := fmt.Sprintf("🏆 Stats for %s 🏆", stat.PlayerName)
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", headerText, true, false)))

	playerText := fmt.Sprintf("> *Points*: %d\n> *W-D-L*: %d-%d-%d\n> *Win %%*: %.2f%%\n> *Not-Lose %%*: %.2f%%",
		stat.Points,
		stat.Wins,
		stat.Draws,
		stat.Losses,
		stat.WinRate,
		stat.NotLoseRate,
	)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", playerText, false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerNotFound creates a Slack message for when a player's stats are not found.
func (s *Notifier) formatPlayerNotFound(query string) slack.Message {
	text := fmt.Sprintf("Sorry, I couldn't find a player matching *%s*. Try a different name.", query)
	return slack.NewBlockMessage(
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil),
	)
}

func formatWon(amount int64) string {
	return fmt.Sprintf("₩%d", amount)
}
