package http

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/courtkeep/courtkeep/internal/club"
	"github.com/courtkeep/courtkeep/internal/export"
	"github.com/courtkeep/courtkeep/internal/fees"
	"github.com/courtkeep/courtkeep/internal/pubsub"
	"github.com/courtkeep/courtkeep/internal/ranking"
	"github.com/courtkeep/courtkeep/internal/tennis"
	"github.com/slack-go/slack"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.URL.Query().Get("matchID")
		if matchID != "" {
			log.Info("Received request to clear a specific match", "matchID", matchID)
			if err := s.Store.DeleteMatch(matchID); err != nil {
				http.Error(w, "Failed to delete match", http.StatusNotFound)
				return
			}
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, "Cleared match %s from store!", matchID)
		} else {
			log.Info("Received request to clear entire store")
			s.Store.Clear()
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "Store cleared!")
		}
	}
}

// PlayersHandler lists the club roster on GET and upserts players on POST.
// POST with ?deactivate= or ?activate= toggles a player instead.
func (s *Server) PlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			if id := r.URL.Query().Get("deactivate"); id != "" {
				s.setPlayerActive(w, r, id, false)
				return
			}
			if id := r.URL.Query().Get("activate"); id != "" {
				s.setPlayerActive(w, r, id, true)
				return
			}
			var players []tennis.Player
			if err := json.NewDecoder(r.Body).Decode(&players); err != nil {
				http.Error(w, "Invalid JSON", http.StatusBadRequest)
				return
			}
			if isDryRunFromContext(r) {
				log.Info("[Dry Run] Would upsert players", "count", len(players))
				w.WriteHeader(http.StatusOK)
				return
			}
			if err := s.Store.UpsertPlayers(players); err != nil {
				log.Error("Failed to upsert players", "error", err)
				http.Error(w, "Failed to upsert players", http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
		default:
			players, err := s.Store.ListPlayers()
			if err != nil {
				http.Error(w, "Failed to get players", http.StatusInternalServerError)
				log.Error("Failed to get players from store", "error", err)
				return
			}
			writeJSON(w, players)
		}
	}
}

func (s *Server) setPlayerActive(w http.ResponseWriter, r *http.Request, playerID string, active bool) {
	if isDryRunFromContext(r) {
		log.Info("[Dry Run] Would set player active flag", "playerID", playerID, "active", active)
		w.WriteHeader(http.StatusOK)
		return
	}
	if err := s.Store.SetPlayerActive(playerID, active); err != nil {
		log.Warn("Failed to set player active flag", "playerID", playerID, "error", err)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Player %s active=%t", playerID, active)
}

// MatchesHandler lists matches on GET and records a new match on POST.
func (s *Server) MatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var sub club.MatchSubmission
			if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
				http.Error(w, "Invalid JSON", http.StatusBadRequest)
				return
			}
			if isDryRunFromContext(r) {
				log.Info("[Dry Run] Would record match", "score", sub.Score)
				w.WriteHeader(http.StatusOK)
				return
			}
			match, err := s.Store.CreateMatch(sub)
			if err != nil {
				log.Warn("Rejected match submission", "error", err)
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			s.Metrics.IncMatchesRecorded()
			s.MetricsStore.Increment("matches_recorded")
			s.publishMatchEvent(pubsub.EventMatchRecorded, match)
			w.WriteHeader(http.StatusCreated)
			writeJSON(w, match)
		default:
			filter, err := parseFilter(r)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			matches, err := s.Store.ListMatches()
			if err != nil {
				http.Error(w, "Failed to get matches", http.StatusInternalServerError)
				log.Error("Failed to get matches from store", "error", err)
				return
			}
			writeJSON(w, ranking.FilterMatches(matches, filter))
		}
	}
}

// UpdateMatchScoreHandler corrects a recorded score. The winner and loser
// sides are re-derived from the edited score.
func (s *Server) UpdateMatchScoreHandler() http.HandlerFunc {
	type request struct {
		MatchID   string `json:"match_id"`
		Score     string `json:"score"`
		MatchDate int64  `json:"match_date"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.MatchID == "" || req.Score == "" {
			http.Error(w, "match_id and score are required", http.StatusBadRequest)
			return
		}
		if isDryRunFromContext(r) {
			log.Info("[Dry Run] Would update match score", "matchID", req.MatchID, "score", req.Score)
			w.WriteHeader(http.StatusOK)
			return
		}
		match, err := s.Store.UpdateMatchScore(req.MatchID, req.Score, req.MatchDate)
		if err != nil {
			log.Warn("Rejected score correction", "matchID", req.MatchID, "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.publishMatchEvent(pubsub.EventScoreCorrected, match)
		writeJSON(w, match)
	}
}

// ParseMatchHandler accepts free-form match text, runs it through the parsing
// service, resolves the named players against the roster and records the match.
func (s *Server) ParseMatchHandler() http.HandlerFunc {
	type request struct {
		Text string `json:"text"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.Text == "" {
			http.Error(w, "text is required", http.StatusBadRequest)
			return
		}

		parsed, err := s.Parser.ParseMatchText(r.Context(), req.Text)
		if err != nil {
			log.Error("Failed to parse match text", "error", err)
			http.Error(w, "Failed to parse match text", http.StatusBadGateway)
			return
		}

		resolve := func(names []string) ([]string, error) {
			ids := make([]string, 0, len(names))
			for _, name := range names {
				p, err := s.Store.FindPlayerByName(name)
				if err != nil {
					return nil, fmt.Errorf("unknown player %q", name)
				}
				ids = append(ids, p.ID)
			}
			return ids, nil
		}

		winnerIDs, err := resolve(parsed.WinnerNames)
		if err == nil {
			var loserIDs []string
			loserIDs, err = resolve(parsed.LoserNames)
			if err == nil {
				score, normErr := tennis.NormalizeScore(parsed.Score)
				if normErr != nil {
					err = normErr
				} else {
					sub := club.MatchSubmission{
						MatchType: tennis.MatchType(parsed.MatchType),
						Winner1ID: winnerIDs[0],
						Loser1ID:  loserIDs[0],
						Score:     score,
						MatchDate: parsed.MatchDate,
					}
					if len(winnerIDs) > 1 {
						sub.Winner2ID = winnerIDs[1]
					}
					if len(loserIDs) > 1 {
						sub.Loser2ID = loserIDs[1]
					}

					if isDryRunFromContext(r) {
						log.Info("[Dry Run] Would record parsed match", "score", sub.Score)
						writeJSON(w, sub)
						return
					}
					match, createErr := s.Store.CreateMatch(sub)
					if createErr != nil {
						err = createErr
					} else {
						s.Metrics.IncMatchesRecorded()
						s.MetricsStore.Increment("matches_recorded")
						s.publishMatchEvent(pubsub.EventMatchRecorded, match)
						w.WriteHeader(http.StatusCreated)
						writeJSON(w, match)
						return
					}
				}
			}
		}

		log.Warn("Rejected parsed match", "text", req.Text, "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
}

// RankingsHandler computes the ranking table for the requested period.
func (s *Server) RankingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		sortField := ranking.SortField(r.URL.Query().Get("sort"))
		direction := ranking.Descending
		if r.URL.Query().Get("order") == "asc" {
			direction = ranking.Ascending
		}

		start := time.Now()
		stats, err := s.computeStats(filter)
		if err != nil {
			http.Error(w, "Failed to compute rankings", http.StatusInternalServerError)
			return
		}
		stats = ranking.Sort(stats, sortField, direction)
		stats = ranking.FilterStats(stats, filter.Query)

		s.Metrics.IncRankingComputations()
		s.Metrics.ObserveComputeDuration(time.Since(start).Seconds())
		s.MetricsStore.Increment("ranking_computations")

		writeJSON(w, stats)
	}
}

// FeesHandler computes per-player fees for the requested period.
func (s *Server) FeesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerFees, err := s.computeFees(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, playerFees)
	}
}

// ExportMatchesHandler serves the match log as CSV.
func (s *Server) ExportMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		players, err := s.Store.ListPlayers()
		if err != nil {
			http.Error(w, "Failed to get players", http.StatusInternalServerError)
			return
		}
		matches, err := s.Store.ListMatches()
		if err != nil {
			http.Error(w, "Failed to get matches", http.StatusInternalServerError)
			return
		}
		matches = ranking.FilterMatches(matches, filter)

		s.Metrics.IncExportsGenerated()
		s.MetricsStore.Increment("exports_generated")

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="matches.csv"`)
		fmt.Fprint(w, export.MatchesCSV(export.ToMatchRows(matches, players)))
	}
}

// ExportFeesHandler serves the fee summary as CSV.
func (s *Server) ExportFeesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerFees, err := s.computeFees(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		s.Metrics.IncExportsGenerated()
		s.MetricsStore.Increment("exports_generated")

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="fees.csv"`)
		fmt.Fprint(w, export.FeesCSV(export.ToFeeRows(playerFees)))
	}
}

// CountersHandler exposes the persistent counters.
func (s *Server) CountersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counters, err := s.MetricsStore.GetAll()
		if err != nil {
			http.Error(w, "Failed to get counters", http.StatusInternalServerError)
			log.Error("Failed to get counters from store", "error", err)
			return
		}
		writeJSON(w, counters)
	}
}

// NotifyResultHandler is the push endpoint for the match-recorded topic. It
// re-reads the match and announces the result.
func (s *Server) NotifyResultHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received notify result message", "body", string(bodyBytes))
		// Define a small struct to decode the incoming JSON's `data` field
		var pubsubMsg struct {
			Subscription string `json:"subscription"`
			Message      struct {
				Data string `json:"data"` // base64-encoded message payload
			} `json:"message"`
		}

		// Parse the outer JSON to get `data`
		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		// Decode base64 to raw MessagePack bytes
		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}
		isDryRun := isDryRunFromContext(r)

		event := pubsub.MatchRecordedEvent{}
		if err := s.pubsub.ProcessMessage(rawData, &event); err != nil {
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}

		match, err := s.Store.GetMatch(event.MatchID)
		if err != nil {
			log.Error("Failed to load match for notification", "matchID", event.MatchID, "error", err)
			http.Error(w, "Match not found", http.StatusNotFound)
			return
		}
		players, err := s.Store.GetPlayers(participantIDs(match))
		if err != nil {
			log.Error("Failed to load players for notification", "error", err)
			http.Error(w, "Failed to load players", http.StatusInternalServerError)
			return
		}

		if err := s.Notifier.SendResultNotification(match, players, isDryRun); err != nil {
			log.Error("Failed to notify result", "error", err)
			http.Error(w, "Failed to notify result", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg slack.Message) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}

// LeaderboardCommandHandler returns a handler for the /leaderboard Slack command.
func (s *Server) LeaderboardCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := s.computeStats(ranking.Filter{})
		if err != nil {
			http.Error(w, "Failed to compute rankings", http.StatusInternalServerError)
			return
		}
		stats = ranking.Sort(stats, ranking.SortPoints, ranking.Descending)

		msg, err := s.Notifier.FormatLeaderboardResponse(stats)
		if err != nil {
			http.Error(w, "Failed to format leaderboard", http.StatusInternalServerError)
			log.Error("Failed to format leaderboard", "error", err)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}

		respondWithSlackMsg(w, slackMsg)
	}
}

// FeesCommandHandler returns a handler for the /fees Slack command. It covers
// the current calendar month.
func (s *Server) FeesCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

		players, err := s.Store.ListPlayers()
		if err != nil {
			http.Error(w, "Failed to get players", http.StatusInternalServerError)
			return
		}
		matches, err := s.Store.ListMatches()
		if err != nil {
			http.Error(w, "Failed to get matches", http.StatusInternalServerError)
			return
		}
		matches = ranking.FilterMatches(matches, ranking.Filter{From: &from, To: &now})
		playerFees := fees.Calculate(players, matches, s.Cfg.FeeConstants())

		msg, err := s.Notifier.FormatFeeSummaryResponse(playerFees)
		if err != nil {
			http.Error(w, "Failed to format fee summary", http.StatusInternalServerError)
			log.Error("Failed to format fee summary", "error", err)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}

		respondWithSlackMsg(w, slackMsg)
	}
}

// PlayerStatsCommandHandler returns a handler for the /player-stats Slack command.
func (s *Server) PlayerStatsCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		playerName := r.FormValue("text")
		if playerName == "" {
			http.Error(w, "Player name is required.", http.StatusBadRequest)
			return
		}

		log.Info("Received player stats command", "player", playerName)

		var msg any
		player, err := s.Store.FindPlayerByName(playerName)
		if err != nil {
			log.Warn("Could not find player", "player", playerName, "error", err)
			msg, err = s.Notifier.FormatPlayerNotFoundResponse(playerName)
		} else {
			var stats []ranking.PlayerStat
			stats, err = s.computeStats(ranking.Filter{})
			if err == nil {
				var stat *ranking.PlayerStat
				for i := range stats {
					if stats[i].PlayerID == player.ID {
						stat = &stats[i]
						break
					}
				}
				if stat == nil {
					msg, err = s.Notifier.FormatPlayerNotFoundResponse(playerName)
				} else {
					msg, err = s.Notifier.FormatPlayerStatsResponse(stat, playerName)
				}
			}
		}

		if err != nil {
			http.Error(w, "Failed to format player stats", http.StatusInternalServerError)
			log.Error("Failed to format player stats", "error", err)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}
		respondWithSlackMsg(w, slackMsg)
	}
}

// computeStats aggregates player statistics for the matches selected by the filter.
func (s *Server) computeStats(filter ranking.Filter) ([]ranking.PlayerStat, error) {
	players, err := s.Store.ListPlayers()
	if err != nil {
		log.Error("Failed to get players from store", "error", err)
		return nil, err
	}
	matches, err := s.Store.ListMatches()
	if err != nil {
		log.Error("Failed to get matches from store", "error", err)
		return nil, err
	}
	matches = ranking.FilterMatches(matches, filter)
	return ranking.Aggregate(players, matches), nil
}

// computeFees calculates per-player fees for the period selected by the request.
func (s *Server) computeFees(r *http.Request) ([]fees.PlayerFee, error) {
	filter, err := parseFilter(r)
	if err != nil {
		return nil, err
	}

	players, err := s.Store.ListPlayers()
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}
	matches, err := s.Store.ListMatches()
	if err != nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}
	matches = ranking.FilterMatches(matches, filter)
	return fees.Calculate(players, matches, s.Cfg.FeeConstants()), nil
}

// parseFilter reads the common filtering query parameters. Dates are
// inclusive calendar days in the form 2006-01-02.
func parseFilter(r *http.Request) (ranking.Filter, error) {
	q := r.URL.Query()
	filter := ranking.Filter{
		MatchType: q.Get("type"),
		PlayerID:  q.Get("player"),
		Query:     q.Get("q"),
	}

	if fromStr := q.Get("from"); fromStr != "" {
		from, err := time.ParseInLocation("2006-01-02", fromStr, time.Local)
		if err != nil {
			return ranking.Filter{}, fmt.Errorf("invalid 'from' date %q, expected YYYY-MM-DD", fromStr)
		}
		filter.From = &from
	}
	if toStr := q.Get("to"); toStr != "" {
		to, err := time.ParseInLocation("2006-01-02", toStr, time.Local)
		if err != nil {
			return ranking.Filter{}, fmt.Errorf("invalid 'to' date %q, expected YYYY-MM-DD", toStr)
		}
		// Make the upper bound cover the whole day.
		to = to.Add(24*time.Hour - time.Second)
		filter.To = &to
	}
	return filter, nil
}

func participantIDs(m *tennis.MatchRecord) []string {
	ids := []string{m.Winner1ID, m.Loser1ID}
	if m.Winner2ID != "" {
		ids = append(ids, m.Winner2ID)
	}
	if m.Loser2ID != "" {
		ids = append(ids, m.Loser2ID)
	}
	return ids
}

func (s *Server) publishMatchEvent(topic pubsub.EventType, match *tennis.MatchRecord) {
	event := pubsub.MatchRecordedEvent{
		MatchID:   match.ID,
		MatchType: string(match.MatchType),
		Score:     match.Score,
		MatchDate: match.MatchDate,
	}
	if err := s.pubsub.SendMessage(topic, event); err != nil {
		log.Error("Failed to publish match event", "topic", topic, "matchID", match.ID, "error", err)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response to JSON", "error", err)
	}
}
