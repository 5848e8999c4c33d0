package http

import (
	"net/http"

	"github.com/courtkeep/courtkeep/internal/club"
	"github.com/courtkeep/courtkeep/internal/config"
	"github.com/courtkeep/courtkeep/internal/metrics"
	"github.com/courtkeep/courtkeep/internal/notifier"
	"github.com/courtkeep/courtkeep/internal/parser"
	"github.com/courtkeep/courtkeep/internal/pubsub"
)

func NewServer(store club.ClubStore, metricsSvc metrics.Metrics, metricsStore metrics.MetricsStore, metricsHandler http.Handler, cfg config.Config, matchParser parser.MatchParser, notifier notifier.Notifier, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsStore:   metricsStore,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Parser:         matchParser,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware))
	s.Router.Handle("/players", Chain(s.PlayersHandler(), paramsMiddleware))
	s.Router.Handle("/matches", Chain(s.MatchesHandler(), paramsMiddleware))
	s.Router.Handle("/matches/update-score", Chain(s.UpdateMatchScoreHandler(), paramsMiddleware))
	s.Router.Handle("/matches/parse", Chain(s.ParseMatchHandler(), paramsMiddleware))
	s.Router.Handle("/rankings", Chain(s.RankingsHandler(), paramsMiddleware))
	s.Router.Handle("/fees", Chain(s.FeesHandler(), paramsMiddleware))
	s.Router.Handle("/export/matches.csv", Chain(s.ExportMatchesHandler(), paramsMiddleware))
	s.Router.Handle("/export/fees.csv", Chain(s.ExportFeesHandler(), paramsMiddleware))
	s.Router.Handle("/counters", Chain(s.CountersHandler(), paramsMiddleware))
	s.Router.Handle("/notify-result", Chain(s.NotifyResultHandler(), paramsMiddleware))
	s.Router.Handle("/slack/command/leaderboard", Chain(s.LeaderboardCommandHandler(), paramsMiddleware))
	s.Router.Handle("/slack/command/fees", Chain(s.FeesCommandHandler(), paramsMiddleware))
	s.Router.Handle("/slack/command/player-stats", Chain(s.PlayerStatsCommandHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
