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

type Server struct {
	Store          club.ClubStore
	Metrics        metrics.Metrics
	MetricsStore   metrics.MetricsStore
	MetricsHandler http.Handler
	Cfg            config.Config
	Parser         parser.MatchParser
	Notifier       notifier.Notifier
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
