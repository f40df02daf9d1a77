package http

import (
	"net/http"

	"github.com/sankalpcc/pavilion/internal/club"
	"github.com/sankalpcc/pavilion/internal/config"
	"github.com/sankalpcc/pavilion/internal/matches"
	"github.com/sankalpcc/pavilion/internal/metrics"
	"github.com/sankalpcc/pavilion/internal/notifier"
)

type Server struct {
	Store          club.ClubStore
	Matches        matches.MatchService
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Router         *http.ServeMux
}
