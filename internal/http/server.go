package http

import (
	"net/http"

	"github.com/sankalpcc/pavilion/internal/club"
	"github.com/sankalpcc/pavilion/internal/config"
	"github.com/sankalpcc/pavilion/internal/matches"
	"github.com/sankalpcc/pavilion/internal/metrics"
	"github.com/sankalpcc/pavilion/internal/notifier"
)

func NewServer(store club.ClubStore, matchSvc matches.MatchService, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier) *Server {
	server := &Server{
		Store:          store,
		Matches:        matchSvc,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// The website frontend is served from a different origin, so every
	// route carries the permissive CORS headers the site expects.
	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), corsMiddleware, paramsMiddleware))
	s.Router.Handle("GET /test", Chain(s.TestStoreHandler(), corsMiddleware, paramsMiddleware))
	s.Router.Handle("GET /clear", Chain(s.ClearStoreHandler(), corsMiddleware, paramsMiddleware))
	s.Router.Handle("GET /api/club-config", Chain(s.GetClubConfigHandler(), corsMiddleware, paramsMiddleware))
	s.Router.Handle("POST /api/club-config", Chain(s.SaveClubConfigHandler(), corsMiddleware, paramsMiddleware))
	s.Router.Handle("GET /api/fixtures", Chain(s.FixturesHandler(), corsMiddleware, paramsMiddleware))
	s.Router.Handle("GET /api/results", Chain(s.ResultsHandler(), corsMiddleware, paramsMiddleware))
	s.Router.Handle("GET /api/players", Chain(s.ListPlayersHandler(), corsMiddleware, paramsMiddleware))
	s.Router.Handle("POST /api/players", Chain(s.AddPlayerHandler(), corsMiddleware, paramsMiddleware))
	s.Router.Handle("GET /api/founders", Chain(s.ListFoundersHandler(), corsMiddleware, paramsMiddleware))
	s.Router.Handle("POST /api/founders", Chain(s.AddFounderHandler(), corsMiddleware, paramsMiddleware))
	s.Router.Handle("POST /api/notify/fixtures", Chain(s.NotifyFixturesHandler(), corsMiddleware, paramsMiddleware))
	s.Router.Handle("OPTIONS /", Chain(s.PreflightHandler(), corsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
