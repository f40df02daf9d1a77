package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		FeedRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pavilion_feed_requests_total",
			Help: "The total number of fixture/result feed requests, by feed and data source.",
		}, []string{"feed", "source"}),
		UpstreamErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pavilion_upstream_errors_total",
			Help: "The total number of failed Play-Cricket API calls.",
		}),
		RosterFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pavilion_roster_fallbacks_total",
			Help: "The total number of roster reads served from sample data because the store errored.",
		}),
		NotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pavilion_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		NotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pavilion_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pavilion_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.FeedRequests,
		s.UpstreamErrors,
		s.RosterFallbacks,
		s.NotifSent,
		s.NotifFailed,
		s.StartupTimeSeconds,
	)
	return s
}

func (s *Service) IncFeedRequest(feed string, source string) {
	s.FeedRequests.WithLabelValues(feed, source).Inc()
}

func (s *Service) IncUpstreamError() {
	s.UpstreamErrors.Inc()
}

func (s *Service) IncRosterFallback() {
	s.RosterFallbacks.Inc()
}

func (s *Service) IncNotifSent() {
	s.NotifSent.Inc()
}

func (s *Service) IncNotifFailed() {
	s.NotifFailed.Inc()
}

func (s *Service) SetStartupTime(seconds float64) {
	s.StartupTimeSeconds.Set(seconds)
}
