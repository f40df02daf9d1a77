package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds the Prometheus collectors for the application.
type Service struct {
	FeedRequests       *prometheus.CounterVec
	UpstreamErrors     prometheus.Counter
	RosterFallbacks    prometheus.Counter
	NotifSent          prometheus.Counter
	NotifFailed        prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
