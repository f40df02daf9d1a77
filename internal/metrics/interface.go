package metrics

// Metrics defines the interface for recording application metrics.
type Metrics interface {
	IncFeedRequest(feed string, source string)
	IncUpstreamError()
	IncRosterFallback()
	IncNotifSent()
	IncNotifFailed()
	SetStartupTime(seconds float64)
}
