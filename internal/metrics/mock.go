package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
type Mock struct {
	mu sync.Mutex

	FeedRequestCalls []struct {
		Feed   string
		Source string
	}
	UpstreamErrorCount  int
	RosterFallbackCount int
	NotifSentCount      int
	NotifFailedCount    int
	StartupTime         float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) IncFeedRequest(feed string, source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FeedRequestCalls = append(m.FeedRequestCalls, struct {
		Feed   string
		Source string
	}{feed, source})
}

func (m *Mock) IncUpstreamError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpstreamErrorCount++
}

func (m *Mock) IncRosterFallback() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RosterFallbackCount++
}

func (m *Mock) IncNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NotifSentCount++
}

func (m *Mock) IncNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NotifFailedCount++
}

func (m *Mock) SetStartupTime(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTime = seconds
}
