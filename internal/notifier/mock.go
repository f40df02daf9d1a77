package notifier

import (
	"sync"

	"github.com/sankalpcc/pavilion/internal/matches"
)

// MockNotifier is a mock implementation of the Notifier interface.
type MockNotifier struct {
	mu sync.Mutex

	SendFixturesDigestFunc func(feed matches.FixtureFeed, dryRun bool) error

	SendFixturesDigestCalls []matches.FixtureFeed
}

// NewMock creates a new mock instance.
func NewMock() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) SendFixturesDigest(feed matches.FixtureFeed, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendFixturesDigestCalls = append(m.SendFixturesDigestCalls, feed)
	if m.SendFixturesDigestFunc != nil {
		return m.SendFixturesDigestFunc(feed, dryRun)
	}
	return nil
}
