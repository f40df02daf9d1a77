package playcricket

import "sync"

// MockClient is a mock implementation of the PlayCricketClient interface.
type MockClient struct {
	mu sync.Mutex

	GetMatchesFunc func(apiKey string, q MatchesQuery) (map[string]any, error)

	GetMatchesCalls []MatchesQuery
}

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) GetMatches(apiKey string, q MatchesQuery) (map[string]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetMatchesCalls = append(m.GetMatchesCalls, q)
	if m.GetMatchesFunc != nil {
		return m.GetMatchesFunc(apiKey, q)
	}
	return map[string]any{}, nil
}
