package matches

import "sync"

// MockService is a mock implementation of the MatchService interface.
type MockService struct {
	mu sync.Mutex

	FixturesFunc func(opts FeedOptions) (FixtureFeed, error)
	ResultsFunc  func(opts FeedOptions) (ResultFeed, error)

	FixturesCalls []FeedOptions
	ResultsCalls  []FeedOptions
}

// NewMock creates a new mock instance.
func NewMock() *MockService {
	return &MockService{}
}

func (m *MockService) Fixtures(opts FeedOptions) (FixtureFeed, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FixturesCalls = append(m.FixturesCalls, opts)
	if m.FixturesFunc != nil {
		return m.FixturesFunc(opts)
	}
	return FixtureFeed{Source: SourceSample, Items: SampleFixtures()}, nil
}

func (m *MockService) Results(opts FeedOptions) (ResultFeed, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResultsCalls = append(m.ResultsCalls, opts)
	if m.ResultsFunc != nil {
		return m.ResultsFunc(opts)
	}
	return ResultFeed{Source: SourceSample, Items: SampleResults()}, nil
}
