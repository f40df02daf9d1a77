package club

import "sync"

// MockStore is a mock implementation of the ClubStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	GetConfigFunc    func() (ClubConfig, error)
	SaveConfigFunc   func(upd ConfigUpdate) (ClubConfig, error)
	ListPlayersFunc  func() ([]Player, error)
	AddPlayerFunc    func(p Player) (string, error)
	ListFoundersFunc func() ([]Founder, error)
	AddFounderFunc   func(f Founder) (string, error)
	CollectionsFunc  func() ([]string, error)
	PingFunc         func() error
	ClearFunc        func()

	// Call records
	SaveConfigCalls []ConfigUpdate
	AddPlayerCalls  []Player
	AddFounderCalls []Founder
	ClearCalls      int
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) GetConfig() (ClubConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetConfigFunc != nil {
		return m.GetConfigFunc()
	}
	return ClubConfig{ClubName: DefaultClubName}, nil
}

func (m *MockStore) SaveConfig(upd ConfigUpdate) (ClubConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveConfigCalls = append(m.SaveConfigCalls, upd)
	if m.SaveConfigFunc != nil {
		return m.SaveConfigFunc(upd)
	}
	return ClubConfig{ClubName: DefaultClubName}, nil
}

func (m *MockStore) ListPlayers() ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListPlayersFunc != nil {
		return m.ListPlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) AddPlayer(p Player) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddPlayerCalls = append(m.AddPlayerCalls, p)
	if m.AddPlayerFunc != nil {
		return m.AddPlayerFunc(p)
	}
	return "mock-player-id", nil
}

func (m *MockStore) ListFounders() ([]Founder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListFoundersFunc != nil {
		return m.ListFoundersFunc()
	}
	return nil, nil
}

func (m *MockStore) AddFounder(f Founder) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddFounderCalls = append(m.AddFounderCalls, f)
	if m.AddFounderFunc != nil {
		return m.AddFounderFunc(f)
	}
	return "mock-founder-id", nil
}

func (m *MockStore) Collections() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CollectionsFunc != nil {
		return m.CollectionsFunc()
	}
	return []string{"club_config", "founders", "players"}, nil
}

func (m *MockStore) Ping() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PingFunc != nil {
		return m.PingFunc()
	}
	return nil
}

func (m *MockStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	if m.ClearFunc != nil {
		m.ClearFunc()
	}
}
