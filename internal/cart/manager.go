package cart

import "sync"

// Manager owns one Store per active session. Stores are created on first
// use and destroyed explicitly at session end (logout); cart state is never
// ambient global state.
type Manager struct {
	mu     sync.Mutex
	stores map[string]*Store
}

func NewManager() *Manager {
	return &Manager{
		stores: make(map[string]*Store),
	}
}

func (m *Manager) Session(sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	store, ok := m.stores[sessionID]
	if !ok {
		store = NewStore()
		m.stores[sessionID] = store
	}
	return store
}

func (m *Manager) End(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, sessionID)
}
