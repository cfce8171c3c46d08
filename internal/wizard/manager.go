package wizard

import "sync"

// Manager keeps one live session per client token. Sessions are created on
// first use and dropped after a successful save or explicit reset.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Get returns the session for a client token, creating it when absent.
func (manager *Manager) Get(token string) *Session {
	manager.mu.RLock()
	session, ok := manager.sessions[token]
	manager.mu.RUnlock()
	if ok {
		return session
	}

	manager.mu.Lock()
	defer manager.mu.Unlock()
	if session, ok := manager.sessions[token]; ok {
		return session
	}
	session = NewSession()
	manager.sessions[token] = session
	return session
}

// Drop discards the session for a client token.
func (manager *Manager) Drop(token string) {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	if session, ok := manager.sessions[token]; ok {
		session.Navigator().CancelAutoAdvance()
		delete(manager.sessions, token)
	}
}
