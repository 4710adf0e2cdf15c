package session

import (
	"log/slog"
	"sync"
)

// Manager tracks active sessions by share code.
type Manager struct {
	sessions map[string]*Session
	opts     Options
	mu       sync.RWMutex
}

// NewManager creates a manager whose sessions share opts.
func NewManager(opts Options) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		opts:     opts,
	}
}

// CreateSession creates an idle session for playerName under a fresh code.
func (m *Manager) CreateSession(playerName string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing := make(map[string]bool, len(m.sessions))
	for code := range m.sessions {
		existing[code] = true
	}

	code := GenerateCode(existing)
	s := NewSession(code, playerName, m.opts)
	m.sessions[code] = s

	slog.Info("session created", "code", code, "player", playerName)
	return s
}

// GetSession returns a session by its code, or nil.
func (m *Manager) GetSession(code string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[code]
}

// RemoveSession exits and forgets the session with code.
func (m *Manager) RemoveSession(code string) {
	m.mu.Lock()
	s, ok := m.sessions[code]
	delete(m.sessions, code)
	m.mu.Unlock()

	if !ok {
		return
	}
	s.Exit()
	slog.Info("session removed", "code", code)
}

// SessionCount returns the number of active sessions.
func (m *Manager) SessionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Shutdown exits every session.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Exit()
	}
	slog.Info("sessions shut down", "count", len(sessions))
}
