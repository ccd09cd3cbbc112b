package assistant

import "sync"

// Manager owns one Session per conversation id. Each session holds its own
// turn history, so deleting or resetting one conversation can never touch
// another's in-flight state.
type Manager struct {
	gateway Gateway

	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewManager builds an empty session registry over the given gateway.
func NewManager(gateway Gateway) *Manager {
	return &Manager{
		gateway:  gateway,
		sessions: make(map[int64]*Session),
	}
}

// Get returns the session for the conversation id, creating it on first use.
func (m *Manager) Get(conversationID int64) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if session, ok := m.sessions[conversationID]; ok {
		return session
	}
	session := NewSession(m.gateway)
	m.sessions[conversationID] = session
	return session
}

// Lookup returns the session for the conversation id, or nil when none
// exists. Unlike Get it never creates one.
func (m *Manager) Lookup(conversationID int64) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[conversationID]
}

// Delete removes the conversation's session. A no-op for unknown ids.
func (m *Manager) Delete(conversationID int64) {
	m.mu.Lock()
	delete(m.sessions, conversationID)
	m.mu.Unlock()
}

// Reset drops every session.
func (m *Manager) Reset() {
	m.mu.Lock()
	m.sessions = make(map[int64]*Session)
	m.mu.Unlock()
}
