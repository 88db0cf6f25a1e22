package state

import "sync"

type memoryManager struct {
	mu       sync.RWMutex
	fallback State
	sessions map[int64]*Session
}

// NewMemoryManager constructs an in-memory Manager. Users without a session
// are reported in the fallback state; a process restart resets everyone.
func NewMemoryManager(fallback State) Manager {
	return &memoryManager{
		fallback: fallback,
		sessions: make(map[int64]*Session),
	}
}

func (m *memoryManager) session(userID int64) *Session {
	sess, ok := m.sessions[userID]
	if !ok {
		sess = &Session{State: m.fallback}
		m.sessions[userID] = sess
	}
	return sess
}

// GetState returns the current FSM state of a user, or the fallback state if none exists.
func (m *memoryManager) GetState(userID int64) State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if sess, ok := m.sessions[userID]; ok {
		return sess.State
	}
	return m.fallback
}

// SetState sets the FSM state for the given user, creating a session if necessary.
func (m *memoryManager) SetState(userID int64, st State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session(userID).State = st
}

// Scratch retrieves the pending scratch value for the given user session.
func (m *memoryManager) Scratch(userID int64) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[userID]
	if !ok || !sess.HasScratch {
		return "", false
	}
	return sess.Scratch, true
}

// SetScratch stores a scratch value, overwriting any previous one.
func (m *memoryManager) SetScratch(userID int64, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess := m.session(userID)
	sess.Scratch = value
	sess.HasScratch = true
}

// ClearScratch removes the scratch value for the given user session.
func (m *memoryManager) ClearScratch(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sess, ok := m.sessions[userID]; ok {
		sess.Scratch = ""
		sess.HasScratch = false
	}
}

// Reset returns the user to the fallback state and discards scratch data.
func (m *memoryManager) Reset(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
