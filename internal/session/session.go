// Package session implements the in-memory admin session store.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"
)

// Session tracks when a token was issued and last seen.
type Session struct {
	CreatedAt    time.Time
	LastActivity time.Time
}

// Manager issues and tracks opaque session tokens. State is process-wide
// and lost on restart; sessions live until Destroy, there is no time-based
// expiry.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create generates an unguessable session id and records it.
func (m *Manager) Create() (string, error) {
	id, err := generateToken()
	if err != nil {
		return "", err
	}
	now := time.Now()
	m.mu.Lock()
	m.sessions[id] = &Session{CreatedAt: now, LastActivity: now}
	m.mu.Unlock()
	return id, nil
}

// Valid reports whether id refers to a live session.
func (m *Manager) Valid(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sessions[id]
	return ok
}

// Touch updates the session's last-activity time. Unknown ids are ignored.
func (m *Manager) Touch(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		s.LastActivity = time.Now()
	}
}

// Destroy removes the session. Destroying an unknown id is a no-op.
func (m *Manager) Destroy(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
