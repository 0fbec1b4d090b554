package models

import (
	"sync"

	"github.com/google/uuid"
)

// SessionStore binds opaque tokens to usernames for the life of the process.
// Sessions end at logout or process exit; there is no expiry.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]string
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]string)}
}

// Create issues a fresh token bound to username.
func (s *SessionStore) Create(username string) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = username
	s.mu.Unlock()
	return token
}

// Resolve maps a token back to its username.
func (s *SessionStore) Resolve(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	username, ok := s.sessions[token]
	return username, ok
}

// Destroy forgets the token. Unknown tokens are a no-op.
func (s *SessionStore) Destroy(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
