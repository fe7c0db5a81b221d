package handlers

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
)

// SessionCookie names the cookie that carries the session token.
const SessionCookie = "session"

// Sessions maps opaque tokens to usernames.
type Sessions struct {
	mu     sync.RWMutex
	tokens map[string]string
}

// NewSessions constructs an empty session table.
func NewSessions() *Sessions {
	return &Sessions{tokens: make(map[string]string)}
}

// Create issues a token for user.
func (s *Sessions) Create(user string) string {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = user
	return token
}

// Lookup resolves a token.
func (s *Sessions) Lookup(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.tokens[token]
	return user, ok
}

// Revoke forgets a token.
func (s *Sessions) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
}

func (s *Sessions) fromRequest(r *http.Request) (token, user string, ok bool) {
	c, err := r.Cookie(SessionCookie)
	if err != nil || c.Value == "" {
		return "", "", false
	}
	user, ok = s.Lookup(c.Value)
	return c.Value, user, ok
}
