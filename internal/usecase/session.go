package usecase

import (
	"sync"

	"mf-receipts/internal/domain"

	"github.com/google/uuid"
)

// SessionState is the process-wide authentication signal. It is
// initialized once at login and cleared at logout; workflows consume it
// only through Authenticated and RequireAuthenticated.
type SessionState struct {
	mu        sync.RWMutex
	token     string
	sessionID string
}

// NewSessionState creates an unauthenticated session.
func NewSessionState() *SessionState {
	return &SessionState{}
}

// Init stores the credential token and assigns a fresh session id.
func (s *SessionState) Init(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.sessionID = uuid.NewString()
}

// Clear drops the token at logout.
func (s *SessionState) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.sessionID = ""
}

// Authenticated reports whether a token is present.
func (s *SessionState) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// SessionID returns the id assigned at Init, or empty.
func (s *SessionState) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID
}

// RequireAuthenticated is the single entry guard for workflows.
func (s *SessionState) RequireAuthenticated() error {
	if !s.Authenticated() {
		return domain.ErrNotAuthenticated
	}
	return nil
}
