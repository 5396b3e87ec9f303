package engine

import (
	"sync"

	"github.com/ftkrshna/channelpost/internal/domain"
)

// Sessions is the in-memory session store: one live session per user,
// keyed by user id. Starting a new flow replaces any existing session.
type Sessions struct {
	mu     sync.Mutex
	byUser map[int64]*domain.Session
}

// NewSessions creates an empty session store.
func NewSessions() *Sessions {
	return &Sessions{byUser: make(map[int64]*domain.Session)}
}

// Get returns the user's live session, if any.
func (s *Sessions) Get(userID int64) (*domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byUser[userID]
	return sess, ok
}

// Put installs a session, replacing any previous one for the same user.
func (s *Sessions) Put(sess *domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byUser[sess.UserID] = sess
}

// Delete drops the user's session. Deleting a missing session is a no-op.
func (s *Sessions) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byUser, userID)
}

// Len returns the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byUser)
}
