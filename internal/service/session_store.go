package service

import (
	"strings"
	"sync"

	"github.com/njprem/discover-zimbabwe/internal/domain"
)

// SessionStore keeps the single demo session. Any non-empty email signs in;
// there is no credential check and nothing is persisted.
type SessionStore struct {
	mu      sync.Mutex
	current *domain.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Login replaces any active session. The display name is the part of the
// email before the first "@", or the whole email when it has none.
func (s *SessionStore) Login(email string) (*domain.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	name, _, _ := strings.Cut(email, "@")
	session := &domain.Session{DisplayName: name, Email: email}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	cp := *session
	return &cp, nil
}

func (s *SessionStore) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

func (s *SessionStore) Current() (*domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, false
	}
	cp := *s.current
	return &cp, true
}

func (s *SessionStore) Active() bool {
	_, ok := s.Current()
	return ok
}
