package server

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/at-ishikawa/hskquiz/internal/api"
	"github.com/at-ishikawa/hskquiz/internal/quiz"
)

type storedSession struct {
	controller *quiz.Controller
	lastUsed   time.Time
}

// SessionStore keeps one quiz controller per client. Controllers are not safe for concurrent
// use, so every access runs under the store lock. Sessions unused for longer than the TTL are
// evicted on the next access.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*storedSession
	ttl      time.Duration
	now      func() time.Time
	newID    func() string
	logger   *slog.Logger
}

type SessionStoreOption func(*SessionStore)

func WithClock(now func() time.Time) SessionStoreOption {
	return func(s *SessionStore) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) SessionStoreOption {
	return func(s *SessionStore) {
		s.newID = newID
	}
}

func WithStoreLogger(logger *slog.Logger) SessionStoreOption {
	return func(s *SessionStore) {
		s.logger = logger
	}
}

// NewSessionStore creates a store. A TTL of zero or less keeps sessions forever.
func NewSessionStore(ttl time.Duration, opts ...SessionStoreOption) *SessionStore {
	s := &SessionStore{
		sessions: make(map[string]*storedSession),
		ttl:      ttl,
		now:      time.Now,
		newID:    uuid.NewString,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add stores the controller under a new session id.
func (s *SessionStore) Add(controller *quiz.Controller) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictExpired()

	id := s.newID()
	s.sessions[id] = &storedSession{
		controller: controller,
		lastUsed:   s.now(),
	}
	s.logger.Debug("session created", slog.String("session_id", id))
	return id
}

// With runs fn with the controller of the session. It returns api.ErrSessionNotFound for an
// unknown or expired id.
func (s *SessionStore) With(id string, fn func(*quiz.Controller) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictExpired()

	session, ok := s.sessions[id]
	if !ok {
		return api.ErrSessionNotFound
	}
	session.lastUsed = s.now()
	return fn(session.controller)
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictExpired()
	return len(s.sessions)
}

func (s *SessionStore) evictExpired() {
	if s.ttl <= 0 {
		return
	}
	deadline := s.now().Add(-s.ttl)
	for id, session := range s.sessions {
		if session.lastUsed.Before(deadline) {
			delete(s.sessions, id)
			s.logger.Debug("session expired", slog.String("session_id", id))
		}
	}
}
