package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/placement-service/internal/domain"
)

// ErrSessionNotFound covers unknown, expired and deleted sessions alike.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps server-side sessions keyed by opaque id.
type SessionStore interface {
	Create(ctx context.Context, userID string) (*domain.Session, error)
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

// MemorySessionStore is a process-local SessionStore.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
	ttl      time.Duration
	now      func() time.Time
}

// NewMemorySessionStore creates an empty store whose sessions live for ttl.
func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domain.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// WithClock replaces the time source. Intended for tests.
func (s *MemorySessionStore) WithClock(now func() time.Time) *MemorySessionStore {
	s.now = now
	return s
}

func (s *MemorySessionStore) Create(_ context.Context, userID string) (*domain.Session, error) {
	now := s.now().UTC()
	session := domain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()
	return &session, nil
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.Expired(s.now()) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

// Sweep drops expired sessions and returns how many were removed.
func (s *MemorySessionStore) Sweep() int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored sessions, expired ones included.
func (s *MemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close discards every session.
func (s *MemorySessionStore) Close() error {
	s.mu.Lock()
	s.sessions = make(map[string]domain.Session)
	s.mu.Unlock()
	return nil
}
