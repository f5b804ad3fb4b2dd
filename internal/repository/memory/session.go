package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Jinxhater/LUXE/internal/domain"
	"github.com/Jinxhater/LUXE/internal/repository"
	apperrors "github.com/Jinxhater/LUXE/pkg/errors"
)

type sessionEntry struct {
	session   domain.Session
	expiresAt time.Time
}

// SessionStore is a mutex-guarded session map with per-entry expiry.
// Expired entries are dropped on read and by Sweep.
type SessionStore struct {
	mu      sync.Mutex
	entries map[string]sessionEntry
	now     func() time.Time
}

var _ repository.SessionStore = (*SessionStore)(nil)

func NewSessionStore() *SessionStore {
	return &SessionStore{
		entries: make(map[string]sessionEntry),
		now:     time.Now,
	}
}

func (s *SessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, apperrors.NotFoundMessage("session not found")
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, id)
		return nil, apperrors.NotFoundMessage("session not found")
	}
	sess := e.session
	return &sess, nil
}

func (s *SessionStore) Put(_ context.Context, id string, session *domain.Session, ttl time.Duration) error {
	if ttl <= 0 {
		return apperrors.InvalidInput("session ttl must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[id] = sessionEntry{session: *session, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)
	return nil
}

// Sweep removes expired entries and returns how many were removed.
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var n int
	for id, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, id)
			n++
		}
	}
	return n
}

// Run sweeps every interval until ctx is done.
func (s *SessionStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Len returns the number of entries, including ones not yet swept.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
