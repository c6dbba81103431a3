package google

import (
	"context"
	"sync"
	"time"

	"authcore/internal/domain/service"
)

// memoryStateStore keeps states in process. It only works when a single instance serves both
// the redirect and the callback; deployments with Redis use the shared store instead.
type memoryStateStore struct {
	mu     sync.Mutex
	now    func() time.Time
	states map[string]time.Time
}

// NewMemoryStateStore creates the in-process OAuth state store.
func NewMemoryStateStore() service.OAuthStateStore {
	return newMemoryStateStore()
}

func newMemoryStateStore() *memoryStateStore {
	return &memoryStateStore{
		now:    time.Now,
		states: make(map[string]time.Time),
	}
}

func (s *memoryStateStore) Save(_ context.Context, state string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for known, expiresAt := range s.states {
		if !now.Before(expiresAt) {
			delete(s.states, known)
		}
	}
	s.states[state] = now.Add(ttl)

	return nil
}

func (s *memoryStateStore) Consume(_ context.Context, state string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.states[state]
	if !ok {
		return false, nil
	}
	delete(s.states, state)

	return s.now().Before(expiresAt), nil
}
