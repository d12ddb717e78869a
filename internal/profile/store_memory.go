package profile

import (
	"context"
	"sync"

	"jansetu/internal/domain"
	"jansetu/pkg/platform/sentinel"
)

// InMemoryStore keeps profiles in a map. It is the default store when no
// Postgres URL is configured, and the workhorse for unit tests.
type InMemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]*domain.CitizenProfile
}

// NewInMemoryStore constructs an empty in-memory profile store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{profiles: make(map[string]*domain.CitizenProfile)}
}

func (s *InMemoryStore) Save(_ context.Context, profile *domain.CitizenProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *profile
	s.profiles[profile.CitizenID] = &copied
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, citizenID string) (*domain.CitizenProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.profiles[citizenID]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) Delete(_ context.Context, citizenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[citizenID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.profiles, citizenID)
	return nil
}

func (s *InMemoryStore) List(_ context.Context) ([]*domain.CitizenProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.CitizenProfile, 0, len(s.profiles))
	for _, p := range s.profiles {
		copied := *p
		out = append(out, &copied)
	}
	return out, nil
}
