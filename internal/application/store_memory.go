package application

import (
	"context"
	"sort"
	"sync"

	"jansetu/internal/domain"
	"jansetu/pkg/platform/sentinel"
)

// InMemoryStore keeps applications in a map. Default store when no Redis
// URL is configured.
type InMemoryStore struct {
	mu   sync.RWMutex
	apps map[string]*domain.Application
}

// NewInMemoryStore constructs an empty in-memory application store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{apps: make(map[string]*domain.Application)}
}

func (s *InMemoryStore) Save(_ context.Context, app *domain.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *app
	s.apps[app.ID] = &copied
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, applicationID string) (*domain.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if app, ok := s.apps[applicationID]; ok {
		copied := *app
		return &copied, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) ListByCitizen(_ context.Context, citizenID string) ([]*domain.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*domain.Application
	for _, app := range s.apps {
		if app.CitizenID == citizenID {
			copied := *app
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
