package audit

import (
	"context"
	"sync"
)

// InMemoryStore keeps events in an append-only slice. Default sink when no
// Postgres URL is configured.
type InMemoryStore struct {
	mu     sync.RWMutex
	events []*Event
}

// NewInMemoryStore constructs an empty in-memory audit store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Append(_ context.Context, event *Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *event
	s.events = append(s.events, &copied)
	return nil
}

// Recent returns the newest events, most recent first.
func (s *InMemoryStore) Recent(_ context.Context, limit int) ([]*Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 || limit > len(s.events) {
		limit = len(s.events)
	}
	out := make([]*Event, 0, limit)
	for i := len(s.events) - 1; i >= len(s.events)-limit; i-- {
		copied := *s.events[i]
		out = append(out, &copied)
	}
	return out, nil
}
