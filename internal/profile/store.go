// Package profile manages citizen profiles: creation, merge-style updates,
// profile building from document extractions, and deletion.
package profile

import (
	"context"

	"jansetu/internal/domain"
)

// Store persists citizen profiles.
// Implementations return sentinel.ErrNotFound for unknown citizen IDs.
type Store interface {
	Save(ctx context.Context, profile *domain.CitizenProfile) error
	Get(ctx context.Context, citizenID string) (*domain.CitizenProfile, error)
	Delete(ctx context.Context, citizenID string) error
	List(ctx context.Context) ([]*domain.CitizenProfile, error)
}
