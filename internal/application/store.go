package application

import (
	"context"

	"jansetu/internal/domain"
)

// Store persists applications. Implementations return sentinel.ErrNotFound
// for missing IDs.
type Store interface {
	Save(ctx context.Context, app *domain.Application) error
	Get(ctx context.Context, applicationID string) (*domain.Application, error)
	ListByCitizen(ctx context.Context, citizenID string) ([]*domain.Application, error)
}
