package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"jansetu/internal/domain"
	"jansetu/pkg/platform/sentinel"
)

const (
	appKeyPrefix     = "jansetu:application:"
	citizenKeyPrefix = "jansetu:citizen:"
)

// RedisStore persists applications as JSON values keyed by application ID,
// with a per-citizen set for listings.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore constructs a Redis-backed application store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, app *domain.Application) error {
	raw, err := json.Marshal(app)
	if err != nil {
		return fmt.Errorf("encode application: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, appKeyPrefix+app.ID, raw, 0)
	pipe.SAdd(ctx, citizenKeyPrefix+app.CitizenID+":applications", app.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save application: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, applicationID string) (*domain.Application, error) {
	raw, err := s.client.Get(ctx, appKeyPrefix+applicationID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get application: %w", err)
	}

	var app domain.Application
	if err := json.Unmarshal(raw, &app); err != nil {
		return nil, fmt.Errorf("decode application: %w", err)
	}
	return &app, nil
}

func (s *RedisStore) ListByCitizen(ctx context.Context, citizenID string) ([]*domain.Application, error) {
	ids, err := s.client.SMembers(ctx, citizenKeyPrefix+citizenID+":applications").Result()
	if err != nil {
		return nil, fmt.Errorf("list application ids: %w", err)
	}

	out := make([]*domain.Application, 0, len(ids))
	for _, id := range ids {
		app, err := s.Get(ctx, id)
		if err != nil {
			// Index entries may outlive their value; skip the hole.
			if errors.Is(err, sentinel.ErrNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, app)
	}
	return out, nil
}
