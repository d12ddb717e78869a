package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jansetu/internal/domain"
	"jansetu/pkg/platform/sentinel"
)

// PostgresStore persists profiles in PostgreSQL as JSONB documents keyed by
// citizen ID. The document form keeps the schema stable while the profile
// shape evolves.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgres constructs a PostgreSQL-backed profile store.
func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the profile table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS citizen_profiles (
			citizen_id TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("ensure citizen_profiles schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, profile *domain.CitizenProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO citizen_profiles (citizen_id, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (citizen_id)
		DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		profile.CitizenID, data, profile.CreatedAt, profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, citizenID string) (*domain.CitizenProfile, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM citizen_profiles WHERE citizen_id = $1`, citizenID).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	var profile domain.CitizenProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	return &profile, nil
}

func (s *PostgresStore) Delete(ctx context.Context, citizenID string) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM citizen_profiles WHERE citizen_id = $1`, citizenID)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*domain.CitizenProfile, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT data FROM citizen_profiles ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*domain.CitizenProfile
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan profile row: %w", err)
		}
		var profile domain.CitizenProfile
		if err := json.Unmarshal(data, &profile); err != nil {
			return nil, fmt.Errorf("unmarshal profile: %w", err)
		}
		profiles = append(profiles, &profile)
	}
	return profiles, rows.Err()
}
