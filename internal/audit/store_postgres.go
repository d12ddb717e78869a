package audit

import (
	"context"
	"database/sql"
	"fmt"

	// Registers the postgres driver.
	_ "github.com/lib/pq"
)

// PostgresStore writes audit events to an append-only table over
// database/sql with the pq driver.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection pool to the given Postgres URL.
func NewPostgresStore(url string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open audit db: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// NewPostgresStoreFromDB wraps an existing connection pool.
func NewPostgresStoreFromDB(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the audit table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS audit_events (
			event_id       TEXT PRIMARY KEY,
			ts             TIMESTAMPTZ NOT NULL,
			action         TEXT NOT NULL,
			actor          TEXT NOT NULL,
			request_id     TEXT NOT NULL DEFAULT '',
			citizen_id     TEXT NOT NULL DEFAULT '',
			scheme_id      TEXT NOT NULL DEFAULT '',
			application_id TEXT NOT NULL DEFAULT '',
			outcome        TEXT NOT NULL,
			details        TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS audit_events_ts_idx ON audit_events (ts DESC);`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensure audit schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Append(ctx context.Context, event *Event) error {
	const q = `
		INSERT INTO audit_events
			(event_id, ts, action, actor, request_id, citizen_id, scheme_id, application_id, outcome, details)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := s.db.ExecContext(ctx, q,
		event.ID, event.Timestamp, event.Action, event.Actor, event.RequestID,
		event.CitizenID, event.SchemeID, event.ApplicationID, event.Outcome, event.Details,
	)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

func (s *PostgresStore) Recent(ctx context.Context, limit int) ([]*Event, error) {
	if limit <= 0 {
		limit = 100
	}
	const q = `
		SELECT event_id, ts, action, actor, request_id, citizen_id, scheme_id, application_id, outcome, details
		FROM audit_events
		ORDER BY ts DESC
		LIMIT $1`
	rows, err := s.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()

	var out []*Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(
			&e.ID, &e.Timestamp, &e.Action, &e.Actor, &e.RequestID,
			&e.CitizenID, &e.SchemeID, &e.ApplicationID, &e.Outcome, &e.Details,
		); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		out = append(out, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return out, nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
