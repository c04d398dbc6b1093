package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"notary/internal/notary/models"
)

// PostgresStore persists the aggregate in a one-row table. The upsert keeps
// Save atomic without an explicit transaction.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the backing table. Idempotent.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS notary_state (
			id         SMALLINT PRIMARY KEY CHECK (id = 1),
			state      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("migrate notary_state: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context) (*models.State, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `SELECT state FROM notary_state WHERE id = 1`).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotInitialized
	}
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	return decodeState(raw)
}

func (s *PostgresStore) Save(ctx context.Context, state *models.State) error {
	raw, err := encodeState(state)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO notary_state (id, state, updated_at)
		VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET state = EXCLUDED.state, updated_at = now()
	`, raw)
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

func (s *PostgresStore) Initialized(ctx context.Context) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM notary_state WHERE id = 1)`).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check state: %w", err)
	}
	return exists, nil
}
