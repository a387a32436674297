package pgkv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"placement-backend/internal/shared/storage/kv"
)

// Store implements the key-value contract on a Postgres table managed
// by the embedded migrations (see internal/shared/storage/db).
type Store struct {
	DB *sql.DB
}

var _ kv.Store = (*Store)(nil)

// GetItem fetches the value for key.
func (s *Store) GetItem(ctx context.Context, key string) (string, bool, error) {
	const query = `SELECT value FROM kv_entries WHERE key = $1`
	var value string
	err := s.DB.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv get %s: %w", key, err)
	}
	return value, true, nil
}

// SetItem upserts the value for key.
func (s *Store) SetItem(ctx context.Context, key, value string) error {
	const query = `
INSERT INTO kv_entries (key, value, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	if _, err := s.DB.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("kv set %s: %w", key, err)
	}
	return nil
}

// RemoveItem deletes key; deleting an absent key succeeds.
func (s *Store) RemoveItem(ctx context.Context, key string) error {
	const query = `DELETE FROM kv_entries WHERE key = $1`
	if _, err := s.DB.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("kv remove %s: %w", key, err)
	}
	return nil
}
