package memory

import (
	"context"
	"sync"

	"placement-backend/internal/shared/storage/kv"
)

// Store keeps values in memory and is safe for concurrent use. It backs
// dev deployments and tests.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// New constructs an empty in-memory store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

var _ kv.Store = (*Store)(nil)

// GetItem returns the stored value for key.
func (s *Store) GetItem(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok, nil
}

// SetItem stores value under key.
func (s *Store) SetItem(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// RemoveItem deletes key.
func (s *Store) RemoveItem(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
