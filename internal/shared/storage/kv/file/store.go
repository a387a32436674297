package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"placement-backend/internal/shared/storage/kv"
	"placement-backend/internal/shared/util"
)

// Store persists each key as one file under a base directory. Writes go
// through a temp file and rename so a crashed write never leaves a
// truncated value behind.
type Store struct {
	baseDir string
	mu      sync.Mutex
}

// New creates a file-backed store rooted at baseDir. The directory is
// created lazily on first write.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

var _ kv.Store = (*Store)(nil)

func (s *Store) pathFor(key string) (string, error) {
	name, err := util.SanitizeFileName(key)
	if err != nil {
		return "", fmt.Errorf("invalid storage key %q: %w", key, err)
	}
	return filepath.Join(s.baseDir, name+".json"), nil
}

// GetItem reads the file for key.
func (s *Store) GetItem(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	path, err := s.pathFor(key)
	if err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), true, nil
}

// SetItem writes value to the file for key.
func (s *Store) SetItem(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", s.baseDir, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

// RemoveItem deletes the file for key.
func (s *Store) RemoveItem(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}
