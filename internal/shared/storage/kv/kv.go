// Package kv defines the string key-value contract the record store
// persists through: synchronous GetItem/SetItem/RemoveItem over string
// values, with JSON serialization handled by the caller.
package kv

import "context"

// Store is a synchronous string-valued key-value store.
type Store interface {
	// GetItem returns the value for key. ok is false when the key is
	// absent; absence is not an error.
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	// SetItem writes value under key, replacing any existing value.
	SetItem(ctx context.Context, key, value string) error
	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error
}
