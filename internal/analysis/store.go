package analysis

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"placement-backend/internal/shared/storage/kv"
	"placement-backend/internal/shared/telemetry"
)

// DefaultHistoryKey is the storage key holding the serialized history
// array. The key name and array-of-record shape are the compatibility
// contract with earlier versions of this data.
const DefaultHistoryKey = "placement_readiness_history"

// maxEntries bounds the persisted history; creates beyond it silently
// evict the oldest entries.
const maxEntries = 50

// Store persists analysis records as one JSON array, newest first,
// under a single key of a kv.Store.
//
// The mutex serializes read-modify-write cycles within this process.
// Two processes sharing the same backing store still race last-writer-
// wins; that limitation is inherited from the original storage model
// and deliberately not papered over here.
type Store struct {
	kv  kv.Store
	key string
	mu  sync.Mutex
}

// NewStore builds a Store over the given key-value backend. An empty
// key selects DefaultHistoryKey.
func NewStore(backend kv.Store, key string) *Store {
	if key == "" {
		key = DefaultHistoryKey
	}
	return &Store{kv: backend, key: key}
}

// List returns all valid records, newest first. Entries failing the
// minimal validity check are dropped from the result and evicted from
// storage (repair-on-read), so the list can shrink between calls.
// Malformed stored data reads as an empty history.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	valid := make([]map[string]any, 0, len(entries))
	for _, entry := range entries {
		if IsValidEntry(entry) {
			valid = append(valid, entry)
		}
	}
	if dropped := len(entries) - len(valid); dropped > 0 {
		telemetry.Info("history.repair", map[string]any{
			"removed":   dropped,
			"remaining": len(valid),
		})
		if err := s.write(ctx, valid); err != nil {
			telemetry.Error("history.repair_write_failed", map[string]any{"error": err.Error()})
		}
	}

	records := make([]Record, 0, len(valid))
	for _, entry := range valid {
		records = append(records, NormalizeRecord(entry))
	}
	return records, nil
}

// Get returns the record with the given id or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return Record{}, err
	}
	for _, entry := range entries {
		if entryID, _ := entry["id"].(string); entryID == id {
			return NormalizeRecord(entry), nil
		}
	}
	return Record{}, ErrNotFound
}

// Create persists a new record at the head of the history, assigning an
// id and creation timestamp when absent and truncating the history to
// its capacity. Serialization failures propagate to the caller.
func (s *Store) Create(ctx context.Context, record Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record.ID == "" {
		record.ID = newEntryID()
	}
	if record.CreatedAt == "" {
		record.CreatedAt = nowISO()
	}
	if record.UpdatedAt == "" {
		record.UpdatedAt = record.CreatedAt
	}

	entry, err := record.ToMap()
	if err != nil {
		return Record{}, fmt.Errorf("serialize record: %w", err)
	}

	entries, err := s.load(ctx)
	if err != nil {
		return Record{}, err
	}

	entries = append([]map[string]any{entry}, entries...)
	if len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}
	if err := s.write(ctx, entries); err != nil {
		return Record{}, err
	}
	return record, nil
}

// Update merges the patch onto the stored entry. The entry's id and
// original createdAt survive regardless of what the patch carries;
// identity and creation time cannot be rewritten through this path.
func (s *Store) Update(ctx context.Context, id string, patch map[string]any) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return Record{}, err
	}

	for i, entry := range entries {
		entryID, _ := entry["id"].(string)
		if entryID != id {
			continue
		}
		createdAt := entry["createdAt"]
		for field, value := range patch {
			entry[field] = value
		}
		entry["id"] = id
		entry["createdAt"] = createdAt
		entries[i] = entry

		if err := s.write(ctx, entries); err != nil {
			return Record{}, err
		}
		return NormalizeRecord(entry), nil
	}
	return Record{}, ErrNotFound
}

// Delete removes the record with the given id. Deleting an absent id
// succeeds; only write failures are reported.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return err
	}
	kept := entries[:0]
	for _, entry := range entries {
		if entryID, _ := entry["id"].(string); entryID != id {
			kept = append(kept, entry)
		}
	}
	return s.write(ctx, kept)
}

// Clear removes the entire history.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.RemoveItem(ctx, s.key)
}

// load reads and deserializes the stored array. Malformed payloads
// degrade to an empty history; only backend failures are errors.
func (s *Store) load(ctx context.Context) ([]map[string]any, error) {
	value, ok, err := s.kv.GetItem(ctx, s.key)
	if err != nil {
		return nil, err
	}
	if !ok || value == "" {
		return []map[string]any{}, nil
	}
	var entries []map[string]any
	if err := json.Unmarshal([]byte(value), &entries); err != nil {
		telemetry.Error("history.corrupt_payload", map[string]any{"error": err.Error()})
		return []map[string]any{}, nil
	}
	return entries, nil
}

func (s *Store) write(ctx context.Context, entries []map[string]any) error {
	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("serialize history: %w", err)
	}
	return s.kv.SetItem(ctx, s.key, string(payload))
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newEntryID builds a time-prefixed id with a random suffix. Collisions
// are treated as negligible, not formally impossible.
func newEntryID() string {
	var buf [9]byte
	suffix := make([]byte, len(buf))
	if _, err := rand.Read(buf[:]); err != nil {
		return fmt.Sprintf("%d-%09d", time.Now().UnixMilli(), time.Now().UnixNano()%1e9)
	}
	for i, b := range buf {
		suffix[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
}
