// Package favorites keeps the user's favorite meal IDs: an ordered set,
// loaded once from durable key-value storage and rewritten in full on every
// change.
package favorites

import (
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/idilsaglam/mealdb/internal/debug"
)

// Key is the storage key holding the JSON array of IDs.
const Key = "recipeFavorites"

// KV is the durable storage the set is persisted to.
type KV interface {
	Get(key string) (json.RawMessage, bool, error)
	Set(key string, value json.RawMessage) error
}

// Store is the in-memory set backed by a KV. It is safe for concurrent use.
type Store struct {
	mu  sync.RWMutex
	kv  KV
	ids []string
}

// New loads the set from kv. A missing, unreadable or malformed value starts
// an empty set.
func New(kv KV) *Store {
	s := &Store{kv: kv, ids: []string{}}

	raw, ok, err := kv.Get(Key)
	if err != nil {
		debug.Logf("favorites: load: %v", err)
		return s
	}
	if !ok {
		return s
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		debug.Logf("favorites: ignoring invalid %s: %v", Key, err)
		return s
	}
	for _, id := range ids {
		if id != "" && !slices.Contains(s.ids, id) {
			s.ids = append(s.ids, id)
		}
	}
	return s
}

func (s *Store) IsFavorite(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.ids, id)
}

// All returns a copy of the IDs in insertion order.
func (s *Store) All() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.ids)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

// Toggle removes id if present, appends it otherwise, and persists the set.
// It reports whether id is a favorite afterwards. The in-memory change stands
// even if persisting fails.
func (s *Store) Toggle(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var on bool
	if i := slices.Index(s.ids, id); i >= 0 {
		s.ids = slices.Delete(s.ids, i, i+1)
	} else {
		s.ids = append(s.ids, id)
		on = true
	}
	return on, s.persist()
}

// Clear empties the set and persists it.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = []string{}
	return s.persist()
}

func (s *Store) persist() error {
	b, err := json.Marshal(s.ids)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := s.kv.Set(Key, b); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	return nil
}
