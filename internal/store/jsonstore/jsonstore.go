package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/idilsaglam/mealdb/internal/debug"
)

// JSON-backed key-value storage. Single file holding one object whose values
// are raw JSON, human-readable, portable. Every Set rewrites the whole file.
// An advisory lock next to the file serializes a running browser and one-shot
// commands.

const (
	dataDirName  = ".mealdb"
	dataFileName = "store.json"

	defaultLockTimeout = 5 * time.Second
	lockPollInterval   = 50 * time.Millisecond
)

// ErrLockTimeout is returned when the store lock cannot be taken in time.
var ErrLockTimeout = errors.New("store is locked by another process")

// DefaultPath is ~/.mealdb/store.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, dataDirName, dataFileName), nil
}

// Store is a JSON object file of key/value pairs guarded by a file lock.
type Store struct {
	path        string
	lockTimeout time.Duration
}

// Open returns a store at path. The file is created on first Set.
// A non-positive lockTimeout selects the default.
func Open(path string, lockTimeout time.Duration) *Store {
	if lockTimeout <= 0 {
		lockTimeout = defaultLockTimeout
	}
	return &Store{path: path, lockTimeout: lockTimeout}
}

// Path is the backing file.
func (s *Store) Path() string { return s.path }

// Get returns the raw value under key and whether it was present.
// A missing file reads as an empty store.
func (s *Store) Get(key string) (json.RawMessage, bool, error) {
	unlock, err := s.lock(false)
	if err != nil {
		return nil, false, err
	}
	defer unlock()

	data, err := s.load()
	if err != nil {
		return nil, false, err
	}
	v, ok := data[key]
	return v, ok, nil
}

// Set stores value under key and persists the whole file.
func (s *Store) Set(key string, value json.RawMessage) error {
	if !json.Valid(value) {
		return fmt.Errorf("set %s: invalid json value", key)
	}
	return s.update(func(data map[string]json.RawMessage) {
		data[key] = value
	})
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	return s.update(func(data map[string]json.RawMessage) {
		delete(data, key)
	})
}

func (s *Store) update(mutate func(map[string]json.RawMessage)) error {
	unlock, err := s.lock(true)
	if err != nil {
		return err
	}
	defer unlock()

	data, err := s.load()
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		// Unreadable content is replaced rather than blocking every write.
		debug.Logf("jsonstore: discarding corrupt %s: %v", s.path, err)
		data, err = map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return err
	}
	mutate(data)
	return s.save(data)
}

func (s *Store) load() (map[string]json.RawMessage, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	data := map[string]json.RawMessage{}
	if len(b) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return data, nil
}

func (s *Store) save(data map[string]json.RawMessage) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

func (s *Store) lock(exclusive bool) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	fl := flock.New(s.path + ".lock")

	ctx, cancel := context.WithTimeout(context.Background(), s.lockTimeout)
	defer cancel()

	var locked bool
	var err error
	if exclusive {
		locked, err = fl.TryLockContext(ctx, lockPollInterval)
	} else {
		locked, err = fl.TryRLockContext(ctx, lockPollInterval)
	}
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return nil, fmt.Errorf("lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrLockTimeout, s.path)
	}
	return func() { _ = fl.Unlock() }, nil
}
