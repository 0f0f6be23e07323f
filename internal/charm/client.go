// ABOUTME: Charm KV blob store backend with automatic cloud sync.
// ABOUTME: Adapts the synced KV database to the blob.Store contract.
package charm

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/charmbracelet/charm/kv"
	badger "github.com/dgraph-io/badger/v3"

	"github.com/harperreed/liftlog/internal/blob"
)

const (
	dbName    = "liftlog"
	charmHost = "charm.2389.dev"
)

var (
	globalStore *Store
	storeOnce   sync.Once
	storeErr    error
)

// Store is a blob.Store backed by Charm KV. Data is E2E encrypted and
// synced through Charm Cloud after each write.
type Store struct {
	kv       *kv.KV
	autoSync bool
	mu       sync.RWMutex
}

var _ blob.Store = (*Store)(nil)

// Open initializes the global Charm-backed store.
// Thread-safe; can be called multiple times.
func Open() (*Store, error) {
	storeOnce.Do(func() {
		// Set server before opening KV
		if err := os.Setenv("CHARM_HOST", charmHost); err != nil {
			storeErr = err
			return
		}

		db, err := kv.OpenWithDefaultsFallback(dbName)
		if err != nil {
			storeErr = err
			return
		}

		globalStore = &Store{
			kv:       db,
			autoSync: true,
		}

		// Pull remote data on startup (skip in read-only mode)
		if !db.IsReadOnly() {
			_ = db.Sync()
		}
	})

	return globalStore, storeErr
}

// IsReadOnly returns true if the database is open in read-only mode.
// This happens when another process (like an MCP server) holds the lock.
func (s *Store) IsReadOnly() bool {
	return s.kv.IsReadOnly()
}

// Sync synchronizes local state with Charm Cloud.
func (s *Store) Sync() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.kv.IsReadOnly() {
		return nil
	}
	return s.kv.Sync()
}

// Reset wipes local data and rebuilds from Charm Cloud.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Reset()
}

// SetAutoSync enables or disables automatic sync after writes.
func (s *Store) SetAutoSync(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoSync = enabled
}

// syncIfEnabled pushes to Charm Cloud if autoSync is on.
func (s *Store) syncIfEnabled() {
	if s.autoSync && !s.kv.IsReadOnly() {
		_ = s.kv.Sync()
	}
}

// Read returns the blob's contents, or blob.ErrNotFound.
func (s *Store) Read(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := s.kv.Get([]byte(key))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, blob.ErrNotFound
		}
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return data, nil
}

// Write replaces the blob's contents and syncs.
func (s *Store) Write(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process (MCP server?)")
	}

	if err := s.kv.Set([]byte(key), data); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	s.syncIfEnabled()
	return nil
}

// Delete removes the blob and syncs. Deleting a missing blob is not an error.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kv.IsReadOnly() {
		return fmt.Errorf("cannot delete: database is locked by another process (MCP server?)")
	}

	if err := s.kv.Delete([]byte(key)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	s.syncIfEnabled()
	return nil
}

// Keys lists all blob keys in the store, sorted.
func (s *Store) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, err := s.kv.Keys()
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	keys := make([]string, 0, len(raw))
	for _, k := range raw {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	return keys, nil
}

// Stat reports whether the blob exists. Charm KV keeps no per-key
// modification time, so ModTime is always zero.
func (s *Store) Stat(key string) (blob.Info, error) {
	_, err := s.Read(key)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			return blob.Info{}, nil
		}
		return blob.Info{}, err
	}
	return blob.Info{Exists: true}, nil
}

// Close closes the KV database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kv != nil {
		return s.kv.Close()
	}
	return nil
}
