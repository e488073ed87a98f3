// ABOUTME: In-memory project metadata store for tests and ephemeral sessions
// ABOUTME: Implements the MetadataStore interface without persistence

package memory

import "sync"

type entryKey struct {
	namespace string
	key       string
}

// Store implements the MetadataStore interface in memory.
type Store struct {
	mu      sync.RWMutex
	entries map[entryKey]string
}

// NewStore creates an empty in-memory metadata store.
func NewStore() *Store {
	return &Store{entries: make(map[entryKey]string)}
}

// ReadEntry returns the value stored under (namespace, key).
func (s *Store) ReadEntry(namespace, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, exists := s.entries[entryKey{namespace, key}]
	return value, exists, nil
}

// WriteEntry stores value under (namespace, key), replacing any existing entry.
func (s *Store) WriteEntry(namespace, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[entryKey{namespace, key}] = value
	return nil
}

// RemoveEntry deletes the entry under (namespace, key).
func (s *Store) RemoveEntry(namespace, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, entryKey{namespace, key})
	return nil
}
