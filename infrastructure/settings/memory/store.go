// ABOUTME: In-memory settings store for tests and programmatic configuration
// ABOUTME: Implements the SettingsStore interface without persistence

package memory

import "sync"

// Store implements the SettingsStore interface in memory.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewStore creates a settings store seeded with the given values. A nil map
// starts the store empty.
func NewStore(values map[string]string) *Store {
	store := &Store{values: make(map[string]string)}
	for key, value := range values {
		store.values[key] = value
	}
	return store
}

// Value returns the setting at key, or defaultValue when absent.
func (s *Store) Value(key, defaultValue string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if value, ok := s.values[key]; ok {
		return value
	}
	return defaultValue
}

// SetValue stores the setting at key.
func (s *Store) SetValue(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}
