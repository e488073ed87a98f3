// ABOUTME: YAML-file-backed settings store mirroring the host app's settings tree
// ABOUTME: Slash-separated keys map to nested YAML sections

package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Store implements the SettingsStore interface over a YAML file. Keys are
// slash-separated paths into nested sections, so "svg_library/noun_api_key"
// reads the noun_api_key field under the svg_library section.
type Store struct {
	mu   sync.Mutex
	path string
	tree map[string]interface{}
}

// DefaultPath returns the settings file location under the user's XDG config
// directory.
func DefaultPath() (string, error) {
	return xdg.ConfigFile("svg-icon-library/settings.yaml")
}

// NewStore loads (or initializes) a settings store backed by the YAML file at
// path. A missing file starts empty; it is created on the first SetValue.
func NewStore(path string) (*Store, error) {
	store := &Store{
		path: path,
		tree: make(map[string]interface{}),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &store.tree); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}
	if store.tree == nil {
		store.tree = make(map[string]interface{})
	}

	return store, nil
}

// Value returns the setting at key, or defaultValue when the key is absent
// or not a scalar.
func (s *Store) Value(key, defaultValue string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	node := interface{}(s.tree)
	for _, part := range strings.Split(key, "/") {
		section, ok := node.(map[string]interface{})
		if !ok {
			return defaultValue
		}
		node, ok = section[part]
		if !ok {
			return defaultValue
		}
	}

	switch v := node.(type) {
	case string:
		return v
	case bool:
		return fmt.Sprintf("%t", v)
	case int:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return defaultValue
	}
}

// SetValue stores the setting at key and writes the whole tree back to disk.
func (s *Store) SetValue(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	parts := strings.Split(key, "/")
	section := s.tree
	for _, part := range parts[:len(parts)-1] {
		child, ok := section[part].(map[string]interface{})
		if !ok {
			child = make(map[string]interface{})
			section[part] = child
		}
		section = child
	}
	section[parts[len(parts)-1]] = value

	return s.flush()
}

// flush serializes the tree to the backing file. Caller holds the lock.
func (s *Store) flush() error {
	data, err := yaml.Marshal(s.tree)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
