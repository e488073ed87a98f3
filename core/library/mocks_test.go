package library

import (
	"context"
	"sync"
	"time"

	"svg-icon-library/core/domain"
)

// stubProvider is a scriptable IconProvider for service tests.
type stubProvider struct {
	name      string
	available bool
	panics    bool
	result    domain.SearchResult
	downloads bool

	mu          sync.Mutex
	probeCalls  int
	searchCalls int
}

func (s *stubProvider) Name() string {
	return s.name
}

func (s *stubProvider) Search(ctx context.Context, query string, page, perPage int) domain.SearchResult {
	s.mu.Lock()
	s.searchCalls++
	s.mu.Unlock()
	if s.panics {
		panic("provider exploded")
	}
	return s.result
}

func (s *stubProvider) IconDetails(ctx context.Context, iconID string) (*domain.SvgIcon, bool) {
	return nil, false
}

func (s *stubProvider) Download(ctx context.Context, icon domain.SvgIcon, destPath string) bool {
	return s.downloads
}

func (s *stubProvider) IsAvailable(ctx context.Context) bool {
	s.mu.Lock()
	s.probeCalls++
	s.mu.Unlock()
	return s.available
}

func (s *stubProvider) probes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.probeCalls
}

// mockCache implements interfaces.Cache over a map.
type mockCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMockCache() *mockCache {
	return &mockCache{entries: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if value, ok := m.entries[key]; ok {
		return value, nil
	}
	return nil, errMiss
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

type cacheMissError struct{}

func (cacheMissError) Error() string { return "cache miss" }

var errMiss = cacheMissError{}

// mockMetadata implements interfaces.MetadataStore over a map.
type mockMetadata struct {
	mu      sync.Mutex
	entries map[string]string
}

func newMockMetadata() *mockMetadata {
	return &mockMetadata{entries: make(map[string]string)}
}

func (m *mockMetadata) ReadEntry(namespace, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, exists := m.entries[namespace+"/"+key]
	return value, exists, nil
}

func (m *mockMetadata) WriteEntry(namespace, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[namespace+"/"+key] = value
	return nil
}

func (m *mockMetadata) RemoveEntry(namespace, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, namespace+"/"+key)
	return nil
}

// mockLogger implements interfaces.Logger and records messages.
type mockLogger struct {
	mu       sync.Mutex
	warnings []string
	errorLog []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnings = append(m.warnings, msg)
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorLog = append(m.errorLog, msg)
}

func (m *mockLogger) errorCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.errorLog)
}

// mapSettings is a minimal SettingsStore for service tests.
type mapSettings map[string]string

func (m mapSettings) Value(key, defaultValue string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return defaultValue
}

func (m mapSettings) SetValue(key, value string) error {
	m[key] = value
	return nil
}
