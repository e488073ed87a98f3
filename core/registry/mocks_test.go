package registry

import (
	"context"

	"svg-icon-library/core/domain"
)

// stubProvider is a scriptable IconProvider for registry tests.
type stubProvider struct {
	name        string
	available   bool
	panics      bool
	result      domain.SearchResult
	searchCalls int
}

func (s *stubProvider) Name() string {
	return s.name
}

func (s *stubProvider) Search(ctx context.Context, query string, page, perPage int) domain.SearchResult {
	s.searchCalls++
	if s.panics {
		panic("provider exploded")
	}
	return s.result
}

func (s *stubProvider) IconDetails(ctx context.Context, iconID string) (*domain.SvgIcon, bool) {
	return nil, false
}

func (s *stubProvider) Download(ctx context.Context, icon domain.SvgIcon, destPath string) bool {
	return false
}

func (s *stubProvider) IsAvailable(ctx context.Context) bool {
	return s.available
}

// mockLogger implements interfaces.Logger and records messages.
type mockLogger struct {
	warnings []string
	errors   []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.warnings = append(m.warnings, msg)
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.errors = append(m.errors, msg)
}
