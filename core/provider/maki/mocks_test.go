package maki

import (
	"context"
	"io"
	"strings"

	"svg-icon-library/core/interfaces"
)

// mockResponse implements interfaces.Response for tests.
type mockResponse struct {
	status int
	body   string
}

func (m *mockResponse) StatusCode() int {
	return m.status
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	return ""
}

// mockHTTPClient implements interfaces.HTTPClient and counts calls.
type mockHTTPClient struct {
	calls       int
	lastURL     string
	lastHeaders map[string]string
	response    *mockResponse
	err         error
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	return m.GetWithHeaders(ctx, url, nil)
}

func (m *mockHTTPClient) GetWithHeaders(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
	m.calls++
	m.lastURL = url
	m.lastHeaders = headers

	if m.err != nil {
		return nil, m.err
	}
	if m.response != nil {
		return m.response, nil
	}
	return &mockResponse{status: 200}, nil
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
