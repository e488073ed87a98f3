package standard

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGet_SetsUserAgent(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(DefaultTimeout)
	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	defer resp.Body().Close()

	if gotUserAgent != userAgent {
		t.Errorf("User-Agent = %v, want %v", gotUserAgent, userAgent)
	}
}

func TestGetWithHeaders_AppliesHeaders(t *testing.T) {
	var gotAccept, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(DefaultTimeout)
	resp, err := client.GetWithHeaders(context.Background(), server.URL, map[string]string{
		"Accept":        "application/json",
		"Authorization": "OAuth abc",
	})
	if err != nil {
		t.Fatalf("GetWithHeaders returned error: %v", err)
	}
	defer resp.Body().Close()

	if gotAccept != "application/json" {
		t.Errorf("Accept = %v, want application/json", gotAccept)
	}
	if gotAuth != "OAuth abc" {
		t.Errorf("Authorization = %v, want OAuth abc", gotAuth)
	}
}

func TestGet_ReturnsBodyAndStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("missing"))
	}))
	defer server.Close()

	client := NewStandardHTTPClient(DefaultTimeout)
	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", resp.StatusCode())
	}

	body, _ := io.ReadAll(resp.Body())
	if string(body) != "missing" {
		t.Errorf("Body = %v, want missing", string(body))
	}
}

func TestGet_SingleAttempt(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(DefaultTimeout)
	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	defer resp.Body().Close()

	if calls != 1 {
		t.Errorf("server called %d times, want exactly 1 (no retry)", calls)
	}
	if resp.StatusCode() != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500 passed through", resp.StatusCode())
	}
}

func TestRateLimitedClient_CancelledContext(t *testing.T) {
	client := NewRateLimitedHTTPClient(DefaultTimeout, 0.001, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.Get(ctx, "http://example.invalid")
	if err == nil {
		t.Error("Get should fail when the limiter wait outlives the context")
	}
}
