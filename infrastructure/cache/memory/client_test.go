package memory

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestCache() *MemoryCache {
	return NewMemoryCache(time.Minute, 10*time.Minute)
}

func TestSetAndGet(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := cache.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("Get = %v, want value", string(got))
	}
}

func TestGet_MissingKey(t *testing.T) {
	cache := newTestCache()

	_, err := cache.Get(context.Background(), "absent")
	if !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get error = %v, want ErrCacheMiss", err)
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	_ = cache.Set(ctx, "key", []byte("abc"), time.Minute)

	first, _ := cache.Get(ctx, "key")
	first[0] = 'x'

	second, _ := cache.Get(ctx, "key")
	if string(second) != "abc" {
		t.Errorf("cached value mutated through returned slice: %v", string(second))
	}
}

func TestSet_ZeroTTLNeverExpires(t *testing.T) {
	cache := NewMemoryCache(time.Millisecond, time.Minute)
	ctx := context.Background()

	_ = cache.Set(ctx, "key", []byte("keep"), 0)
	time.Sleep(5 * time.Millisecond)

	if _, err := cache.Get(ctx, "key"); err != nil {
		t.Errorf("zero-TTL entry expired: %v", err)
	}
}

func TestDelete(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	_ = cache.Set(ctx, "key", []byte("value"), time.Minute)
	if err := cache.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := cache.Get(ctx, "key"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get after Delete = %v, want ErrCacheMiss", err)
	}
}

func TestOperations_CancelledContext(t *testing.T) {
	cache := newTestCache()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := cache.Set(ctx, "key", []byte("v"), time.Minute); err == nil {
		t.Error("Set should fail with cancelled context")
	}
	if _, err := cache.Get(ctx, "key"); err == nil {
		t.Error("Get should fail with cancelled context")
	}
	if err := cache.Delete(ctx, "key"); err == nil {
		t.Error("Delete should fail with cancelled context")
	}
}
