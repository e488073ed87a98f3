// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, logging, settings and metadata storage.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory TTL cache backed by go-cache
// - http/standard: HTTP client with rate limiting and a single-attempt policy
// - logger/standard: Simple structured logger writing key=value pairs
// - logger/logrus: Structured logger backed by logrus
// - settings/file: YAML-file settings store under the XDG config directory
// - settings/memory: In-memory settings store for tests and embeddings
// - metadata/sqlite: SQLite-backed project metadata store
// - metadata/memory: In-memory metadata store for tests
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration at construction
// - Testable: Include unit tests against the port contracts
//
// # Cache
//
//	cache := memory.NewMemoryCache(5*time.Minute, 10*time.Minute)
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// # HTTP Client
//
// The HTTP client performs exactly one attempt per request. Transient
// failures surface immediately so providers can degrade to empty results:
//
//	client := standard.NewRateLimitedHTTPClient(10*time.Second, 5, 10)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The loggers support structured logging with fields:
//
//	logger := standard.NewStandardLogger()
//	logger.Info("search completed", map[string]interface{}{
//	    "provider": "Maki",
//	    "results":  12,
//	})
package infrastructure
