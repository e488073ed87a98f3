// ABOUTME: Provider registry holding named catalog adapters
// ABOUTME: Fans a query out to all available providers with per-provider isolation

package registry

import (
	"context"
	"fmt"

	"svg-icon-library/core/domain"
	"svg-icon-library/core/interfaces"
	"svg-icon-library/core/provider"
)

// Registry stores provider instances keyed by display name. It is built
// wholesale from settings and replaced, never mutated incrementally, when
// settings change.
type Registry struct {
	providers map[string]provider.IconProvider
	order     []string
	logger    interfaces.Logger
}

// New creates an empty registry.
func New(logger interfaces.Logger) *Registry {
	return &Registry{
		providers: make(map[string]provider.IconProvider),
		logger:    logger,
	}
}

// Register stores a provider under its name. Re-registering an existing name
// replaces the prior instance in place; there is no merge.
func (r *Registry) Register(p provider.IconProvider) {
	name := p.Name()
	if _, exists := r.providers[name]; !exists {
		r.order = append(r.order, name)
	}
	r.providers[name] = p
}

// Get returns the provider registered under name.
func (r *Registry) Get(name string) (provider.IconProvider, bool) {
	p, ok := r.providers[name]
	return p, ok
}

// Providers returns all registered providers in registration order.
func (r *Registry) Providers() []provider.IconProvider {
	out := make([]provider.IconProvider, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.providers[name])
	}
	return out
}

// Names returns all registered provider names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// AvailableProviders returns the registered providers that pass their
// availability probe, in registration order. Only the search-all path
// consults availability; lookups by name do not.
func (r *Registry) AvailableProviders(ctx context.Context) []provider.IconProvider {
	available := make([]provider.IconProvider, 0, len(r.order))
	for _, p := range r.Providers() {
		if p.IsAvailable(ctx) {
			available = append(available, p)
		}
	}
	return available
}

// SearchAll dispatches the query to every available provider sequentially
// and collects each result keyed by provider name. A provider that panics is
// excluded from the mapping entirely and logged; partial results from the
// remaining providers are always returned.
func (r *Registry) SearchAll(ctx context.Context, query string, page, perPage int) map[string]domain.SearchResult {
	results := make(map[string]domain.SearchResult)
	for _, p := range r.AvailableProviders(ctx) {
		result, ok := r.searchOne(ctx, p, query, page, perPage)
		if ok {
			results[p.Name()] = result
		}
	}
	return results
}

// searchOne runs a single provider search, containing panics so one
// provider's failure never reaches the others.
func (r *Registry) searchOne(ctx context.Context, p provider.IconProvider, query string, page, perPage int) (result domain.SearchResult, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			ok = false
			if r.logger != nil {
				r.logger.Error("provider search panicked", map[string]interface{}{
					"provider": p.Name(),
					"panic":    fmt.Sprintf("%v", rec),
				})
			}
		}
	}()

	return p.Search(ctx, query, page, perPage), true
}
