// ABOUTME: Host-facing library service orchestrating search, download and attribution
// ABOUTME: Fans aggregate searches out concurrently with per-provider isolation

package library

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"svg-icon-library/core/attribution"
	"svg-icon-library/core/domain"
	coreerrors "svg-icon-library/core/errors"
	"svg-icon-library/core/interfaces"
	"svg-icon-library/core/provider"
	"svg-icon-library/core/registry"
)

const (
	// availabilityTTL bounds how long a probe outcome is reused within a
	// session. Probes are cheap but not free, and availability rarely flips.
	availabilityTTL = 5 * time.Minute

	// DefaultPerPage is used when the host has not configured a page size.
	DefaultPerPage = 20
)

// Service is the host-facing facade over the provider registry. It owns the
// aggregate search fan-out, the download-plus-attribution flow, and the
// in-session availability probe cache.
type Service struct {
	deps     interfaces.Dependencies
	settings interfaces.SettingsStore

	mu       sync.RWMutex
	registry *registry.Registry

	attributions *attribution.ProjectStore
}

// NewService creates a library service over an already-built registry.
func NewService(deps interfaces.Dependencies, reg *registry.Registry, settings interfaces.SettingsStore, metadata interfaces.MetadataStore) *Service {
	return &Service{
		deps:         deps,
		settings:     settings,
		registry:     reg,
		attributions: attribution.NewProjectStore(metadata, deps.Logger),
	}
}

// Registry returns the current provider registry.
func (s *Service) Registry() *registry.Registry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry
}

// Attributions returns the project attribution store.
func (s *Service) Attributions() *attribution.ProjectStore {
	return s.attributions
}

// RebuildRegistry replaces the provider registry wholesale from current
// settings. Incremental add/remove is deliberately unsupported: the host
// rebuilds on every settings change.
func (s *Service) RebuildRegistry() {
	fresh := registry.BuildFromSettings(s.settings, s.deps)

	s.mu.Lock()
	s.registry = fresh
	s.mu.Unlock()
}

// PerPage returns the configured results-per-page default.
func (s *Service) PerPage() int {
	raw := s.settings.Value(interfaces.SettingDefaultPerPage, strconv.Itoa(DefaultPerPage))
	perPage, err := strconv.Atoi(raw)
	if err != nil || perPage < 1 {
		return DefaultPerPage
	}
	return perPage
}

// Search runs a query against one named provider, bypassing the aggregate
// failure isolation: the provider's own zero-result contract applies. The
// only error is an unknown provider name.
func (s *Service) Search(ctx context.Context, providerName, query string, page, perPage int) (domain.SearchResult, error) {
	p, ok := s.Registry().Get(providerName)
	if !ok {
		return domain.SearchResult{}, &coreerrors.NotFoundError{Resource: "provider", ID: providerName}
	}
	return p.Search(ctx, query, page, perPage), nil
}

// SearchAll fans the query out to every available provider concurrently and
// returns the per-provider results keyed by name. Each provider runs in its
// own goroutine; a panic excludes only that provider's entry and a result is
// added to the mapping only after its provider call fully completes.
func (s *Service) SearchAll(ctx context.Context, query string, page, perPage int) map[string]domain.SearchResult {
	providers := s.availableProviders(ctx)

	results := make(map[string]domain.SearchResult, len(providers))
	var resultsMu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, p := range providers {
		p := p
		g.Go(func() error {
			defer func() {
				if rec := recover(); rec != nil && s.deps.Logger != nil {
					s.deps.Logger.Error("provider search panicked", map[string]interface{}{
						"provider": p.Name(),
						"panic":    fmt.Sprintf("%v", rec),
					})
				}
			}()

			result := p.Search(gctx, query, page, perPage)

			resultsMu.Lock()
			results[p.Name()] = result
			resultsMu.Unlock()
			return nil
		})
	}
	// Workers never return errors; Wait is a completion barrier
	_ = g.Wait()

	return results
}

// availableProviders filters the registry through the availability probe,
// memoizing outcomes in the session cache when one is configured.
func (s *Service) availableProviders(ctx context.Context) []provider.IconProvider {
	reg := s.Registry()

	available := make([]provider.IconProvider, 0)
	for _, p := range reg.Providers() {
		if s.isAvailable(ctx, p) {
			available = append(available, p)
		}
	}
	return available
}

// isAvailable checks the probe cache before asking the provider.
func (s *Service) isAvailable(ctx context.Context, p provider.IconProvider) bool {
	if s.deps.Cache == nil {
		return p.IsAvailable(ctx)
	}

	key := "availability:" + p.Name()
	if cached, err := s.deps.Cache.Get(ctx, key); err == nil && len(cached) == 1 {
		return cached[0] == 1
	}

	available := p.IsAvailable(ctx)
	value := []byte{0}
	if available {
		value[0] = 1
	}
	_ = s.deps.Cache.Set(ctx, key, value, availabilityTTL)

	return available
}

// DownloadIcon fetches the icon through its originating provider and, on
// success, records its attribution. The record is merged into project
// metadata when the auto-save setting is enabled.
func (s *Service) DownloadIcon(ctx context.Context, icon domain.SvgIcon, destPath string) bool {
	p, ok := s.Registry().Get(icon.Provider)
	if !ok {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("download requested for unregistered provider", map[string]interface{}{
				"provider": icon.Provider,
				"icon":     icon.ID,
			})
		}
		return false
	}

	if !p.Download(ctx, icon, destPath) {
		return false
	}

	record := domain.NewAttributionRecord(icon, destPath, time.Now())
	if s.autoSaveAttributions() {
		if err := s.attributions.Add(record); err != nil && s.deps.Logger != nil {
			s.deps.Logger.Error("failed to persist attribution record", map[string]interface{}{
				"icon":  icon.ID,
				"error": err.Error(),
			})
		}
	}

	return true
}

// autoSaveAttributions reads the auto-save flag, defaulting to enabled.
func (s *Service) autoSaveAttributions() bool {
	return s.settings.Value(interfaces.SettingAutoSaveAttributions, "true") == "true"
}
