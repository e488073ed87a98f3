// ABOUTME: Maki adapter backed by the mapbox/maki icons directory listing
// ABOUTME: Maps CC0 map-symbol SVGs into the canonical icon model

package maki

import (
	"context"
	"fmt"

	"svg-icon-library/core/domain"
	"svg-icon-library/core/interfaces"
	"svg-icon-library/core/provider"
)

const (
	providerName = "Maki"
	repo         = "mapbox/maki"
	listingPath  = "icons"
)

// Provider serves Maki map icons via the GitHub contents listing of the
// mapbox/maki repository. Maki is a small catalog, so browsing with an empty
// query returns the full listing uncapped.
type Provider struct {
	deps    interfaces.Dependencies
	listing provider.Listing
}

// New creates a Maki provider.
func New(deps interfaces.Dependencies) *Provider {
	return &Provider{deps: deps}
}

// Name returns the provider display name.
func (p *Provider) Name() string {
	return providerName
}

// Search filters the cached icon listing by query and returns one page.
func (p *Provider) Search(ctx context.Context, query string, page, perPage int) domain.SearchResult {
	entries, err := p.listing.Load(func() ([]provider.ListingEntry, error) {
		contents, err := provider.FetchGitHubContents(ctx, p.deps, repo, listingPath)
		if err != nil {
			return nil, err
		}
		return provider.SvgEntries(contents), nil
	})
	if err != nil {
		provider.LogSwallowed(p.deps.Logger, providerName, "search", err)
		return domain.EmptySearchResult(page)
	}

	matches := provider.FilterEntries(entries, query, 0)
	start, end := provider.PageBounds(len(matches), page, perPage)

	icons := make([]domain.SvgIcon, 0, end-start)
	for _, entry := range matches[start:end] {
		icons = append(icons, domain.SvgIcon{
			ID:          entry.Name,
			Name:        provider.DisplayName(entry.Name),
			URL:         fmt.Sprintf("https://github.com/%s/blob/main/icons/%s.svg", repo, entry.Name),
			PreviewURL:  entry.DownloadURL,
			Tags:        []string{entry.Name},
			License:     "CC0 1.0 Universal",
			Attribution: "Maki Icons by Mapbox",
			Provider:    providerName,
			DownloadURL: entry.DownloadURL,
		})
	}

	return domain.NewSearchResult(icons, len(matches), page, perPage)
}

// IconDetails is a stable no-op; the listing carries no per-icon detail.
func (p *Provider) IconDetails(ctx context.Context, iconID string) (*domain.SvgIcon, bool) {
	return nil, false
}

// Download writes the icon's SVG bytes to destPath.
func (p *Provider) Download(ctx context.Context, icon domain.SvgIcon, destPath string) bool {
	if err := provider.FetchToFile(ctx, p.deps, icon.DownloadURL, destPath, nil); err != nil {
		provider.LogSwallowed(p.deps.Logger, providerName, "download", err)
		return false
	}
	return true
}

// IsAvailable probes the GitHub API the listing is served from.
func (p *Provider) IsAvailable(ctx context.Context) bool {
	return provider.ProbeURL(ctx, p.deps, provider.GitHubAPIBase)
}
