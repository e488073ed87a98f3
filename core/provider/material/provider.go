// ABOUTME: Material Symbols adapter backed by the google/material-design-icons listing
// ABOUTME: Serves previews and downloads from the Material Icons CDN

package material

import (
	"context"

	"svg-icon-library/core/domain"
	"svg-icon-library/core/interfaces"
	"svg-icon-library/core/provider"
)

const (
	providerName = "Material Symbols"
	repo         = "google/material-design-icons"
	listingPath  = "symbols/web"

	// cdnBase is the short-term release CDN serving the outlined symbol SVGs.
	cdnBase = "https://fonts.gstatic.com/s/i/short-term/release/materialsymbolsoutlined"

	// emptyQueryCap bounds the browse-all candidate set.
	emptyQueryCap = 100
)

// Provider serves Material Symbols icons via the GitHub contents listing of
// the google/material-design-icons repository.
type Provider struct {
	deps    interfaces.Dependencies
	listing provider.Listing
}

// New creates a Material Symbols provider.
func New(deps interfaces.Dependencies) *Provider {
	return &Provider{deps: deps}
}

// Name returns the provider display name.
func (p *Provider) Name() string {
	return providerName
}

// Search filters the cached symbol listing by query and returns one page.
func (p *Provider) Search(ctx context.Context, query string, page, perPage int) domain.SearchResult {
	entries, err := p.listing.Load(func() ([]provider.ListingEntry, error) {
		contents, err := provider.FetchGitHubContents(ctx, p.deps, repo, listingPath)
		if err != nil {
			return nil, err
		}
		// Each symbol lives in its own directory under symbols/web
		return provider.DirEntries(contents), nil
	})
	if err != nil {
		provider.LogSwallowed(p.deps.Logger, providerName, "search", err)
		return domain.EmptySearchResult(page)
	}

	matches := provider.FilterEntries(entries, query, emptyQueryCap)
	start, end := provider.PageBounds(len(matches), page, perPage)

	icons := make([]domain.SvgIcon, 0, end-start)
	for _, entry := range matches[start:end] {
		previewURL := cdnBase + "/" + entry.Name + "/default/48px.svg"
		icons = append(icons, domain.SvgIcon{
			ID:          entry.Name,
			Name:        provider.DisplayName(entry.Name),
			URL:         "https://fonts.google.com/icons?selected=Material+Symbols+Outlined:" + entry.Name,
			PreviewURL:  previewURL,
			Tags:        []string{entry.Name},
			License:     "Apache License 2.0",
			Attribution: "Material Symbols by Google",
			Provider:    providerName,
			DownloadURL: previewURL,
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
