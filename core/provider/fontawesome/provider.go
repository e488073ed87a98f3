// ABOUTME: Font Awesome Free adapter backed by the FortAwesome/Font-Awesome listing
// ABOUTME: Keeps one fetch-once listing per icon style, searching "solid" by default

package fontawesome

import (
	"context"
	"sync"

	"svg-icon-library/core/domain"
	"svg-icon-library/core/interfaces"
	"svg-icon-library/core/provider"
)

const (
	providerName = "Font Awesome Free"
	repo         = "FortAwesome/Font-Awesome"

	// DefaultStyle is the style searched when none is selected.
	DefaultStyle = "solid"

	emptyQueryCap = 100
)

// Provider serves Font Awesome Free icons via the GitHub contents listings
// under svgs/<style>. Each style gets its own fetch-once listing slot.
type Provider struct {
	deps interfaces.Dependencies

	mu       sync.Mutex
	listings map[string]*provider.Listing
}

// New creates a Font Awesome Free provider.
func New(deps interfaces.Dependencies) *Provider {
	return &Provider{
		deps:     deps,
		listings: make(map[string]*provider.Listing),
	}
}

// Name returns the provider display name.
func (p *Provider) Name() string {
	return providerName
}

// styleListing returns the listing slot for a style, creating it on first use.
func (p *Provider) styleListing(style string) *provider.Listing {
	p.mu.Lock()
	defer p.mu.Unlock()

	listing, ok := p.listings[style]
	if !ok {
		listing = &provider.Listing{}
		p.listings[style] = listing
	}
	return listing
}

// Search filters the cached solid-style listing by query and returns one page.
func (p *Provider) Search(ctx context.Context, query string, page, perPage int) domain.SearchResult {
	return p.searchStyle(ctx, DefaultStyle, query, page, perPage)
}

// searchStyle runs a search against one style's listing.
func (p *Provider) searchStyle(ctx context.Context, style, query string, page, perPage int) domain.SearchResult {
	entries, err := p.styleListing(style).Load(func() ([]provider.ListingEntry, error) {
		contents, err := provider.FetchGitHubContents(ctx, p.deps, repo, "svgs/"+style)
		if err != nil {
			return nil, err
		}
		entries := provider.SvgEntries(contents)
		for i := range entries {
			entries[i].Style = style
		}
		return entries, nil
	})
	if err != nil {
		provider.LogSwallowed(p.deps.Logger, providerName, "search", err)
		return domain.EmptySearchResult(page)
	}

	matches := provider.FilterEntries(entries, query, emptyQueryCap)
	start, end := provider.PageBounds(len(matches), page, perPage)

	icons := make([]domain.SvgIcon, 0, end-start)
	for _, entry := range matches[start:end] {
		icons = append(icons, domain.SvgIcon{
			ID:          entry.Name,
			Name:        provider.DisplayName(entry.Name),
			URL:         "https://fontawesome.com/icons/" + entry.Name,
			PreviewURL:  entry.DownloadURL,
			Tags:        []string{entry.Name, entry.Style},
			License:     "CC BY 4.0 License",
			Attribution: "Font Awesome Free by Fonticons",
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

// IsAvailable probes the GitHub API the listings are served from.
func (p *Provider) IsAvailable(ctx context.Context) bool {
	return provider.ProbeURL(ctx, p.deps, provider.GitHubAPIBase)
}
