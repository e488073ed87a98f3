// ABOUTME: Generic adapter for arbitrary GitHub repositories of SVG icons
// ABOUTME: Lists owner/repo[:subpath] targets configured in host settings

package githubrepo

import (
	"context"
	"fmt"

	"svg-icon-library/core/domain"
	"svg-icon-library/core/interfaces"
	"svg-icon-library/core/provider"
)

// Provider serves SVG icons from any GitHub repository's contents listing.
// Instances are created per configured "owner/repo" target, optionally
// scoped to a subpath within the repository.
type Provider struct {
	deps       interfaces.Dependencies
	repo       string
	searchPath string
	listing    provider.Listing
}

// New creates a provider for repo ("owner/name"), optionally limited to the
// given subpath. An empty path lists the repository root.
func New(deps interfaces.Dependencies, repo, path string) *Provider {
	return &Provider{
		deps:       deps,
		repo:       repo,
		searchPath: path,
	}
}

// Name returns the provider display name, which embeds the repository so
// multiple GitHub targets stay distinct registry keys.
func (p *Provider) Name() string {
	return "GitHub: " + p.repo
}

// Repo returns the configured "owner/name" target.
func (p *Provider) Repo() string {
	return p.repo
}

// Search filters the cached repository listing by query and returns one page.
func (p *Provider) Search(ctx context.Context, query string, page, perPage int) domain.SearchResult {
	entries, err := p.listing.Load(func() ([]provider.ListingEntry, error) {
		contents, err := provider.FetchGitHubContents(ctx, p.deps, p.repo, p.searchPath)
		if err != nil {
			return nil, err
		}
		return provider.SvgEntries(contents), nil
	})
	if err != nil {
		provider.LogSwallowed(p.deps.Logger, p.Name(), "search", err)
		return domain.EmptySearchResult(page)
	}

	matches := provider.FilterEntries(entries, query, 0)
	start, end := provider.PageBounds(len(matches), page, perPage)

	icons := make([]domain.SvgIcon, 0, end-start)
	for _, entry := range matches[start:end] {
		icons = append(icons, domain.SvgIcon{
			ID:          entry.Name,
			Name:        provider.DisplayName(entry.Name),
			URL:         fmt.Sprintf("https://github.com/%s/blob/main/%s", p.repo, entry.Path),
			PreviewURL:  entry.DownloadURL,
			Tags:        []string{entry.Name},
			License:     "Check repository license",
			Attribution: "Icons from " + p.repo,
			Provider:    p.Name(),
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
		provider.LogSwallowed(p.deps.Logger, p.Name(), "download", err)
		return false
	}
	return true
}

// IsAvailable probes the GitHub API the listing is served from.
func (p *Provider) IsAvailable(ctx context.Context) bool {
	return provider.ProbeURL(ctx, p.deps, provider.GitHubAPIBase)
}
