// ABOUTME: IconProvider capability contract implemented by every catalog adapter
// ABOUTME: Defines the total, never-failing public surface shared by all providers

package provider

import (
	"context"

	"svg-icon-library/core/domain"
)

// IconProvider is the polymorphic contract implemented by each catalog
// adapter. All methods are total: failures are encoded in the return value
// (zero-result SearchResult, absent icon, false), never surfaced as errors
// past this boundary. The calling UI only needs "got results or not".
type IconProvider interface {
	// Name returns the provider's display name, used as the registry key
	// and as SvgIcon.Provider.
	Name() string

	// Search returns one page of icons matching query. It never fails for
	// "no results" and degrades any transport or parse failure to a
	// zero-result SearchResult, logging the cause.
	Search(ctx context.Context, query string, page, perPage int) domain.SearchResult

	// IconDetails returns detailed information about a specific icon.
	// Every current adapter returns absent unconditionally; this is a
	// stable no-op kept in the contract, not a bug.
	IconDetails(ctx context.Context, iconID string) (*domain.SvgIcon, bool)

	// Download fetches icon.DownloadURL and writes the bytes verbatim to
	// destPath, creating or overwriting the file. Returns false on any
	// network or filesystem error.
	Download(ctx context.Context, icon domain.SvgIcon, destPath string) bool

	// IsAvailable is a lightweight reachability probe. The default behavior
	// is an unauthenticated GET against the provider base URL; adapters may
	// substitute a cheaper check such as "credentials configured".
	IsAvailable(ctx context.Context) bool
}
