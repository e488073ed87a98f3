// ABOUTME: SvgIcon domain model represents a single icon offered by a catalog provider
// ABOUTME: Provides validation logic to ensure icon data integrity

package domain

import "errors"

// LicenseUnknown is the literal used when a provider does not report a license.
// Attribution code assumes a printable license string always exists, so adapters
// must never leave License empty.
const LicenseUnknown = "Unknown"

// Size is an optional width/height hint for an icon.
type Size struct {
	Width  int
	Height int
}

// SvgIcon represents an SVG icon with its catalog metadata.
// The value is immutable once constructed by an adapter.
type SvgIcon struct {
	// ID is the provider-scoped unique identifier. It is only unique within
	// one provider's namespace, never globally.
	ID string

	// Name is the human-readable display name, normalized by the provider
	// (separators replaced with spaces, title-cased).
	Name string

	// URL is the human-facing source page link.
	URL string

	// PreviewURL is the network location of a renderable preview. It may be
	// empty, in which case consumers show a textual placeholder.
	PreviewURL string

	// Tags holds free-text labels in provider order. No uniqueness requirement.
	Tags []string

	// License is the free-text license name. Unknown licenses are represented
	// by a literal such as "Unknown" or "Check repository license".
	License string

	// Attribution is a pre-composed human-readable attribution sentence.
	Attribution string

	// Provider is the originating provider's display name, used as a join key
	// back to the registry.
	Provider string

	// DownloadURL is the network location of the raw SVG bytes. Fetching it
	// may require provider-specific auth.
	DownloadURL string

	// Size is an optional dimensions hint. No current adapter populates it.
	Size *Size
}

// Validate checks if the icon has valid required fields
func (i *SvgIcon) Validate() error {
	if i.ID == "" {
		return errors.New("icon ID cannot be empty")
	}

	if i.Provider == "" {
		return errors.New("icon provider cannot be empty")
	}

	if i.License == "" {
		return errors.New("icon license cannot be empty")
	}

	return nil
}
