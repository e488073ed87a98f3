// ABOUTME: AttributionRecord domain model tracks licensing info for a downloaded icon
// ABOUTME: Records are persisted to project metadata and deduplicated by icon id

package domain

import "time"

// AttributionRecord captures the licensing attribution for one imported icon.
// Records are appended when a download completes and merged into project
// storage keyed by IconID.
type AttributionRecord struct {
	// IconID is the provider-scoped icon identifier used for dedup.
	IconID string `json:"icon_id"`

	// IconName is the icon's display name.
	IconName string `json:"icon_name"`

	// Provider is the originating provider's display name.
	Provider string `json:"provider"`

	// License is the free-text license name.
	License string `json:"license"`

	// AttributionText is the human-readable attribution sentence.
	AttributionText string `json:"attribution_text"`

	// URL is the icon's source page link.
	URL string `json:"url"`

	// ImportedDate records when the icon was downloaded.
	ImportedDate time.Time `json:"imported_date"`

	// FilePath is the destination file the SVG bytes were written to.
	FilePath string `json:"file_path"`
}

// NewAttributionRecord builds a record for an icon downloaded to filePath.
func NewAttributionRecord(icon SvgIcon, filePath string, importedAt time.Time) AttributionRecord {
	license := icon.License
	if license == "" {
		license = LicenseUnknown
	}

	return AttributionRecord{
		IconID:          icon.ID,
		IconName:        icon.Name,
		Provider:        icon.Provider,
		License:         license,
		AttributionText: icon.Attribution,
		URL:             icon.URL,
		ImportedDate:    importedAt,
		FilePath:        filePath,
	}
}
