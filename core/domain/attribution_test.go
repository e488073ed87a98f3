package domain

import (
	"testing"
	"time"
)

func TestNewAttributionRecord(t *testing.T) {
	icon := SvgIcon{
		ID:          "airport",
		Name:        "Airport",
		URL:         "https://example.com/airport",
		License:     "Apache License 2.0",
		Attribution: "Material Symbols by Google",
		Provider:    "Material Symbols",
	}
	importedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	record := NewAttributionRecord(icon, "/tmp/airport.svg", importedAt)

	if record.IconID != "airport" {
		t.Errorf("IconID = %q, want airport", record.IconID)
	}
	if record.Provider != "Material Symbols" {
		t.Errorf("Provider = %q, want Material Symbols", record.Provider)
	}
	if record.License != "Apache License 2.0" {
		t.Errorf("License = %q", record.License)
	}
	if record.FilePath != "/tmp/airport.svg" {
		t.Errorf("FilePath = %q", record.FilePath)
	}
	if !record.ImportedDate.Equal(importedAt) {
		t.Errorf("ImportedDate = %v, want %v", record.ImportedDate, importedAt)
	}
}

func TestNewAttributionRecord_EmptyLicenseDefaultsToUnknown(t *testing.T) {
	icon := SvgIcon{ID: "x", Provider: "P"}

	record := NewAttributionRecord(icon, "", time.Now())

	if record.License != LicenseUnknown {
		t.Errorf("License = %q, want %q", record.License, LicenseUnknown)
	}
}
