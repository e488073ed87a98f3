// ABOUTME: Known-license catalog with attribution and commercial-use hints
// ABOUTME: Unknown licenses default to the conservative interpretation

package attribution

// LicenseInfo describes a license's terms as far as the library knows them.
// The pointer fields are nil for licenses outside the known catalog, meaning
// "no information" rather than false.
type LicenseInfo struct {
	Name                string
	URL                 string
	CommercialUse       *bool
	AttributionRequired *bool
}

func boolPtr(v bool) *bool { return &v }

// knownLicenses maps common license names to their terms.
var knownLicenses = map[string]LicenseInfo{
	"CC0": {
		Name:                "Creative Commons Zero v1.0 Universal",
		URL:                 "https://creativecommons.org/publicdomain/zero/1.0/",
		CommercialUse:       boolPtr(true),
		AttributionRequired: boolPtr(false),
	},
	"CC BY 4.0": {
		Name:                "Creative Commons Attribution 4.0 International",
		URL:                 "https://creativecommons.org/licenses/by/4.0/",
		CommercialUse:       boolPtr(true),
		AttributionRequired: boolPtr(true),
	},
	"MIT": {
		Name:                "MIT License",
		URL:                 "https://opensource.org/licenses/MIT",
		CommercialUse:       boolPtr(true),
		AttributionRequired: boolPtr(true),
	},
	"Apache 2.0": {
		Name:                "Apache License 2.0",
		URL:                 "https://www.apache.org/licenses/LICENSE-2.0",
		CommercialUse:       boolPtr(true),
		AttributionRequired: boolPtr(true),
	},
}

// LookupLicense returns the catalog entry for a license name. Unknown names
// come back with the raw name and nil hint fields.
func LookupLicense(name string) LicenseInfo {
	if info, ok := knownLicenses[name]; ok {
		return info
	}
	return LicenseInfo{Name: name}
}

// RequiresAttribution reports whether a license requires attribution.
// Unknown licenses are assumed to require it.
func RequiresAttribution(name string) bool {
	info := LookupLicense(name)
	if info.AttributionRequired == nil {
		return true
	}
	return *info.AttributionRequired
}

// AllowsCommercialUse reports whether a license permits commercial use.
// Unknown licenses are assumed not to.
func AllowsCommercialUse(name string) bool {
	info := LookupLicense(name)
	if info.CommercialUse == nil {
		return false
	}
	return *info.CommercialUse
}
