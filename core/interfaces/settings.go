// ABOUTME: Settings store port for host-application persisted configuration
// ABOUTME: Documents the string-valued keys the core consumes

package interfaces

// Settings keys consumed by the core. The host application owns the backing
// store; the core never assumes a particular persistence backend.
const (
	// SettingNounAPIKey holds the Noun Project OAuth consumer key.
	SettingNounAPIKey = "svg_library/noun_api_key"

	// SettingNounSecret holds the Noun Project OAuth consumer secret.
	SettingNounSecret = "svg_library/noun_secret"

	// SettingGitHubRepos holds a newline-delimited list of "owner/repo" or
	// "owner/repo:subpath" GitHub targets.
	SettingGitHubRepos = "svg_library/github_repos"

	// SettingDefaultPerPage holds the default results-per-page count.
	SettingDefaultPerPage = "svg_library/default_per_page"

	// SettingThumbnailSize holds the preview thumbnail size in pixels.
	SettingThumbnailSize = "svg_library/thumbnail_size"

	// SettingAutoApplyDefault holds the auto-apply-to-layer flag.
	SettingAutoApplyDefault = "svg_library/auto_apply_default"

	// SettingAutoSaveAttributions holds the auto-save-attributions flag.
	SettingAutoSaveAttributions = "svg_library/auto_save_attributions"
)

// SettingsStore defines the interface for reading and writing string-valued
// configuration entries persisted by the host application.
type SettingsStore interface {
	// Value returns the stored value for key, or defaultValue when the key
	// has never been written.
	Value(key, defaultValue string) string

	// SetValue stores value under key.
	SetValue(key, value string) error
}
