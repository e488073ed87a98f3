// ABOUTME: Display-name normalization for raw provider identifiers
// ABOUTME: Converts kebab-case and snake_case ids to title-cased names

package provider

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// DisplayName converts a raw provider identifier into a human-readable
// display name: separators become spaces and each word is title-cased.
// The raw identifier stays untouched as the icon's ID and default tag.
func DisplayName(raw string) string {
	name := strings.ReplaceAll(raw, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.Join(strings.Fields(name), " ")
	return titleCaser.String(name)
}
