// ABOUTME: Settings-driven wholesale registry construction
// ABOUTME: Parses GitHub targets and registers the default catalog set

package registry

import (
	"strings"

	"svg-icon-library/core/interfaces"
	"svg-icon-library/core/provider/fontawesome"
	"svg-icon-library/core/provider/githubrepo"
	"svg-icon-library/core/provider/maki"
	"svg-icon-library/core/provider/material"
	"svg-icon-library/core/provider/nounproject"
)

// DefaultGitHubTarget is registered when the settings hold no GitHub targets.
const DefaultGitHubTarget = "tabler/tabler-icons:icons"

// GitHubTarget is one parsed "owner/repo" or "owner/repo:subpath" line.
type GitHubTarget struct {
	Repo string
	Path string
}

// ParseGitHubTargets parses the newline-delimited GitHub repository list from
// settings. Blank lines are skipped; a single ':' splits off an optional
// subpath within the repository.
func ParseGitHubTargets(raw string) []GitHubTarget {
	targets := make([]GitHubTarget, 0)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		repo, path, found := strings.Cut(line, ":")
		if !found {
			path = ""
		}
		if repo == "" {
			continue
		}

		targets = append(targets, GitHubTarget{Repo: repo, Path: path})
	}
	return targets
}

// BuildFromSettings constructs a fresh registry from persisted settings.
// The provider list is rebuilt wholesale whenever settings change; callers
// replace their registry reference rather than mutating the old one.
func BuildFromSettings(settings interfaces.SettingsStore, deps interfaces.Dependencies) *Registry {
	r := New(deps.Logger)

	// Noun Project only participates when both credentials are configured
	apiKey := settings.Value(interfaces.SettingNounAPIKey, "")
	apiSecret := settings.Value(interfaces.SettingNounSecret, "")
	if apiKey != "" && apiSecret != "" {
		r.Register(nounproject.New(deps, apiKey, apiSecret))
	}

	r.Register(material.New(deps))
	r.Register(maki.New(deps))
	r.Register(fontawesome.New(deps))

	targets := ParseGitHubTargets(settings.Value(interfaces.SettingGitHubRepos, ""))
	if len(targets) == 0 {
		targets = ParseGitHubTargets(DefaultGitHubTarget)
	}
	for _, target := range targets {
		r.Register(githubrepo.New(deps, target.Repo, target.Path))
	}

	return r
}
