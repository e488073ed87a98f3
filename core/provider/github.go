// ABOUTME: Shared GitHub contents-API listing fetch for directory-listing adapters
// ABOUTME: Maps the contents JSON into listing entries with typed internal errors

package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	coreerrors "svg-icon-library/core/errors"
	"svg-icon-library/core/interfaces"
)

const (
	// GitHubAPIBase is the root of the GitHub REST API, also used as the
	// availability probe target for GitHub-backed adapters.
	GitHubAPIBase = "https://api.github.com"

	// acceptGitHubJSON requests the structured v3 listing format.
	acceptGitHubJSON = "application/vnd.github.v3+json"

	// ClientIdentifier is the descriptive User-Agent sent on catalog requests.
	ClientIdentifier = "SVGIconLibrary/1.0"
)

// GitHubContent is one entry of a GitHub contents-API directory listing.
type GitHubContent struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	DownloadURL string `json:"download_url"`
}

// FetchGitHubContents retrieves the directory listing for repo ("owner/name")
// at the given path (empty for the repository root). Failures come back as
// typed internal errors; callers convert them to the zero-result contract.
func FetchGitHubContents(ctx context.Context, deps interfaces.Dependencies, repo, path string) ([]GitHubContent, error) {
	if deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	apiURL := fmt.Sprintf("%s/repos/%s/contents", GitHubAPIBase, repo)
	if path != "" {
		apiURL += "/" + path
	}

	resp, err := deps.HTTPClient.GetWithHeaders(ctx, apiURL, map[string]string{
		"Accept":     acceptGitHubJSON,
		"User-Agent": ClientIdentifier,
	})
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{
			Provider: repo,
			Message:  err.Error(),
		}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			Provider:   repo,
			StatusCode: resp.StatusCode(),
			Message:    "contents listing returned non-200 status",
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{
			Provider: repo,
			Message:  err.Error(),
		}
	}

	var contents []GitHubContent
	if err := json.Unmarshal(bodyBytes, &contents); err != nil {
		return nil, &coreerrors.MalformedResponseError{
			Provider: repo,
			Message:  err.Error(),
		}
	}

	return contents, nil
}

// SvgEntries filters a contents listing down to .svg files, stripping the
// extension from each entry name.
func SvgEntries(contents []GitHubContent) []ListingEntry {
	entries := make([]ListingEntry, 0, len(contents))
	for _, item := range contents {
		if len(item.Name) <= 4 || item.Name[len(item.Name)-4:] != ".svg" {
			continue
		}
		entries = append(entries, ListingEntry{
			Name:        item.Name[:len(item.Name)-4],
			Path:        item.Path,
			DownloadURL: item.DownloadURL,
		})
	}
	return entries
}

// DirEntries filters a contents listing down to directories, keeping the
// directory name as the candidate identifier.
func DirEntries(contents []GitHubContent) []ListingEntry {
	entries := make([]ListingEntry, 0, len(contents))
	for _, item := range contents {
		if item.Type != "dir" {
			continue
		}
		entries = append(entries, ListingEntry{
			Name:        item.Name,
			Path:        item.Path,
			DownloadURL: item.URL,
		})
	}
	return entries
}
