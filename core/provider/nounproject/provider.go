// ABOUTME: The Noun Project adapter with OAuth 1.0a request signing
// ABOUTME: Signs every search and download; unset credentials short-circuit to empty

package nounproject

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"svg-icon-library/core/domain"
	coreerrors "svg-icon-library/core/errors"
	"svg-icon-library/core/interfaces"
	"svg-icon-library/core/oauth1"
	"svg-icon-library/core/provider"
	"svg-icon-library/pkg/utils/text"
)

const (
	providerName = "The Noun Project"
	baseURL      = "https://api.thenounproject.com"

	// searchEndpoint is the v2 icon search endpoint.
	searchEndpoint = baseURL + "/v2/icon"
)

// Provider serves Noun Project icons through the OAuth1-signed v2 API.
// Unlike the directory-listing adapters there is no listing cache: every
// search performs a freshly signed request.
type Provider struct {
	deps      interfaces.Dependencies
	apiKey    string
	apiSecret string
	signer    *oauth1.Signer
}

// New creates a Noun Project provider for the given consumer credential pair.
// Empty credentials are allowed; the provider then reports unavailable and
// returns empty results without network I/O.
func New(deps interfaces.Dependencies, apiKey, apiSecret string) *Provider {
	return &Provider{
		deps:      deps,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		signer:    oauth1.NewSigner(apiKey, apiSecret),
	}
}

// Name returns the provider display name.
func (p *Provider) Name() string {
	return providerName
}

// Configured reports whether both consumer credentials are set.
func (p *Provider) Configured() bool {
	return p.apiKey != "" && p.apiSecret != ""
}

// searchResponse is the subset of the v2 search payload the adapter consumes.
type searchResponse struct {
	Icons []struct {
		ID                 json.Number `json:"id"`
		Term               string      `json:"term"`
		Permalink          string      `json:"permalink"`
		PreviewURL         string      `json:"preview_url"`
		Tags               []string    `json:"tags"`
		LicenseDescription string      `json:"license_description"`
		IconURL            string      `json:"icon_url"`
		Uploader           struct {
			Name string `json:"name"`
		} `json:"uploader"`
	} `json:"icons"`
	Total int `json:"total"`
}

// Search performs a signed search against the v2 icon endpoint. Missing
// credentials are not an error: the call returns the canonical zero-result
// value without touching the network.
func (p *Provider) Search(ctx context.Context, query string, page, perPage int) domain.SearchResult {
	if !p.Configured() {
		return domain.EmptySearchResult(page)
	}

	result, err := p.search(ctx, query, page, perPage)
	if err != nil {
		provider.LogSwallowed(p.deps.Logger, providerName, "search", err)
		return domain.EmptySearchResult(page)
	}
	return result
}

// search is the fallible inner search; the public surface degrades its errors.
func (p *Provider) search(ctx context.Context, query string, page, perPage int) (domain.SearchResult, error) {
	if p.deps.HTTPClient == nil {
		return domain.SearchResult{}, errors.New("HTTP client not configured")
	}

	params := map[string]string{
		"query": query,
		"limit": strconv.Itoa(perPage),
	}

	authHeader := p.signer.AuthorizationHeader("GET", searchEndpoint, params)

	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	requestURL := searchEndpoint + "?" + values.Encode()

	resp, err := p.deps.HTTPClient.GetWithHeaders(ctx, requestURL, map[string]string{
		"Authorization": authHeader,
		"Accept":        "application/json",
	})
	if err != nil {
		return domain.SearchResult{}, &coreerrors.ExternalAPIError{
			Provider: providerName,
			Message:  err.Error(),
		}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return domain.SearchResult{}, &coreerrors.ExternalAPIError{
			Provider:   providerName,
			StatusCode: resp.StatusCode(),
			Message:    "icon search returned non-200 status",
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return domain.SearchResult{}, &coreerrors.ExternalAPIError{
			Provider: providerName,
			Message:  err.Error(),
		}
	}

	var parsed searchResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return domain.SearchResult{}, &coreerrors.MalformedResponseError{
			Provider: providerName,
			Message:  err.Error(),
		}
	}

	icons := make([]domain.SvgIcon, 0, len(parsed.Icons))
	for _, item := range parsed.Icons {
		name := text.StripHTML(item.Term)
		if name == "" {
			name = "Unknown"
		}
		license := item.LicenseDescription
		if license == "" {
			license = domain.LicenseUnknown
		}
		uploader := text.StripHTML(item.Uploader.Name)
		if uploader == "" {
			uploader = "Unknown"
		}

		icons = append(icons, domain.SvgIcon{
			ID:          item.ID.String(),
			Name:        name,
			URL:         item.Permalink,
			PreviewURL:  item.PreviewURL,
			Tags:        item.Tags,
			License:     license,
			Attribution: fmt.Sprintf("Created by %s from Noun Project", uploader),
			Provider:    providerName,
			DownloadURL: item.IconURL,
		})
	}

	return domain.NewSearchResult(icons, parsed.Total, page, perPage), nil
}

// IconDetails is a stable no-op; the search payload already carries
// everything the host consumes.
func (p *Provider) IconDetails(ctx context.Context, iconID string) (*domain.SvgIcon, bool) {
	return nil, false
}

// Download performs a signed fetch of the icon bytes. The download URL
// carries no query parameters, so only the oauth parameters are signed.
func (p *Provider) Download(ctx context.Context, icon domain.SvgIcon, destPath string) bool {
	if !p.Configured() {
		provider.LogSwallowed(p.deps.Logger, providerName, "download",
			errors.New("credentials not configured"))
		return false
	}

	authHeader := p.signer.AuthorizationHeader("GET", icon.DownloadURL, nil)
	err := provider.FetchToFile(ctx, p.deps, icon.DownloadURL, destPath, map[string]string{
		"Authorization": authHeader,
	})
	if err != nil {
		provider.LogSwallowed(p.deps.Logger, providerName, "download", err)
		return false
	}
	return true
}

// IsAvailable reports whether credentials are configured. The API rejects
// unauthenticated probes, so reachability is equated with configuration.
func (p *Provider) IsAvailable(ctx context.Context) bool {
	return p.Configured()
}
