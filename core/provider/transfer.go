// ABOUTME: Shared download and availability-probe helpers for adapters
// ABOUTME: Writes fetched SVG bytes verbatim and probes provider base URLs

package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	coreerrors "svg-icon-library/core/errors"
	"svg-icon-library/core/interfaces"
)

// FetchToFile downloads url and writes the received bytes verbatim to
// destPath, creating or overwriting the file. No validation of the bytes is
// performed; well-formedness is a presentation concern. Extra headers (e.g.
// a signed Authorization) are applied on top of the client defaults.
func FetchToFile(ctx context.Context, deps interfaces.Dependencies, url, destPath string, headers map[string]string) error {
	if deps.HTTPClient == nil {
		return errors.New("HTTP client not configured")
	}
	if url == "" {
		return errors.New("download URL cannot be empty")
	}

	var (
		resp interfaces.Response
		err  error
	)
	if len(headers) > 0 {
		resp, err = deps.HTTPClient.GetWithHeaders(ctx, url, headers)
	} else {
		resp, err = deps.HTTPClient.Get(ctx, url)
	}
	if err != nil {
		return err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("download returned status %d", resp.StatusCode()),
		}
	}

	content, err := io.ReadAll(resp.Body())
	if err != nil {
		return err
	}

	return os.WriteFile(destPath, content, 0o644)
}

// ProbeURL performs the default reachability probe: an unauthenticated GET
// against the provider base URL, reachable iff the status is 200.
func ProbeURL(ctx context.Context, deps interfaces.Dependencies, baseURL string) bool {
	if deps.HTTPClient == nil {
		return false
	}

	resp, err := deps.HTTPClient.Get(ctx, baseURL)
	if err != nil {
		return false
	}
	defer resp.Body().Close()

	return resp.StatusCode() == 200
}

// LogSwallowed records a degraded failure through the injected logger.
// Logging is the only diagnostic channel for the zero-result contract.
func LogSwallowed(logger interfaces.Logger, providerName, operation string, err error) {
	if logger == nil || err == nil {
		return
	}
	logger.Warn("provider operation degraded to empty result", map[string]interface{}{
		"provider":  providerName,
		"operation": operation,
		"error":     err.Error(),
	})
}
