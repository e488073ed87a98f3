// ABOUTME: Application container construction for the CLI
// ABOUTME: Wires logger, cache, HTTP client, settings, metadata and the library service

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	"svg-icon-library/core/interfaces"
	"svg-icon-library/core/library"
	"svg-icon-library/core/registry"
	memcache "svg-icon-library/infrastructure/cache/memory"
	stdhttp "svg-icon-library/infrastructure/http/standard"
	logruslogger "svg-icon-library/infrastructure/logger/logrus"
	sqlitemeta "svg-icon-library/infrastructure/metadata/sqlite"
	filesettings "svg-icon-library/infrastructure/settings/file"
)

const (
	// requestsPerSecond caps outbound request rate across all providers.
	requestsPerSecond = 5
	requestBurst      = 10
)

// app holds the wired components shared by all subcommands.
type app struct {
	service  *library.Service
	settings interfaces.SettingsStore
	logger   interfaces.Logger
	metadata *sqlitemeta.Store
}

// newApp builds the application container from the command's global flags.
func newApp(cmd *cobra.Command) (*app, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := "info"
	if verbose {
		level = "debug"
	}
	logger := logruslogger.New(os.Stderr, level)

	settingsPath, _ := cmd.Flags().GetString("settings")
	if settingsPath == "" {
		var err error
		settingsPath, err = filesettings.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve settings path: %w", err)
		}
	}
	settings, err := filesettings.NewStore(settingsPath)
	if err != nil {
		return nil, err
	}

	metadataPath, err := xdg.DataFile(filepath.Join("svg-icon-library", "metadata.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve metadata path: %w", err)
	}
	metadata, err := sqlitemeta.NewStore(metadataPath)
	if err != nil {
		return nil, err
	}

	deps := interfaces.Dependencies{
		Cache:      memcache.NewMemoryCache(5*time.Minute, 10*time.Minute),
		HTTPClient: stdhttp.NewRateLimitedHTTPClient(stdhttp.DefaultTimeout, requestsPerSecond, requestBurst),
		Logger:     logger,
	}

	reg := registry.BuildFromSettings(settings, deps)
	service := library.NewService(deps, reg, settings, metadata)

	return &app{
		service:  service,
		settings: settings,
		logger:   logger,
		metadata: metadata,
	}, nil
}

// close releases resources held by the container.
func (a *app) close() {
	if a.metadata != nil {
		_ = a.metadata.Close()
	}
}
