// Package core contains the business logic for the SVG icon library.
// It is designed to be framework-agnostic and can be used independently
// of any host application or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (SvgIcon, SearchResult, AttributionRecord)
// - provider: The IconProvider contract plus the catalog adapters under it
// - registry: Provider registry with settings-driven construction
// - library: Host-facing service orchestrating search, download and attribution
// - attribution: Attribution ledger, project persistence and license catalog
// - oauth1: Two-legged OAuth 1.0a request signing for the Noun Project API
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, settings)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// Provider adapters additionally follow a total-contract rule: their public
// methods never return errors. Failures degrade to zero-result values and are
// reported through the injected logger only.
//
// # Usage Example
//
//	import (
//	    "svg-icon-library/core/interfaces"
//	    "svg-icon-library/core/library"
//	    "svg-icon-library/core/registry"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Build the registry from settings and wrap it in the service
//	reg := registry.BuildFromSettings(mySettings, deps)
//	service := library.NewService(deps, reg, mySettings, myMetadata)
//
//	// Search every available provider
//	results := service.SearchAll(ctx, "airport", 1, 20)
package core
