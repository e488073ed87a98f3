// ABOUTME: Fetch-once listing cache shared by directory-listing adapters
// ABOUTME: Distinguishes "not yet fetched" from a cached, possibly empty listing

package provider

import "sync"

// ListingEntry is one candidate icon from a catalog's directory listing.
type ListingEntry struct {
	// Name is the raw provider identifier (kebab-case or snake_case).
	Name string

	// Path is the entry's path within the catalog repository.
	Path string

	// DownloadURL is the raw file location, when the listing supplies one.
	DownloadURL string

	// Style carries a sub-catalog qualifier (e.g. Font Awesome "solid").
	Style string
}

// Listing is a single-slot, fetch-once container for a parsed directory
// listing. The unfetched state is explicit rather than a nil slice, making
// the fetch-once contract type-visible: a successful fetch is cached for the
// adapter's lifetime even when empty, while a failed fetch leaves the slot
// unfetched so a later call retries.
//
// The slot is populated at most once and read-only afterwards, so there is
// no concurrent-writer hazard beyond the mutex held during the fetch.
type Listing struct {
	mu      sync.Mutex
	fetched bool
	entries []ListingEntry
}

// Load returns the cached listing, fetching it first if this is the first
// successful call.
func (l *Listing) Load(fetch func() ([]ListingEntry, error)) ([]ListingEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fetched {
		return l.entries, nil
	}

	entries, err := fetch()
	if err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []ListingEntry{}
	}
	l.entries = entries
	l.fetched = true

	return l.entries, nil
}

// Fetched reports whether a listing has been cached.
func (l *Listing) Fetched() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fetched
}
