// ABOUTME: In-memory pagination and query filtering shared by list-backed adapters
// ABOUTME: Provides the uniform slice math and substring matching policy

package provider

import "strings"

// FilterEntries returns the entries whose normalized name contains query,
// case-insensitively, preserving order. An empty query returns all entries,
// capped at emptyQueryCap when the cap is positive, so browsing without a
// query still yields a bounded candidate set.
func FilterEntries(entries []ListingEntry, query string, emptyQueryCap int) []ListingEntry {
	if query == "" {
		if emptyQueryCap > 0 && len(entries) > emptyQueryCap {
			return entries[:emptyQueryCap]
		}
		return entries
	}

	needle := strings.ToLower(query)
	matches := make([]ListingEntry, 0)
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Name), needle) {
			matches = append(matches, entry)
		}
	}

	return matches
}

// PageBounds returns the half-open [start, end) slice bounds for the given
// page geometry. Out-of-range pages yield start == end == 0 so the caller
// produces an empty page while TotalCount still reflects the full match
// count; callers detect end-of-results via HasNext, not an empty slice.
func PageBounds(total, page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}

	start := (page - 1) * perPage
	if start >= total {
		return 0, 0
	}

	end := start + perPage
	if end > total {
		end = total
	}

	return start, end
}
