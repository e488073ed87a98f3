// ABOUTME: SearchResult domain model represents one page of provider search results
// ABOUTME: Computes pagination fields from a total count and page geometry

package domain

// SearchResult is one page of icons from a single provider.
//
// An empty Icons slice with TotalCount == 0 is the canonical "no results"
// representation. The model does not distinguish "zero matches" from
// "provider failed"; that collapse is deliberate.
type SearchResult struct {
	// Icons holds at most perPage icons in provider order.
	Icons []SvgIcon

	// TotalCount is the provider's reported or computed total match count.
	TotalCount int

	// CurrentPage is the 1-based page number that was requested.
	CurrentPage int

	// TotalPages is ceil(TotalCount / perPage).
	TotalPages int

	// HasNext reports whether a later page exists.
	HasNext bool

	// HasPrevious reports whether an earlier page exists.
	HasPrevious bool
}

// NewSearchResult builds a SearchResult from a page of icons and the full
// match count, deriving the pagination fields.
func NewSearchResult(icons []SvgIcon, totalCount, page, perPage int) SearchResult {
	if icons == nil {
		icons = []SvgIcon{}
	}

	totalPages := 0
	if perPage > 0 {
		totalPages = (totalCount + perPage - 1) / perPage
	}

	return SearchResult{
		Icons:       icons,
		TotalCount:  totalCount,
		CurrentPage: page,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}

// EmptySearchResult returns the canonical zero-result value for the given page.
// Adapters return it both for zero matches and for swallowed failures.
func EmptySearchResult(page int) SearchResult {
	return SearchResult{
		Icons:       []SvgIcon{},
		TotalCount:  0,
		CurrentPage: page,
		TotalPages:  0,
		HasNext:     false,
		HasPrevious: false,
	}
}
