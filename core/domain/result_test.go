package domain

import "testing"

func TestNewSearchResult_PaginationMath(t *testing.T) {
	tests := []struct {
		name        string
		totalCount  int
		page        int
		perPage     int
		wantPages   int
		wantNext    bool
		wantPrev    bool
	}{
		{"first of three pages", 12, 1, 5, 3, true, false},
		{"middle page", 12, 2, 5, 3, true, true},
		{"last partial page", 12, 3, 5, 3, false, true},
		{"exact multiple", 10, 2, 5, 2, false, true},
		{"single page", 3, 1, 5, 1, false, false},
		{"zero results", 0, 1, 5, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewSearchResult(nil, tt.totalCount, tt.page, tt.perPage)

			if result.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", result.TotalPages, tt.wantPages)
			}
			if result.HasNext != tt.wantNext {
				t.Errorf("HasNext = %v, want %v", result.HasNext, tt.wantNext)
			}
			if result.HasPrevious != tt.wantPrev {
				t.Errorf("HasPrevious = %v, want %v", result.HasPrevious, tt.wantPrev)
			}
			if result.CurrentPage != tt.page {
				t.Errorf("CurrentPage = %d, want %d", result.CurrentPage, tt.page)
			}
		})
	}
}

func TestNewSearchResult_NilIconsBecomesEmptySlice(t *testing.T) {
	result := NewSearchResult(nil, 0, 1, 20)

	if result.Icons == nil {
		t.Error("Icons should be an empty slice, not nil")
	}
	if len(result.Icons) != 0 {
		t.Errorf("Icons length = %d, want 0", len(result.Icons))
	}
}

func TestEmptySearchResult(t *testing.T) {
	result := EmptySearchResult(3)

	if result.Icons == nil || len(result.Icons) != 0 {
		t.Error("Icons should be an empty non-nil slice")
	}
	if result.TotalCount != 0 {
		t.Errorf("TotalCount = %d, want 0", result.TotalCount)
	}
	if result.CurrentPage != 3 {
		t.Errorf("CurrentPage = %d, want 3", result.CurrentPage)
	}
	if result.HasNext || result.HasPrevious {
		t.Error("empty result should have no next or previous page")
	}
}
