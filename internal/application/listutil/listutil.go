package listutil

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/FurkanArikk/fitness-center-sub002/internal/domain/roster"
)

// Facet sentinels. Any other facet value is matched against the
// entity's categorical tag (exact, case-sensitive).
const (
	FacetAll      = "All"
	FacetActive   = "Active"
	FacetInactive = "Inactive"
)

// DefaultPageSize is the default number of rows per page.
const DefaultPageSize = 10

// PageSizeOptions are the allowed rows-per-page values.
var PageSizeOptions = []int{5, 10, 20, 50, 100}

// FilterState carries the free-text search term and the facet selector.
// Filtering is a pure function of (roster, FilterState); there is no
// hidden state and recomputation happens on every change.
type FilterState struct {
	SearchTerm string // matched case-insensitively after trimming
	Facet      string // FacetAll, FacetActive, FacetInactive, or a tag value
}

// PageParams carries pagination parameters parsed from a request.
type PageParams struct {
	Page     int // 1-indexed page number
	PageSize int // rows per page
}

// PageInfo carries pagination metadata for rendering.
type PageInfo struct {
	Page       int // current page (1-indexed), clamped to valid range
	PageSize   int // rows per page
	Total      int // total matching rows
	TotalPages int // max(1, ceil(Total / PageSize))
}

// ParsePageParams extracts page and page_size from URL query values.
// A request without a page parameter lands on page 1, which is how the
// dashboard resets pagination whenever the filter changes the visible set.
// PRE: none
// POST: returns valid PageParams with defaults applied
func ParsePageParams(q url.Values) PageParams {
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(q.Get("page_size"))
	if !isValidPageSize(size) {
		size = DefaultPageSize
	}
	return PageParams{Page: page, PageSize: size}
}

// ParseFilterState extracts the search term and facet from URL query values.
// PRE: none
// POST: returns FilterState; an absent facet means FacetAll
func ParseFilterState(q url.Values) FilterState {
	facet := q.Get("facet")
	if facet == "" {
		facet = FacetAll
	}
	return FilterState{
		SearchTerm: q.Get("q"),
		Facet:      facet,
	}
}

// FilterRoster returns the subset of entries matching the filter state.
// An entry matches when the trimmed search term is a case-insensitive
// substring of at least one of its search fields AND the facet accepts
// it. The input slice is never mutated.
// PRE: entries carry populated SearchFields
// POST: returns a new slice preserving input order; idempotent for a
// fixed FilterState
func FilterRoster(entries []roster.Entry, f FilterState) []roster.Entry {
	term := strings.ToLower(strings.TrimSpace(f.SearchTerm))

	out := make([]roster.Entry, 0, len(entries))
	for _, e := range entries {
		if term != "" && !matchesSearch(e, term) {
			continue
		}
		if !matchesFacet(e, f.Facet) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// matchesSearch reports whether any search field contains the lowercased term.
func matchesSearch(e roster.Entry, term string) bool {
	for _, field := range e.SearchFields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// matchesFacet applies the categorical facet. Active/Inactive compare
// against the active flag; any other non-All value compares against the
// entity's tag exactly.
func matchesFacet(e roster.Entry, facet string) bool {
	switch facet {
	case "", FacetAll:
		return true
	case FacetActive:
		return e.Active
	case FacetInactive:
		return !e.Active
	default:
		return e.Tag == facet
	}
}

// FacetOptions derives the selectable facet values for a roster: the
// three sentinels followed by the distinct tag values in sorted order.
// PRE: none
// POST: returns at least the three sentinel options
func FacetOptions(entries []roster.Entry) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, e := range entries {
		if e.Tag != "" && !seen[e.Tag] {
			seen[e.Tag] = true
			tags = append(tags, e.Tag)
		}
	}
	sort.Strings(tags)
	return append([]string{FacetAll, FacetActive, FacetInactive}, tags...)
}

// Slice returns the contiguous page [(page-1)*size, page*size) of items,
// clipped to the collection bounds. Pages beyond the end yield an empty
// slice; clamping out-of-range page numbers is the caller's job (see
// NewPageInfo), not the slicer's.
// PRE: page >= 1, size >= 1
// POST: concatenating pages 1..TotalPages reproduces items exactly once
func Slice[T any](items []T, page, size int) []T {
	if page < 1 || size < 1 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(items) {
		return nil
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// NewPageInfo computes pagination metadata, clamping the page into range.
// PRE: total >= 0
// POST: returns PageInfo with TotalPages >= 1 and 1 <= Page <= TotalPages
func NewPageInfo(page, size, total int) PageInfo {
	if size < 1 {
		size = DefaultPageSize
	}
	totalPages := (total + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return PageInfo{
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Offset returns the index of the first row on the current page.
// PRE: PageInfo is valid
// POST: Returns (Page-1) * PageSize
func (p PageInfo) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// StartRow returns the 1-indexed first row number on the current page.
// PRE: PageInfo is valid
// POST: Returns 0 if Total is 0, otherwise Offset+1
func (p PageInfo) StartRow() int {
	if p.Total == 0 {
		return 0
	}
	return p.Offset() + 1
}

// EndRow returns the 1-indexed last row number on the current page.
// PRE: PageInfo is valid
// POST: Returns min(Offset+PageSize, Total)
func (p PageInfo) EndRow() int {
	end := p.Offset() + p.PageSize
	if end > p.Total {
		end = p.Total
	}
	return end
}

// ShowPagination returns true if pagination controls should be displayed.
// PRE: PageInfo is valid
// POST: Returns true if Total > PageSize
func (p PageInfo) ShowPagination() bool {
	return p.Total > p.PageSize
}

func isValidPageSize(n int) bool {
	for _, opt := range PageSizeOptions {
		if n == opt {
			return true
		}
	}
	return false
}
