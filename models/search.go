package models

import "strings"

// SearchOption carries the query parameters of one listing request. Zero
// values mean "unspecified" and fall back to page 1 and DefaultPageSize.
type SearchOption struct {
	Search      string `json:"search,omitempty"`
	CurrentPage int    `json:"page"`
	PageSize    int    `json:"limit"`
}

// Paginate filters items with the given match predicate and slices out the
// requested page. It is a pure function: the collection is never reordered
// or mutated, and an out-of-range page yields an empty page with Total
// still reflecting the full filtered count.
func Paginate[T any](items []T, opt SearchOption, match func(item T, search string) bool) PaginationData[T] {

	page := opt.CurrentPage
	if page < 1 {
		page = 1
	}

	limit := opt.PageSize
	if limit < 1 {
		limit = DefaultPageSize
	}

	filtered := items
	if search := strings.TrimSpace(opt.Search); search != "" && match != nil {

		filtered = make([]T, 0, len(items))
		for _, item := range items {
			if match(item, search) {
				filtered = append(filtered, item)
			}
		}
	}

	start := (page - 1) * limit
	end := start + limit

	var paged []T
	switch {
	case start >= len(filtered):
		paged = []T{}
	case end > len(filtered):
		paged = filtered[start:]
	default:
		paged = filtered[start:end]
	}

	return PaginationData[T]{
		Items: paged,
		Total: len(filtered),
		Page:  page,
		Limit: limit,
	}
}
