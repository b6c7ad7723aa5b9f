package models

// ListQuery carries the generic list-endpoint parameters shared by every
// collection resource: free-text search, exact-match filters, a single
// ordering field (optionally "-" prefixed for descending), and a 1-based
// page number.
//
// Which search columns, filter keys, and ordering fields are honored is
// decided per resource by the storage layer; unknown values are silently
// ignored.
type ListQuery struct {
	// Search is matched case-insensitively as a substring against the
	// resource's configured search columns.
	Search string

	// Filters maps query-parameter names to exact values
	// (e.g. "project" → "3", "role" → "admin").
	Filters map[string]string

	// Ordering is the requested sort field, "-" prefixed for descending.
	// Empty or unrecognized values fall back to the resource default.
	Ordering string

	// Page is the 1-based page number. Zero means the first page.
	Page int
}

// PageNumber normalizes Page to a 1-based value.
func (q ListQuery) PageNumber() int {
	if q.Page < 1 {
		return 1
	}
	return q.Page
}

// Offset returns the row offset for the query's page given the fixed page
// size.
func (q ListQuery) Offset() int {
	return (q.PageNumber() - 1) * PageSize
}

// Filter returns the exact-match filter value for key, or "" when unset.
func (q ListQuery) Filter(key string) string {
	if q.Filters == nil {
		return ""
	}
	return q.Filters[key]
}
