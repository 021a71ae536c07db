// Package filter provides the in-memory post-filtering applied to already
// fetched record lists. Matching is exact substring / set membership only;
// there is no ranking, pagination or OR/NOT composition.
package filter

import "strings"

// Searchable is implemented by any record the filter layer can match on.
type Searchable interface {
	SearchTitle() string
	SearchBody() string
	SearchTags() []string
}

// BySubstring keeps records whose title or body contains term,
// case-insensitive. A blank term matches everything. Input order is
// preserved.
func BySubstring[T Searchable](records []T, term string) []T {
	term = strings.TrimSpace(term)
	if term == "" {
		return records
	}

	needle := strings.ToLower(term)
	matched := make([]T, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.SearchTitle()), needle) ||
			strings.Contains(strings.ToLower(r.SearchBody()), needle) {
			matched = append(matched, r)
		}
	}
	return matched
}

// ByTags keeps records whose tag set is a superset of required. An empty
// required set matches everything. Input order is preserved.
func ByTags[T Searchable](records []T, required []string) []T {
	if len(required) == 0 {
		return records
	}

	matched := make([]T, 0, len(records))
	for _, r := range records {
		if hasAll(r.SearchTags(), required) {
			matched = append(matched, r)
		}
	}
	return matched
}

func hasAll(tags, required []string) bool {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	for _, req := range required {
		if _, ok := set[req]; !ok {
			return false
		}
	}
	return true
}
