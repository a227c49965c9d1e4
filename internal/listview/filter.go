// Package listview derives the visible subset of a list page from its
// snapshot, search term, and facet selections. Filtering narrows only,
// it never reorders.
package listview

import "strings"

// FacetAll is the unset facet selection; it matches every item.
const FacetAll = "all"

// Facet pairs a selected value with the field accessor it constrains.
type Facet[T any] struct {
	Selected string
	Value    func(T) string
}

// Unset reports whether the facet constrains nothing.
func (f Facet[T]) Unset() bool {
	return f.Selected == "" || f.Selected == FacetAll
}

func (f Facet[T]) matches(item T) bool {
	return f.Unset() || f.Value(item) == f.Selected
}

// Visible filters items to those containing term (case-insensitive) in at
// least one searchable field and matching every selected facet. An empty
// term matches everything. Input order is preserved.
func Visible[T any](items []T, term string, searchFields func(T) []string, facets ...Facet[T]) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !matchesSearch(item, term, searchFields) {
			continue
		}
		if !matchesFacets(item, facets) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesSearch[T any](item T, term string, searchFields func(T) []string) bool {
	if term == "" {
		return true
	}
	for _, field := range searchFields(item) {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func matchesFacets[T any](item T, facets []Facet[T]) bool {
	for _, f := range facets {
		if !f.matches(item) {
			return false
		}
	}
	return true
}
