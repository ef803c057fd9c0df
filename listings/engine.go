// Package listings derives the displayed subset of a fetched property list
// from a filter and sort configuration. Filtering always runs before
// sorting; the two recombine freely.
package listings

import (
	"sort"
	"strings"

	"github.com/Adheeb11/PropVista/models"
)

// SortMode selects the ordering of a filtered list.
type SortMode string

const (
	// SortByDate orders newest first. This is the default.
	SortByDate SortMode = "date"
	// SortByPrice orders cheapest first.
	SortByPrice SortMode = "price"
)

// ParseSortMode maps a query value onto a SortMode, defaulting to date.
func ParseSortMode(s string) SortMode {
	if SortMode(s) == SortByPrice {
		return SortByPrice
	}
	return SortByDate
}

// Filter is one filter configuration. Zero values mean "no constraint";
// every set dimension must match (AND semantics).
type Filter struct {
	City      string
	Type      string
	MinPrice  *float64
	MaxPrice  *float64
	Amenities []string
	Search    string
}

// Match reports whether p satisfies every active predicate.
func (f *Filter) Match(p *models.Property) bool {
	if f.City != "" && p.City != f.City {
		return false
	}
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.MinPrice != nil && float64(p.Price) < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && float64(p.Price) > *f.MaxPrice {
		return false
	}
	for _, a := range f.Amenities {
		if !p.Features.Contains(a) {
			return false
		}
	}
	if f.Search != "" && !matchSearch(p, f.Search) {
		return false
	}
	return true
}

// matchSearch does a case-insensitive substring match against the listing's
// title, city, type, description and each feature name.
func matchSearch(p *models.Property, term string) bool {
	q := strings.ToLower(term)
	for _, field := range []string{p.Title, p.City, p.Type, p.Description} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	for _, f := range p.Features {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Apply returns the ordered subset of props that satisfies f, sorted by
// mode. The input slice is not modified; an empty result is returned as an
// empty (non-nil) slice so callers can distinguish it from "not loaded".
func Apply(props []models.Property, f Filter, mode SortMode) []models.Property {
	out := make([]models.Property, 0, len(props))
	for i := range props {
		if f.Match(&props[i]) {
			out = append(out, props[i])
		}
	}
	sortProperties(out, mode)
	return out
}

// sortProperties orders in place; stable for equal keys.
func sortProperties(props []models.Property, mode SortMode) {
	switch mode {
	case SortByPrice:
		sort.SliceStable(props, func(i, j int) bool {
			return props[i].Price < props[j].Price
		})
	default:
		sort.SliceStable(props, func(i, j int) bool {
			return props[i].CreatedAt.After(props[j].CreatedAt)
		})
	}
}

// CountByType tallies listings per type for the dashboard summary cards.
func CountByType(props []models.Property, propertyType string) int {
	n := 0
	for i := range props {
		if props[i].Type == propertyType {
			n++
		}
	}
	return n
}
