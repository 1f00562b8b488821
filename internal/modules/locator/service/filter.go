package service

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"farmassist/internal/modules/locator/types"
)

// Filter returns the points whose English name or English address contains
// query case-insensitively, or whose Hindi name contains query exactly.
// An empty query returns catalog itself. Catalog order is preserved.
func Filter(catalog []types.Point, query string) []types.Point {
	if query == "" {
		return catalog
	}
	// Casers keep state, so each call gets its own.
	lower := cases.Lower(language.English)
	q := lower.String(query)

	out := make([]types.Point, 0, len(catalog))
	for _, p := range catalog {
		if strings.Contains(lower.String(p.Name.En), q) ||
			strings.Contains(p.Name.Hi, query) ||
			strings.Contains(lower.String(p.Address.En), q) {
			out = append(out, p)
		}
	}
	return out
}

// FilterByCategory keeps points of the given category; an empty category keeps all.
func FilterByCategory(catalog []types.Point, category types.Category) []types.Point {
	if category == "" {
		return catalog
	}
	out := make([]types.Point, 0, len(catalog))
	for _, p := range catalog {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
