package service

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/njprem/discover-zimbabwe/internal/domain"
)

// FilterDestinations returns the destinations matching criteria in catalog
// order. It never mutates catalog and always returns a non-nil slice.
func FilterDestinations(catalog []domain.Destination, criteria domain.CatalogCriteria) []domain.Destination {
	// Casers keep state between calls, so each filter run gets its own.
	lower := cases.Lower(language.Und)
	needle := lower.String(criteria.Search)

	out := make([]domain.Destination, 0, len(catalog))
	for _, dest := range catalog {
		if !criteria.Category.IsAll() && dest.Category != criteria.Category {
			continue
		}
		if needle != "" && !matchesSearch(lower, dest, needle) {
			continue
		}
		out = append(out, dest)
	}
	return out
}

func matchesSearch(lower cases.Caser, dest domain.Destination, needle string) bool {
	for _, field := range []string{dest.Name, dest.Location, dest.Description} {
		if strings.Contains(lower.String(field), needle) {
			return true
		}
	}
	return false
}
