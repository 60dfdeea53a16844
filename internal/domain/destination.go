package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryAll        Category = "All"
	CategoryNature     Category = "Nature"
	CategoryWildlife   Category = "Wildlife"
	CategoryHistorical Category = "Historical"
	CategoryWater      Category = "Water"
)

// Categories is the filter button order shown to visitors.
var Categories = []Category{
	CategoryAll,
	CategoryNature,
	CategoryWildlife,
	CategoryHistorical,
	CategoryWater,
}

// ParseCategory accepts any casing of a known category. Empty input selects All.
func ParseCategory(raw string) (Category, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return CategoryAll, nil
	}
	for _, c := range Categories {
		if strings.EqualFold(string(c), trimmed) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", raw)
}

func (c Category) IsAll() bool {
	return c == "" || c == CategoryAll
}

// Destination is a read-only catalog entry. ReviewCount is catalog data and
// is never derived from submitted reviews.
type Destination struct {
	ID          int             `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Location    string          `db:"location" json:"location"`
	Description string          `db:"description" json:"description"`
	Image       string          `db:"image" json:"image,omitempty"`
	Category    Category        `db:"category" json:"category"`
	Rating      decimal.Decimal `db:"rating" json:"rating"`
	ReviewCount int             `db:"review_count" json:"reviews"`
	Activities  []string        `db:"-" json:"activities"`
}

type CatalogCriteria struct {
	Category Category
	Search   string
}
