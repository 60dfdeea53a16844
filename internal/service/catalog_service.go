package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/njprem/discover-zimbabwe/internal/domain"
	"github.com/njprem/discover-zimbabwe/internal/repository/ports"
)

var maxRating = decimal.NewFromInt(5)

// CatalogService holds the destination table loaded at startup. It is never
// mutated afterwards, so reads need no locking.
type CatalogService struct {
	destinations []domain.Destination
	index        map[int]int
}

func NewCatalogService(ctx context.Context, repo ports.DestinationRepository) (*CatalogService, error) {
	destinations, err := repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if err := ValidateCatalog(destinations); err != nil {
		return nil, err
	}

	index := make(map[int]int, len(destinations))
	for i, d := range destinations {
		index[d.ID] = i
	}
	return &CatalogService{destinations: destinations, index: index}, nil
}

// ValidateCatalog rejects tables with duplicate or non-positive IDs, blank
// names, unknown categories or ratings outside [0,5].
func ValidateCatalog(destinations []domain.Destination) error {
	seen := make(map[int]struct{}, len(destinations))
	for i, d := range destinations {
		if d.ID <= 0 {
			return fmt.Errorf("%w: entry %d has non-positive id %d", ErrInvalidCatalog, i, d.ID)
		}
		if _, dup := seen[d.ID]; dup {
			return fmt.Errorf("%w: duplicate id %d", ErrInvalidCatalog, d.ID)
		}
		seen[d.ID] = struct{}{}
		if strings.TrimSpace(d.Name) == "" {
			return fmt.Errorf("%w: destination %d has no name", ErrInvalidCatalog, d.ID)
		}
		if d.Category.IsAll() || !isKnownCategory(d.Category) {
			return fmt.Errorf("%w: destination %d has unknown category %q", ErrInvalidCatalog, d.ID, d.Category)
		}
		if d.Rating.IsNegative() || d.Rating.GreaterThan(maxRating) {
			return fmt.Errorf("%w: destination %d rating %s out of range", ErrInvalidCatalog, d.ID, d.Rating)
		}
	}
	return nil
}

func isKnownCategory(c domain.Category) bool {
	for _, known := range domain.Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (s *CatalogService) Categories() []domain.Category {
	out := make([]domain.Category, len(domain.Categories))
	copy(out, domain.Categories)
	return out
}

func (s *CatalogService) All() []domain.Destination {
	out := make([]domain.Destination, len(s.destinations))
	copy(out, s.destinations)
	return out
}

func (s *CatalogService) Get(id int) (*domain.Destination, error) {
	i, ok := s.index[id]
	if !ok {
		return nil, ErrDestinationNotFound
	}
	dest := s.destinations[i]
	return &dest, nil
}

func (s *CatalogService) Exists(id int) bool {
	_, ok := s.index[id]
	return ok
}

func (s *CatalogService) List(criteria domain.CatalogCriteria) []domain.Destination {
	return FilterDestinations(s.destinations, criteria)
}

// ParseCriteria turns raw query values into filter criteria.
func ParseCriteria(category, search string) (domain.CatalogCriteria, error) {
	c, err := domain.ParseCategory(category)
	if err != nil {
		return domain.CatalogCriteria{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return domain.CatalogCriteria{Category: c, Search: search}, nil
}
