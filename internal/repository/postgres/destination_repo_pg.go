package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/njprem/discover-zimbabwe/internal/domain"
	"github.com/njprem/discover-zimbabwe/internal/repository/ports"
)

// DestinationRepository reads the catalog from the travel_destination table.
// The catalog is read once at startup and never written by the service.
type DestinationRepository struct {
	db *sqlx.DB
}

func NewDestinationRepo(db *sqlx.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

type destinationRow struct {
	ID          int             `db:"id"`
	Name        string          `db:"name"`
	Location    string          `db:"location"`
	Description string          `db:"description"`
	Image       string          `db:"image"`
	Category    string          `db:"category"`
	Rating      decimal.Decimal `db:"rating"`
	ReviewCount int             `db:"review_count"`
	Activities  pq.StringArray  `db:"activities"`
}

func (r *DestinationRepository) ListAll(ctx context.Context) ([]domain.Destination, error) {
	const query = `
		SELECT
			id,
			name,
			location,
			description,
			COALESCE(image, '') AS image,
			category,
			rating,
			review_count,
			COALESCE(activities, '{}') AS activities
		FROM travel_destination
		ORDER BY position ASC, id ASC
	`

	var rows []destinationRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}

	out := make([]domain.Destination, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Destination{
			ID:          row.ID,
			Name:        row.Name,
			Location:    row.Location,
			Description: row.Description,
			Image:       row.Image,
			Category:    domain.Category(row.Category),
			Rating:      row.Rating,
			ReviewCount: row.ReviewCount,
			Activities:  []string(row.Activities),
		})
	}
	return out, nil
}

var _ ports.DestinationRepository = (*DestinationRepository)(nil)
