package ports

import (
	"context"

	"github.com/njprem/discover-zimbabwe/internal/domain"
)

type DestinationRepository interface {
	ListAll(ctx context.Context) ([]domain.Destination, error)
}
