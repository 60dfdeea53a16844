package ports

import (
	"context"

	"github.com/njprem/discover-zimbabwe/internal/domain"
)

type ReviewRepository interface {
	Load(ctx context.Context) (domain.ReviewMap, error)
	Save(ctx context.Context, reviews domain.ReviewMap) error
}
