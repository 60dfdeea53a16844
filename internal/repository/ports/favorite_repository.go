package ports

import (
	"context"

	"github.com/njprem/discover-zimbabwe/internal/domain"
)

type FavoriteRepository interface {
	Load(ctx context.Context) (domain.Favorites, error)
	Save(ctx context.Context, favorites domain.Favorites) error
}
