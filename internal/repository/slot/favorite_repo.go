package slot

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/njprem/discover-zimbabwe/internal/domain"
	"github.com/njprem/discover-zimbabwe/internal/repository/ports"
)

const DefaultFavoritesKey = "zimbabweTourismFavorites"

// FavoriteRepository stores the favorites set as a JSON array of IDs in a
// single slot, rewritten in full on every save.
type FavoriteRepository struct {
	store ports.SlotStore
	key   string
	log   *zap.Logger
}

func NewFavoriteRepo(store ports.SlotStore, key string, log *zap.Logger) *FavoriteRepository {
	if key == "" {
		key = DefaultFavoritesKey
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &FavoriteRepository{store: store, key: key, log: log}
}

// Load returns an empty set when the slot is missing or does not hold a JSON
// array of integers. Only store failures are returned as errors.
func (r *FavoriteRepository) Load(ctx context.Context) (domain.Favorites, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("read favorites slot: %w", err)
	}
	if len(raw) == 0 {
		return domain.Favorites{}, nil
	}
	var ids []int
	if err := json.Unmarshal(raw, &ids); err != nil {
		r.log.Warn("favorites slot is corrupt, starting empty", zap.String("key", r.key), zap.Error(err))
		return domain.Favorites{}, nil
	}
	if ids == nil {
		return domain.Favorites{}, nil
	}
	return domain.Favorites(ids), nil
}

func (r *FavoriteRepository) Save(ctx context.Context, favorites domain.Favorites) error {
	if favorites == nil {
		favorites = domain.Favorites{}
	}
	data, err := json.Marshal([]int(favorites))
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}
	if err := r.store.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("write favorites slot: %w", err)
	}
	return nil
}

var _ ports.FavoriteRepository = (*FavoriteRepository)(nil)
