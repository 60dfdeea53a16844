package slot

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/njprem/discover-zimbabwe/internal/domain"
	"github.com/njprem/discover-zimbabwe/internal/repository/ports"
)

const DefaultReviewsKey = "zimbabweTourismReviews"

// ReviewRepository stores every destination's reviews as one JSON object,
// keyed by destination ID, rewritten in full on every save.
type ReviewRepository struct {
	store ports.SlotStore
	key   string
	log   *zap.Logger
}

func NewReviewRepo(store ports.SlotStore, key string, log *zap.Logger) *ReviewRepository {
	if key == "" {
		key = DefaultReviewsKey
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ReviewRepository{store: store, key: key, log: log}
}

func (r *ReviewRepository) Load(ctx context.Context) (domain.ReviewMap, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("read reviews slot: %w", err)
	}
	if len(raw) == 0 {
		return domain.ReviewMap{}, nil
	}
	var reviews domain.ReviewMap
	if err := json.Unmarshal(raw, &reviews); err != nil {
		r.log.Warn("reviews slot is corrupt, starting empty", zap.String("key", r.key), zap.Error(err))
		return domain.ReviewMap{}, nil
	}
	if reviews == nil {
		return domain.ReviewMap{}, nil
	}
	return reviews, nil
}

func (r *ReviewRepository) Save(ctx context.Context, reviews domain.ReviewMap) error {
	if reviews == nil {
		reviews = domain.ReviewMap{}
	}
	data, err := json.Marshal(reviews)
	if err != nil {
		return fmt.Errorf("encode reviews: %w", err)
	}
	if err := r.store.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("write reviews slot: %w", err)
	}
	return nil
}

var _ ports.ReviewRepository = (*ReviewRepository)(nil)
