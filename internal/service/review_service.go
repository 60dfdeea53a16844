package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/njprem/discover-zimbabwe/internal/domain"
	"github.com/njprem/discover-zimbabwe/internal/repository/ports"
)

const (
	minReviewRating = 1
	maxReviewRating = 5
)

type ReviewInput struct {
	Rating  int
	Comment string
}

// ReviewService owns the per-destination review lists. Like favorites, the
// slot is read lazily once and rewritten in full on every submission.
type ReviewService struct {
	mu       sync.Mutex
	repo     ports.ReviewRepository
	sessions *SessionStore
	catalog  *CatalogService
	logger   *zap.Logger
	now      func() time.Time

	loaded  bool
	reviews domain.ReviewMap
}

func NewReviewService(repo ports.ReviewRepository, sessions *SessionStore, catalog *CatalogService, logger *zap.Logger) *ReviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewService{
		repo:     repo,
		sessions: sessions,
		catalog:  catalog,
		logger:   logger.Named("reviews"),
		now:      time.Now,
	}
}

// ParseRating converts a form value. Blank input means no rating was chosen
// and yields 0, which Submit reports as incomplete.
func ParseRating(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, nil
	}
	rating, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: rating %q is not a whole number", ErrReviewValidation, raw)
	}
	return rating, nil
}

// Submit appends a review by the signed-in visitor. Nothing is stored unless
// every check passes and the full mapping is saved.
func (s *ReviewService) Submit(ctx context.Context, destinationID int, input ReviewInput) (*domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions.Current()
	if !ok {
		return nil, ErrReviewsLoginRequired
	}
	comment := strings.TrimSpace(input.Comment)
	if input.Rating == 0 || comment == "" {
		return nil, ErrReviewIncomplete
	}
	if input.Rating < minReviewRating || input.Rating > maxReviewRating {
		return nil, fmt.Errorf("%w: rating must be between %d and %d", ErrReviewValidation, minReviewRating, maxReviewRating)
	}
	if !s.catalog.Exists(destinationID) {
		return nil, ErrDestinationNotFound
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	review := domain.Review{
		User:    session.DisplayName,
		Rating:  input.Rating,
		Comment: comment,
		Date:    s.now().UTC().Truncate(time.Millisecond),
	}
	next := s.reviews.Clone()
	next[destinationID] = append(next[destinationID], review)

	if err := s.repo.Save(ctx, next); err != nil {
		return nil, err
	}
	s.reviews = next

	s.logger.Info("review added",
		zap.Int("destination_id", destinationID),
		zap.String("user", review.User),
		zap.Int("rating", review.Rating),
	)
	return &review, nil
}

// List returns the reviews for destinationID in submission order, or an
// empty slice when there are none.
func (s *ReviewService) List(ctx context.Context, destinationID int) ([]domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	src := s.reviews[destinationID]
	out := make([]domain.Review, len(src))
	copy(out, src)
	return out, nil
}

// Summary aggregates the submitted reviews for one destination. The catalog
// review count is not included.
func (s *ReviewService) Summary(ctx context.Context, destinationID int) (*domain.ReviewSummary, error) {
	reviews, err := s.List(ctx, destinationID)
	if err != nil {
		return nil, err
	}
	return summarize(destinationID, reviews), nil
}

func summarize(destinationID int, reviews []domain.Review) *domain.ReviewSummary {
	counts := make(map[int]int, maxReviewRating)
	for r := minReviewRating; r <= maxReviewRating; r++ {
		counts[r] = 0
	}

	total := decimal.Zero
	for _, review := range reviews {
		counts[review.Rating]++
		total = total.Add(decimal.NewFromInt(int64(review.Rating)))
	}

	average := decimal.Zero
	if len(reviews) > 0 {
		average = total.DivRound(decimal.NewFromInt(int64(len(reviews))), 1)
	}
	return &domain.ReviewSummary{
		DestinationID: destinationID,
		AverageRating: average,
		TotalReviews:  len(reviews),
		RatingCounts:  counts,
	}
}

// ensureLoaded must be called with mu held.
func (s *ReviewService) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	reviews, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	if reviews == nil {
		reviews = domain.ReviewMap{}
	}
	s.reviews = reviews
	s.loaded = true
	return nil
}
