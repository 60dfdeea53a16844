package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/njprem/discover-zimbabwe/internal/domain"
	"github.com/njprem/discover-zimbabwe/internal/repository/ports"
)

// FavoriteService owns the favorites set. The persisted slot is read once on
// first use; every toggle writes the whole set back before returning.
type FavoriteService struct {
	mu       sync.Mutex
	repo     ports.FavoriteRepository
	sessions *SessionStore
	catalog  *CatalogService
	logger   *zap.Logger

	loaded    bool
	favorites domain.Favorites
}

func NewFavoriteService(repo ports.FavoriteRepository, sessions *SessionStore, catalog *CatalogService, logger *zap.Logger) *FavoriteService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FavoriteService{
		repo:     repo,
		sessions: sessions,
		catalog:  catalog,
		logger:   logger.Named("favorites"),
	}
}

// Toggle flips membership of destinationID and reports whether it is now a
// favorite. Rejections and save failures leave the set untouched.
func (s *FavoriteService) Toggle(ctx context.Context, destinationID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.sessions.Active() {
		return false, ErrFavoritesLoginRequired
	}
	if !s.catalog.Exists(destinationID) {
		return false, ErrDestinationNotFound
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return false, err
	}

	next, favorited := s.favorites.Toggle(destinationID)
	if err := s.repo.Save(ctx, next); err != nil {
		return false, err
	}
	s.favorites = next

	s.logger.Debug("favorite toggled",
		zap.Int("destination_id", destinationID),
		zap.Bool("favorited", favorited),
		zap.Int("total", len(next)),
	)
	return favorited, nil
}

func (s *FavoriteService) List(ctx context.Context) (domain.Favorites, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	out := make(domain.Favorites, len(s.favorites))
	copy(out, s.favorites)
	return out, nil
}

func (s *FavoriteService) Contains(ctx context.Context, destinationID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return false, err
	}
	return s.favorites.Contains(destinationID), nil
}

// ensureLoaded must be called with mu held.
func (s *FavoriteService) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	favorites, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	if favorites == nil {
		favorites = domain.Favorites{}
	}
	s.favorites = favorites
	s.loaded = true
	return nil
}
