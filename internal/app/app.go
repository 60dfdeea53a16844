// Package app wires configuration into storage backends, services and the
// HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/njprem/discover-zimbabwe/internal/config"
	"github.com/njprem/discover-zimbabwe/internal/repository/catalog"
	miniorepo "github.com/njprem/discover-zimbabwe/internal/repository/minio"
	"github.com/njprem/discover-zimbabwe/internal/repository/ports"
	"github.com/njprem/discover-zimbabwe/internal/repository/postgres"
	redisrepo "github.com/njprem/discover-zimbabwe/internal/repository/redis"
	"github.com/njprem/discover-zimbabwe/internal/repository/slot"
	"github.com/njprem/discover-zimbabwe/internal/repository/sqlite"
	"github.com/njprem/discover-zimbabwe/internal/service"
)

// App owns every long-lived service. Close releases the storage handles.
type App struct {
	Config    config.Config
	Logger    *zap.Logger
	Catalog   *service.CatalogService
	Sessions  *service.SessionStore
	Favorites *service.FavoriteService
	Reviews   *service.ReviewService
	Contact   *service.ContactService

	FavoriteRepo ports.FavoriteRepository
	ReviewRepo   ports.ReviewRepository

	pg      *sqlx.DB
	closers []func() error
}

func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{Config: cfg, Logger: logger}

	store, err := a.openSlotStore(ctx)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	destinations, err := a.openCatalog()
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	a.Catalog, err = service.NewCatalogService(ctx, destinations)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	repoLog := logger.Named("slots")
	a.FavoriteRepo = slot.NewFavoriteRepo(store, cfg.FavoritesSlotKey, repoLog)
	a.ReviewRepo = slot.NewReviewRepo(store, cfg.ReviewsSlotKey, repoLog)

	a.Sessions = service.NewSessionStore()
	a.Favorites = service.NewFavoriteService(a.FavoriteRepo, a.Sessions, a.Catalog, logger)
	a.Reviews = service.NewReviewService(a.ReviewRepo, a.Sessions, a.Catalog, logger)
	a.Contact = service.NewContactService(nil, logger)

	logger.Info("application ready",
		zap.String("storage", cfg.StorageDriver),
		zap.String("catalog", cfg.CatalogSource),
		zap.Int("destinations", len(a.Catalog.All())),
	)
	return a, nil
}

func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) openSlotStore(ctx context.Context) (ports.SlotStore, error) {
	cfg := a.Config
	switch cfg.StorageDriver {
	case config.StorageMemory:
		return slot.NewMemoryStore(), nil
	case config.StorageSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		return sqlite.NewSlotStore(db), nil
	case config.StoragePostgres:
		db, err := a.postgres()
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSlots(ctx, db); err != nil {
			return nil, err
		}
		return postgres.NewSlotStore(db), nil
	case config.StorageRedis:
		client := redisrepo.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		a.closers = append(a.closers, client.Close)
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		return redisrepo.NewSlotStore(client, cfg.RedisKeyPrefix), nil
	case config.StorageMinIO:
		client, err := miniorepo.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
		if err != nil {
			return nil, fmt.Errorf("create minio client: %w", err)
		}
		if err := miniorepo.EnsureBucket(ctx, client, cfg.MinIOBucketSlots); err != nil {
			return nil, err
		}
		return miniorepo.NewSlotStore(client, cfg.MinIOBucketSlots), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func (a *App) openCatalog() (ports.DestinationRepository, error) {
	switch a.Config.CatalogSource {
	case config.CatalogEmbedded:
		return catalog.NewEmbeddedRepo(), nil
	case config.CatalogFile:
		return catalog.NewFileRepo(a.Config.CatalogFile)
	case config.CatalogPostgres:
		db, err := a.postgres()
		if err != nil {
			return nil, err
		}
		return postgres.NewDestinationRepo(db), nil
	default:
		return nil, fmt.Errorf("unsupported catalog source %q", a.Config.CatalogSource)
	}
}

// postgres opens one shared pool for the slot store and catalog.
func (a *App) postgres() (*sqlx.DB, error) {
	if a.pg != nil {
		return a.pg, nil
	}
	db, err := postgres.New(a.Config.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	a.pg = db
	a.closers = append(a.closers, db.Close)
	return db, nil
}
