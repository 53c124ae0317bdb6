package factory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/article-feed/internal/seed"
	"github.com/DjordjeVuckovic/article-feed/internal/storage"
	"github.com/DjordjeVuckovic/article-feed/internal/storage/es"
	"github.com/DjordjeVuckovic/article-feed/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/article-feed/internal/storage/pg"
	pkgserver "github.com/DjordjeVuckovic/article-feed/pkg/server"
)

// Backend groups everything a binary needs from one storage type
type Backend struct {
	Collection    storage.ArticleCollection
	Storer        storage.Storer
	HealthChecker pkgserver.HealthChecker

	close func()
}

// Close releases connections held by the backend
func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// NewBackend creates the collection, storer and health checker for cfg.Type
func NewBackend(ctx context.Context, cfg StorageConfig) (*Backend, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}

		if cfg.PgAutoMigrate {
			if err := pg.Migrate(ctx, cfg.Pg.ConnStr); err != nil {
				return nil, err
			}
		}

		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		reader, err := pg.NewReader(pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		storer, err := pg.NewStorer(pool)
		if err != nil {
			pool.Close()
			return nil, err
		}

		return &Backend{
			Collection:    reader,
			Storer:        storer,
			HealthChecker: pg.NewHealthChecker(pool),
			close:         pool.Close,
		}, nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}

		storer, err := es.NewStorer(ctx, *cfg.Es)
		if err != nil {
			return nil, err
		}
		reader, err := es.NewReader(*cfg.Es)
		if err != nil {
			return nil, err
		}
		hc, err := es.NewHealthChecker(*cfg.Es)
		if err != nil {
			return nil, err
		}

		return &Backend{
			Collection:    reader,
			Storer:        storer,
			HealthChecker: hc,
		}, nil

	case storage.InMem:
		store := in_mem.NewInMemStorer()
		if cfg.SeedPath != "" {
			articles, err := seed.LoadFile(cfg.SeedPath)
			if err != nil {
				return nil, err
			}
			if err := store.SaveBulk(ctx, articles); err != nil {
				return nil, fmt.Errorf("failed to seed in-memory storage: %w", err)
			}
			slog.Info("Seeded in-memory storage", "path", cfg.SeedPath, "count", len(articles))
		}

		return &Backend{
			Collection:    store,
			Storer:        store,
			HealthChecker: pkgserver.NewOkHealthChecker(),
		}, nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
