package main

import (
	"context"
	"fmt"
	"log/slog"

	"holocron/internal/access/service"
	"holocron/internal/admin"
	catalogstore "holocron/internal/catalog/store"
	favoritestore "holocron/internal/favorites/store"
	"holocron/internal/platform/config"
	"holocron/internal/platform/database"
)

type catalogStore interface {
	service.CatalogStore
	admin.UserStore
}

// backend is the selected persistence: SQL (PostgreSQL or SQLite) or the
// in-process stores.
type backend struct {
	db        *database.DB
	catalog   catalogStore
	favorites service.FavoriteStore
	tx        service.Transactor
}

func openBackend(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*backend, error) {
	target := database.ParseURL(cfg.URL)
	if target.Dialect == database.DialectMemory {
		logger.Warn("using in-memory stores; data is lost on exit")
		cat := catalogstore.NewInMemory()
		return &backend{
			catalog:   cat,
			favorites: favoritestore.NewInMemory(cat),
			tx:        database.NopTransactor{},
		}, nil
	}

	db, err := database.Open(ctx, target, cfg.MaxOpenConns)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Info("database connected", "dialect", db.Dialect)
	return &backend{
		db:        db,
		catalog:   catalogstore.NewSQL(db),
		favorites: favoritestore.NewSQL(db),
		tx:        database.NewTransactor(db.DB),
	}, nil
}

// migrate creates the schema. In-memory stores need none.
func (b *backend) migrate(ctx context.Context) error {
	if b.db == nil {
		return nil
	}
	return database.Migrate(ctx, b.db)
}

func (b *backend) Health(ctx context.Context) error {
	if b.db == nil {
		return nil
	}
	return b.db.PingContext(ctx)
}

func (b *backend) Close() error {
	if b.db == nil {
		return nil
	}
	return b.db.Close()
}
