package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/cashit_ledger/internal/adapters/database/pgsql"
	"github.com/SscSPs/cashit_ledger/internal/adapters/database/sqlite"
	"github.com/SscSPs/cashit_ledger/internal/adapters/kvstore"
	portsrepo "github.com/SscSPs/cashit_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/cashit_ledger/internal/platform/config"
	"github.com/SscSPs/cashit_ledger/pkg/database"
)

// Open returns the blob store selected by cfg.StoreDriver. The caller closes it.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.KVStore, error) {
	logger = logger.With(slog.String("store_driver", cfg.StoreDriver))

	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		logger.Warn("Using in-memory store; ledger state is lost on exit")
		return kvstore.NewMemoryStore(), nil

	case config.StoreDriverFile:
		store, err := kvstore.NewFileStore(cfg.StorePath)
		if err != nil {
			return nil, err
		}
		logger.Info("File store opened", slog.String("path", cfg.StorePath))
		return store, nil

	case config.StoreDriverSQLite:
		store, err := sqlite.NewKVStore(ctx, cfg.StorePath)
		if err != nil {
			return nil, err
		}
		logger.Info("SQLite store opened", slog.String("path", cfg.StorePath))
		return store, nil

	case config.StoreDriverPostgres:
		logger.Info("Running database migrations...")
		if err := database.RunPostgresMigrations(cfg.DatabaseURL, pgsql.Migrations, pgsql.MigrationsDir, logger); err != nil {
			return nil, err
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		logger.Info("Database connection pool established.")
		return pgsql.NewPgxKVStore(pool), nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
