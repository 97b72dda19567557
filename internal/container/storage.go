package container

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/do"
	"github.com/serroba/link-shortener/internal/health"
	"github.com/serroba/link-shortener/internal/shortener"
	"github.com/serroba/link-shortener/internal/store"
	"go.uber.org/zap"
)

const (
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
	StorageMemory   = "memory"

	defaultDatabaseFile = "urls.db"
	schemaTimeout       = 10 * time.Second
)

// LinkStore is the primary link backend.
type LinkStore interface {
	shortener.Repository
	health.Checker
}

// StorePackage opens the configured link store and bootstraps its schema
// before anything can serve traffic.
func StorePackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (LinkStore, error) {
		opts := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)

		linkStore, err := openStore(i, opts)
		if err != nil {
			return nil, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), schemaTimeout)
		defer cancel()

		if err := ensureSchema(ctx, linkStore); err != nil {
			return nil, err
		}

		logger.Info("link store ready", zap.String("storage", opts.Storage))

		return linkStore, nil
	})
}

// ensureSchema bootstraps stores that need it. A store whose schema cannot be
// created is closed before the error is returned.
func ensureSchema(ctx context.Context, linkStore LinkStore) error {
	bootstrapper, ok := linkStore.(shortener.SchemaBootstrapper)
	if !ok {
		return nil
	}

	err := bootstrapper.EnsureSchema(ctx)
	if err == nil {
		return nil
	}

	err = fmt.Errorf("ensure schema: %w", err)

	if closer, ok := linkStore.(do.Shutdownable); ok {
		if closeErr := closer.Shutdown(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close store: %w", closeErr))
		}
	}

	return err
}

func openStore(i *do.Injector, opts *Options) (LinkStore, error) {
	switch opts.Storage {
	case StorageSQLite:
		path, err := databasePath(opts)
		if err != nil {
			return nil, err
		}

		sqliteStore, err := store.OpenSQLite(path)
		if err != nil {
			return nil, err
		}

		return sqliteStore, nil
	case StoragePostgres:
		if opts.DatabaseURL == "" {
			return nil, fmt.Errorf("storage %q requires --database-url", opts.Storage)
		}

		pool, err := pgxpool.New(context.Background(), opts.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}

		return store.NewPostgresStore(pool), nil
	case StorageRedis:
		if !opts.RedisEnabled() {
			return nil, fmt.Errorf("storage %q requires --redis-addr", opts.Storage)
		}

		client, err := do.Invoke[*RedisClient](i)
		if err != nil {
			return nil, err
		}

		return store.NewRedisStore(client.Client), nil
	case StorageMemory:
		return store.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Storage)
	}
}

// databasePath defaults to urls.db in the executable's directory.
func databasePath(opts *Options) (string, error) {
	if opts.DatabasePath != "" {
		return opts.DatabasePath, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}

	return filepath.Join(filepath.Dir(exe), defaultDatabaseFile), nil
}

// RepositoryPackage provides the repository the service writes through.
// SQL backends get a Redis read cache when Redis is configured.
func RepositoryPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (shortener.Repository, error) {
		opts := do.MustInvoke[*Options](i)

		linkStore, err := do.Invoke[LinkStore](i)
		if err != nil {
			return nil, err
		}

		if !opts.RedisEnabled() || opts.CacheTTL <= 0 {
			return linkStore, nil
		}

		if opts.Storage != StorageSQLite && opts.Storage != StoragePostgres {
			return linkStore, nil
		}

		client, err := do.Invoke[*RedisClient](i)
		if err != nil {
			return nil, err
		}

		ttl := time.Duration(opts.CacheTTL) * time.Second

		return store.NewRedisCacheRepository(linkStore, client.Client, ttl, do.MustInvoke[*zap.Logger](i)), nil
	})
}

// ServicePackage provides the shortening service.
func ServicePackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*shortener.Service, error) {
		opts := do.MustInvoke[*Options](i)

		repo, err := do.Invoke[shortener.Repository](i)
		if err != nil {
			return nil, err
		}

		generator, err := shortener.NewGenerator(opts.ShortIDLength)
		if err != nil {
			return nil, err
		}

		return shortener.NewService(repo, generator, opts.ShortIDAttempts, do.MustInvoke[*zap.Logger](i)), nil
	})
}
