package mysecretweb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sohagq3024/my-secret-web-2.0/internal/cache"
	"github.com/sohagq3024/my-secret-web-2.0/internal/config"
	"github.com/sohagq3024/my-secret-web-2.0/internal/migrations"
	"github.com/sohagq3024/my-secret-web-2.0/internal/services/auth"
	"github.com/sohagq3024/my-secret-web-2.0/internal/services/catalog"
	"github.com/sohagq3024/my-secret-web-2.0/internal/services/membership"
	"github.com/sohagq3024/my-secret-web-2.0/internal/storage/memory"
	"github.com/sohagq3024/my-secret-web-2.0/internal/storage/postgresql"
)

// Storage объединяет всё, что сервис требует от хранилища.
// Реализуется memory.Storage и postgresql.Storage.
type Storage interface {
	auth.UserRepository
	membership.Repository
	catalog.Repository
	Ping(ctx context.Context) error
	Close() error
}

// Cache: кеш списков каталога с возможностью закрытия.
type Cache interface {
	catalog.Cache
	Close() error
}

var (
	_ Storage = (*memory.Storage)(nil)
	_ Storage = (*postgresql.Storage)(nil)
	_ Cache   = (*cache.Cache)(nil)
	_ Cache   = (*cache.Memory)(nil)
)

// OpenStorage открывает хранилище по драйверу из конфига.
// Для PostgreSQL перед началом работы применяются миграции.
func OpenStorage(ctx context.Context, cfg config.Storage, logger *slog.Logger) (Storage, error) {
	const op = "mysecretweb.OpenStorage"

	switch cfg.Driver {
	case config.DriverMemory:
		logger.Info("using in-memory storage")
		return memory.New(), nil
	case config.DriverPostgres:
		db, err := postgresql.New(ctx, cfg.StorageConnectionString)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err := migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		logger.Info("using postgres storage", slog.String("migrations", cfg.MigrationsPath))
		return db, nil
	default:
		return nil, fmt.Errorf("%s: unknown storage driver %q", op, cfg.Driver)
	}
}

// OpenCache подключается к Redis, если задан адрес, иначе создаёт кеш в памяти.
func OpenCache(ctx context.Context, cfg config.RedisConnection, logger *slog.Logger) (Cache, error) {
	if cfg.AddressRedis == "" {
		logger.Info("redis address is empty, using in-memory cache")
		return cache.NewMemory(time.Minute), nil
	}
	c, err := cache.InitServer(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("cache not initialized: %w", err)
	}
	logger.Info("using redis cache", slog.String("address", cfg.AddressRedis))
	return c, nil
}
