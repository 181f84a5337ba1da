package mysecretweb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/sohagq3024/my-secret-web-2.0/internal/config"
	"github.com/sohagq3024/my-secret-web-2.0/internal/http/middlewarectx"
	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/jwt"
	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/sl"
	"github.com/sohagq3024/my-secret-web-2.0/internal/metrics"
	"github.com/sohagq3024/my-secret-web-2.0/internal/services/auth"
	"github.com/sohagq3024/my-secret-web-2.0/internal/services/catalog"
	"github.com/sohagq3024/my-secret-web-2.0/internal/services/membership"
	"github.com/sohagq3024/my-secret-web-2.0/internal/services/seed"
)

const shutdownTimeout = 15 * time.Second

// App: HTTP API сайта.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     Storage
	cache  Cache
}

// New создаёт приложение: открывает хранилище и кеш, собирает сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := OpenStorage(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, err
	}

	catalogCache, err := OpenCache(ctx, cfg.RedisConnection, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	tokens := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	membershipService := membership.New(db, logger, m)
	svc := Services{
		Membership: membershipService,
		Auth:       auth.New(db, membershipService, tokens, logger, m),
		Catalog:    catalog.New(db, catalogCache, logger, m),
	}

	if cfg.OnStartup {
		if err := runSeed(ctx, cfg.Seed, db, svc.Catalog, logger); err != nil {
			_ = catalogCache.Close()
			_ = db.Close()
			return nil, err
		}
	}

	handler := NewRouter(RouterDeps{
		Logger:   logger,
		Metrics:  m,
		Gatherer: reg,
		Tokens:   tokens,
		Limiter:  middlewarectx.NewRateLimiter(cfg.RateLimit, cfg.RateBurst),
		Storage:  db,

		TrustProxyHeaders: cfg.TrustProxyHeaders,
	}, svc)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      handler,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  catalogCache,
	}, nil
}

func runSeed(ctx context.Context, cfg config.Seed, db Storage, catalogService *catalog.Service, logger *slog.Logger) error {
	if !cfg.HasSeedAdmin() {
		logger.Warn("seed on startup is enabled but admin credentials are not set, skipping")
		return nil
	}
	_, err := seed.New(db, catalogService, logger).Run(ctx, seed.AdminCredentials{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
		Email:    cfg.AdminEmail,
	})
	if err != nil {
		return fmt.Errorf("seed on startup: %w", err)
	}
	return nil
}

// Handler возвращает HTTP-обработчик приложения.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run запускает HTTP-сервер и останавливает его при отмене ctx.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

// Close освобождает хранилище и кеш без запуска сервера.
func (a *App) Close() {
	a.close()
}

func (a *App) close() {
	if err := a.cache.Close(); err != nil {
		a.logger.Error("failed to close cache", sl.Err(err))
	}
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close storage", sl.Err(err))
	}
}
