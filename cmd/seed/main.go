package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sohagq3024/my-secret-web-2.0/internal/app/mysecretweb"
	"github.com/sohagq3024/my-secret-web-2.0/internal/config"
	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/logger"
	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/sl"
	"github.com/sohagq3024/my-secret-web-2.0/internal/metrics"
	"github.com/sohagq3024/my-secret-web-2.0/internal/services/catalog"
	"github.com/sohagq3024/my-secret-web-2.0/internal/services/seed"
)

func main() {
	cfg := config.MustLoad()
	log := logger.Setup(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Driver == config.DriverMemory {
		log.Warn("memory storage is not shared between processes, use seed.on_startup instead")
	}

	db, err := mysecretweb.OpenStorage(ctx, cfg.Storage, log)
	if err != nil {
		log.Error("failed to open storage", sl.Err(err))
		os.Exit(1)
	}
	defer func() {
		_ = db.Close()
	}()

	catalogCache, err := mysecretweb.OpenCache(ctx, cfg.RedisConnection, log)
	if err != nil {
		log.Error("failed to open cache", sl.Err(err))
		os.Exit(1)
	}
	defer func() {
		_ = catalogCache.Close()
	}()

	catalogService := catalog.New(db, catalogCache, log, metrics.NewNoop())
	report, err := seed.New(db, catalogService, log).Run(ctx, seed.AdminCredentials{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
		Email:    cfg.AdminEmail,
	})
	if err != nil {
		log.Error("seed failed", sl.Err(err))
		os.Exit(1)
	}

	log.Info("seed completed",
		slog.Bool("admin_created", report.AdminCreated),
		slog.Int("celebrities", report.Celebrities),
		slog.Int("albums", report.Albums),
		slog.Int("videos", report.Videos),
		slog.Int("slides", report.Slides),
	)
}
