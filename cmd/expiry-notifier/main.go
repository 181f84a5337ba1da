package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sohagq3024/my-secret-web-2.0/internal/app/notifier"
	"github.com/sohagq3024/my-secret-web-2.0/internal/config"
	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/logger"
	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/sl"
)

func main() {
	cfg := config.MustLoad()
	log := logger.Setup(cfg.Env)
	log.Info("starting expiry notifier", slog.String("env", cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := notifier.New(ctx, cfg, log)
	if err != nil {
		log.Error("failed to init expiry notifier", sl.Err(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		log.Error("expiry notifier stopped with error", sl.Err(err))
		os.Exit(1)
	}
}
