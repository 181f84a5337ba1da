// Package main My Secret Web API
//
// @title           My Secret Web API
// @version         1.0
// @description     Членство и каталог сайта
// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/sohagq3024/my-secret-web-2.0/docs"
	"github.com/sohagq3024/my-secret-web-2.0/internal/app/mysecretweb"
	"github.com/sohagq3024/my-secret-web-2.0/internal/config"
	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/logger"
	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/sl"
)

func main() {
	cfg := config.MustLoad()
	log := logger.Setup(cfg.Env)

	log.Info("starting my-secret-web", slog.String("env", cfg.Env))
	log.Debug("config loaded", slog.String("config", cfg.String()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := mysecretweb.New(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize app", sl.Err(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("app stopped with error", sl.Err(err))
		os.Exit(1)
	}

	log.Info("my-secret-web stopped gracefully")
}
