// Package logger настраивает slog в зависимости от окружения.
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/sohagq3024/my-secret-web-2.0/internal/config"
)

// Setup возвращает текстовый логгер с уровнем debug для local
// и JSON-логгер для dev и prod.
func Setup(env string) *slog.Logger {
	return New(os.Stdout, env)
}

// New создаёт логгер, пишущий в w.
func New(w io.Writer, env string) *slog.Logger {
	switch env {
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case config.EnvProd:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
