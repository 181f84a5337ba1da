// Package health реализует HTTP-обработчик проверки состояния сервиса.
package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/sl"
)

// Pinger проверяет доступность зависимости.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler отвечает на /health.
type Handler struct {
	log     *slog.Logger
	storage Pinger
}

// Response: тело ответа.
type Response struct {
	Status string `json:"status"`
}

// New создает новый экземпляр Handler. storage может быть nil.
func New(log *slog.Logger, storage Pinger) *Handler {
	return &Handler{
		log:     log,
		storage: storage,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"

	if h.storage != nil {
		if err := h.storage.Ping(r.Context()); err != nil {
			h.log.Error("storage is unavailable", slog.String("op", op), sl.Err(err))
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, Response{Status: "unavailable"})
			return
		}
	}
	render.JSON(w, r, Response{Status: "ok"})
}
