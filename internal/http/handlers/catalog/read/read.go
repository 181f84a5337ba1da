// Package read реализует HTTP-обработчик чтения одной записи каталога по ID.
package read

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/sohagq3024/my-secret-web-2.0/internal/http/response"
	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/sl"
	"github.com/sohagq3024/my-secret-web-2.0/internal/models"
	"github.com/sohagq3024/my-secret-web-2.0/internal/services/catalog"
)

var notFoundMessages = map[string]string{
	catalog.KindCelebrities: "Celebrity not found",
	catalog.KindAlbums:      "Album not found",
	catalog.KindVideos:      "Video not found",
}

// Handler возвращает запись вида kind по ID из URL.
type Handler struct {
	log     *slog.Logger
	service Service
	kind    string
}

// Service описывает чтение записи каталога.
type Service interface {
	GetCelebrity(ctx context.Context, id int) (*models.Celebrity, error)
	GetAlbum(ctx context.Context, id int) (*models.Album, error)
	GetVideo(ctx context.Context, id int) (*models.Video, error)
}

// New создает новый экземпляр Handler для вида kind.
func New(log *slog.Logger, service Service, kind string) *Handler {
	return &Handler{
		log:     log,
		service: service,
		kind:    kind,
	}
}

// ServeHTTP godoc
// @Summary Запись каталога по ID
// @Tags Catalog
// @Produce  json
// @Param id path int true "ID записи"
// @Success 200 {object} models.Celebrity
// @Failure 404 {object} response.ErrorResponse
// @Router /celebrities/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("kind", h.kind),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Warn("failed to decode id from url", sl.Err(err))
		response.JSONError(w, r, http.StatusBadRequest, response.MsgInvalidBody)
		return
	}

	var item any
	switch h.kind {
	case catalog.KindCelebrities:
		item, err = h.service.GetCelebrity(r.Context(), id)
	case catalog.KindAlbums:
		item, err = h.service.GetAlbum(r.Context(), id)
	case catalog.KindVideos:
		item, err = h.service.GetVideo(r.Context(), id)
	default:
		err = fmt.Errorf("unknown catalog kind %q", h.kind)
	}
	if errors.Is(err, catalog.ErrNotFound) {
		response.JSONError(w, r, http.StatusNotFound, notFoundMessages[h.kind])
		return
	}
	if err != nil {
		log.Error("failed to read catalog item", slog.Int("id", id), sl.Err(err))
		response.JSONError(w, r, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	render.JSON(w, r, item)
}
