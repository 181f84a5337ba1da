// Package list реализует HTTP-обработчик списков каталога.
//
// Один Handler обслуживает один вид записей. Для альбомов и видео
// поддерживается параметр featured=true.
package list

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/sohagq3024/my-secret-web-2.0/internal/http/response"
	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/sl"
	"github.com/sohagq3024/my-secret-web-2.0/internal/models"
	"github.com/sohagq3024/my-secret-web-2.0/internal/services/catalog"
)

// Handler возвращает список записей вида kind.
type Handler struct {
	log     *slog.Logger
	service Service
	kind    string
}

// Service описывает чтение списков каталога.
type Service interface {
	ListCelebrities(ctx context.Context) ([]*models.Celebrity, error)
	ListAlbums(ctx context.Context, featuredOnly bool) ([]*models.Album, error)
	ListVideos(ctx context.Context, featuredOnly bool) ([]*models.Video, error)
	ListSlideshow(ctx context.Context) ([]*models.SlideshowImage, error)
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
// @Summary Список записей каталога
// @Tags Catalog
// @Produce  json
// @Param featured query bool false "Только избранные (альбомы и видео)"
// @Success 200 {array} models.Album
// @Failure 500 {object} response.ErrorResponse
// @Router /albums [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("kind", h.kind),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	featured := r.URL.Query().Get("featured") == "true"

	var (
		items any
		err   error
	)
	switch h.kind {
	case catalog.KindCelebrities:
		var list []*models.Celebrity
		list, err = h.service.ListCelebrities(r.Context())
		items = orEmpty(list)
	case catalog.KindAlbums:
		var list []*models.Album
		list, err = h.service.ListAlbums(r.Context(), featured)
		items = orEmpty(list)
	case catalog.KindVideos:
		var list []*models.Video
		list, err = h.service.ListVideos(r.Context(), featured)
		items = orEmpty(list)
	case catalog.KindSlideshow:
		var list []*models.SlideshowImage
		list, err = h.service.ListSlideshow(r.Context())
		items = orEmpty(list)
	default:
		err = fmt.Errorf("unknown catalog kind %q", h.kind)
	}
	if err != nil {
		log.Error("failed to list catalog", sl.Err(err))
		response.JSONError(w, r, http.StatusInternalServerError, "Failed to fetch "+h.kind)
		return
	}

	render.JSON(w, r, items)
}

func orEmpty[T any](items []*T) []*T {
	if items == nil {
		return []*T{}
	}
	return items
}
