// Package create реализует HTTP-обработчик создания записей каталога администратором.
package create

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/sohagq3024/my-secret-web-2.0/internal/http/response"
	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/sl"
	"github.com/sohagq3024/my-secret-web-2.0/internal/models"
	"github.com/sohagq3024/my-secret-web-2.0/internal/services/catalog"
)

// Handler создаёт запись вида kind.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
	kind     string
}

// Service описывает создание записей каталога.
type Service interface {
	CreateCelebrity(ctx context.Context, in models.CelebrityInput) (*models.Celebrity, error)
	CreateAlbum(ctx context.Context, in models.AlbumInput) (*models.Album, error)
	CreateVideo(ctx context.Context, in models.VideoInput) (*models.Video, error)
	CreateSlideshowImage(ctx context.Context, in models.SlideshowInput) (*models.SlideshowImage, error)
}

// New создает новый экземпляр Handler для вида kind.
func New(log *slog.Logger, service Service, kind string) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
		kind:     kind,
	}
}

// ServeHTTP godoc
// @Summary Создать запись каталога
// @Tags Admin
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param request body models.AlbumInput true "Новая запись"
// @Success 200 {object} models.Album
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /admin/albums [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("kind", h.kind),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var (
		created any
		err     error
	)
	switch h.kind {
	case catalog.KindCelebrities:
		var in models.CelebrityInput
		if err = h.decode(r, &in); err == nil {
			created, err = h.service.CreateCelebrity(r.Context(), in)
		}
	case catalog.KindAlbums:
		var in models.AlbumInput
		if err = h.decode(r, &in); err == nil {
			created, err = h.service.CreateAlbum(r.Context(), in)
		}
	case catalog.KindVideos:
		var in models.VideoInput
		if err = h.decode(r, &in); err == nil {
			created, err = h.service.CreateVideo(r.Context(), in)
		}
	case catalog.KindSlideshow:
		var in models.SlideshowInput
		if err = h.decode(r, &in); err == nil {
			created, err = h.service.CreateSlideshowImage(r.Context(), in)
		}
	default:
		err = fmt.Errorf("unknown catalog kind %q", h.kind)
	}

	if ie, ok := err.(inputError); ok {
		log.Warn("invalid input", slog.String("details", ie.Error()))
		response.JSONError(w, r, http.StatusBadRequest, response.MsgInvalidBody)
		return
	}
	if err != nil {
		log.Error("failed to create catalog item", sl.Err(err))
		response.JSONError(w, r, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	log.Info("catalog item created")
	render.JSON(w, r, created)
}

type inputError struct {
	msg string
}

func (e inputError) Error() string {
	return e.msg
}

func (h *Handler) decode(r *http.Request, dst any) error {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		return inputError{msg: err.Error()}
	}
	if err := h.validate.Struct(dst); err != nil {
		return inputError{msg: response.ValidationMessage(err)}
	}
	return nil
}
