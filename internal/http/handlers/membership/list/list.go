// Package list реализует HTTP-обработчик списка заявок на членство для администратора.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/sohagq3024/my-secret-web-2.0/internal/http/response"
	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/sl"
	"github.com/sohagq3024/my-secret-web-2.0/internal/models"
)

// Handler возвращает все заявки вместе с профилями владельцев.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс получения заявок.
type Service interface {
	List(ctx context.Context) ([]*models.MembershipRequestWithUser, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список заявок на членство
// @Tags Membership
// @Security BearerAuth
// @Produce  json
// @Success 200 {array} models.MembershipRequestWithUser
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /membership/requests [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.membership.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	list, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list membership requests", sl.Err(err))
		response.JSONError(w, r, http.StatusInternalServerError, "Failed to fetch membership requests")
		return
	}
	if list == nil {
		list = []*models.MembershipRequestWithUser{}
	}

	log.Debug("membership requests listed", slog.Int("count", len(list)))
	render.JSON(w, r, list)
}
