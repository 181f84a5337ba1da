// Package check реализует HTTP-обработчик проверки действующего членства пользователя.
package check

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/sohagq3024/my-secret-web-2.0/internal/http/response"
	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/sl"
	"github.com/sohagq3024/my-secret-web-2.0/internal/models"
)

// Handler отвечает, есть ли у пользователя действующее членство.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс проверки членства.
type Service interface {
	Check(ctx context.Context, userID int) (*models.ActiveMembership, error)
}

// Response: результат проверки. Membership равен null, если членства нет.
type Response struct {
	HasValidMembership bool                     `json:"hasValidMembership"`
	Membership         *models.ActiveMembership `json:"membership"`
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Проверить членство пользователя
// @Tags Membership
// @Produce  json
// @Param userId path int true "ID пользователя"
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /membership/check/{userId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.membership.check"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, err := strconv.Atoi(chi.URLParam(r, "userId"))
	if err != nil {
		log.Warn("failed to decode user id from url", sl.Err(err))
		response.JSONError(w, r, http.StatusBadRequest, response.MsgInvalidBody)
		return
	}

	m, err := h.service.Check(r.Context(), userID)
	if err != nil {
		log.Error("failed to check membership", sl.Err(err))
		response.JSONError(w, r, http.StatusInternalServerError, "Failed to check membership")
		return
	}

	render.JSON(w, r, Response{
		HasValidMembership: m != nil,
		Membership:         m,
	})
}
