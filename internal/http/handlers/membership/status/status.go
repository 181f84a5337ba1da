// Package status реализует HTTP-обработчик смены статуса заявки на членство.
//
// Заявка переходит из pending в approved или rejected ровно один раз.
// Повторная смена статуса возвращает 409 Conflict.
package status

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/sohagq3024/my-secret-web-2.0/internal/http/response"
	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/sl"
	"github.com/sohagq3024/my-secret-web-2.0/internal/models"
	"github.com/sohagq3024/my-secret-web-2.0/internal/services/membership"
)

// Handler меняет статус заявки.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс смены статуса.
type Service interface {
	SetStatus(ctx context.Context, id int, status string) error
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Одобрить или отклонить заявку
// @Tags Membership
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param id path int true "ID заявки"
// @Param request body models.StatusUpdate true "Новый статус"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "Некорректный статус"
// @Failure 404 {object} response.ErrorResponse "Заявка не найдена"
// @Failure 409 {object} response.ErrorResponse "Заявка уже обработана"
// @Router /membership/requests/{id}/status [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.membership.status"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Warn("failed to decode id from url", sl.Err(err))
		response.JSONError(w, r, http.StatusBadRequest, response.MsgInvalidBody)
		return
	}

	var req models.StatusUpdate
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.JSONError(w, r, http.StatusBadRequest, response.MsgInvalidBody)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Warn("validation failed", slog.String("details", response.ValidationMessage(err)))
		response.JSONError(w, r, http.StatusBadRequest, response.MsgInvalidBody)
		return
	}

	err = h.service.SetStatus(r.Context(), id, req.Status)
	switch {
	case errors.Is(err, membership.ErrInvalidStatus):
		response.JSONError(w, r, http.StatusBadRequest, response.MsgInvalidBody)
		return
	case errors.Is(err, membership.ErrNotFound):
		response.JSONError(w, r, http.StatusNotFound, "Membership request not found")
		return
	case errors.Is(err, membership.ErrInvalidTransition):
		log.Info("membership request already processed", slog.Int("request_id", id))
		response.JSONError(w, r, http.StatusConflict, "Membership request is not pending")
		return
	case err != nil:
		log.Error("failed to update status", sl.Err(err))
		response.JSONError(w, r, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	log.Info("status updated", slog.Int("request_id", id), slog.String("status", req.Status))
	render.JSON(w, r, response.MessageResponse{Message: "Status updated successfully"})
}
