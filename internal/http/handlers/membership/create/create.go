// Package create реализует HTTP-обработчик подачи заявки на членство.
package create

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/sohagq3024/my-secret-web-2.0/internal/http/response"
	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/sl"
	"github.com/sohagq3024/my-secret-web-2.0/internal/models"
	"github.com/sohagq3024/my-secret-web-2.0/internal/services/membership"
)

// Handler принимает заявки на членство.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики подачи заявки.
type Service interface {
	Submit(ctx context.Context, input models.MembershipRequestInput) (*models.MembershipRequest, error)
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
// @Summary Подать заявку на членство
// @Tags Membership
// @Accept  json
// @Produce  json
// @Param request body models.MembershipRequestInput true "Заявка"
// @Success 200 {object} models.MembershipRequest
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Router /membership/request [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.membership.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input models.MembershipRequestInput
	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.JSONError(w, r, http.StatusBadRequest, response.MsgInvalidBody)
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.Warn("validation failed", slog.String("details", response.ValidationMessage(err)))
		response.JSONError(w, r, http.StatusBadRequest, response.MsgInvalidBody)
		return
	}

	req, err := h.service.Submit(r.Context(), input)
	if errors.Is(err, membership.ErrUnknownUser) {
		log.Warn("membership request for unknown user", slog.Int("user_id", input.UserID))
		response.JSONError(w, r, http.StatusBadRequest, response.MsgInvalidBody)
		return
	}
	if err != nil {
		log.Error("failed to submit membership request", sl.Err(err))
		response.JSONError(w, r, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	render.JSON(w, r, req)
}
