// Package register реализует HTTP-обработчик регистрации пользователя.
// Роль новому пользователю назначается сервером, клиент её не передаёт.
package register

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
	"github.com/sohagq3024/my-secret-web-2.0/internal/services/auth"
)

// Handler обрабатывает запросы на регистрацию.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.PublicUser, error)
}

// Response: тело успешного ответа.
type Response struct {
	User *models.PublicUser `json:"user"`
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
// @Summary Регистрация пользователя
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body models.RegisterRequest true "Данные нового пользователя"
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос или пользователь уже существует"
// @Router /auth/register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.RegisterRequest
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

	user, err := h.service.Register(r.Context(), req)
	switch {
	case errors.Is(err, auth.ErrUsernameTaken):
		response.JSONError(w, r, http.StatusBadRequest, "Username already exists")
		return
	case errors.Is(err, auth.ErrEmailTaken):
		response.JSONError(w, r, http.StatusBadRequest, "Email already exists")
		return
	case errors.Is(err, auth.ErrPasswordTooLong):
		log.Warn("password exceeds bcrypt limit")
		response.JSONError(w, r, http.StatusBadRequest, response.MsgInvalidBody)
		return
	case errors.Is(err, auth.ErrUserExists):
		response.JSONError(w, r, http.StatusBadRequest, "User already exists")
		return
	case err != nil:
		log.Error("failed to register user", sl.Err(err))
		response.JSONError(w, r, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	log.Info("user registered", slog.Int("user_id", user.ID))
	render.JSON(w, r, Response{User: user})
}
