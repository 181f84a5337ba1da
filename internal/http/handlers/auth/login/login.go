// Package login реализует HTTP-обработчик входа пользователя.
//
// Пользователь ищется по username, затем по email. При неверных данных
// ответ всегда один и тот же, без указания, что именно не совпало.
package login

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

// Handler обрабатывает HTTP-запросы для авторизации.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики аутентификации.
type Service interface {
	Login(ctx context.Context, identifier, password string) (*auth.LoginResult, error)
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
// @Summary Вход пользователя
// @Description Проверяет учётные данные. Возвращает профиль, признак действующего членства и JWT.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body models.LoginRequest true "Учетные данные пользователя"
// @Success 200 {object} auth.LoginResult
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 401 {object} response.ErrorResponse "Неверные учетные данные"
// @Router /auth/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.LoginRequest
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

	res, err := h.service.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		log.Info("invalid credentials")
		response.JSONError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		log.Error("login failed", sl.Err(err))
		response.JSONError(w, r, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	log.Info("login success", slog.Int("user_id", res.User.ID))
	render.JSON(w, r, res)
}
