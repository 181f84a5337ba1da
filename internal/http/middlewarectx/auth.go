// Package middlewarectx содержит HTTP middleware сервиса: проверку JWT,
// проверку роли, ограничение частоты запросов и сбор метрик.
//
// JWTMiddleware проверяет заголовок Authorization и в случае успеха
// кладёт в контекст идентификатор пользователя, его имя и роль.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"

	"github.com/sohagq3024/my-secret-web-2.0/internal/http/response"
	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/jwt"
	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// UserID: ключ для идентификатора пользователя в контексте
	UserID Key = "user_id"
	// User: ключ для имени пользователя в контексте
	User Key = "username"
	// Role: ключ для роли пользователя в контексте
	Role Key = "role"
)

// TokenParser проверяет подпись и срок действия токена.
type TokenParser interface {
	ParseToken(tokenStr string) (*jwt.CustomClaims, error)
}

// JWTMiddleware возвращает middleware, который проверяет Bearer-токен.
// При ошибке отвечает 401 Unauthorized.
func JWTMiddleware(parser TokenParser, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Warn("missing or invalid authorization header")
				response.JSONError(w, r, http.StatusUnauthorized, response.MsgUnauthorized)
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := parser.ParseToken(tokenStr)
			if err != nil {
				log.Warn("invalid or expired token", sl.Err(err))
				response.JSONError(w, r, http.StatusUnauthorized, response.MsgUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserID, claims.UserID)
			ctx = context.WithValue(ctx, User, claims.Username)
			ctx = context.WithValue(ctx, Role, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole пропускает только запросы с ролью role. Должен идти после JWTMiddleware.
func RequireRole(role string, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := r.Context().Value(Role).(string)
			if !ok {
				response.JSONError(w, r, http.StatusUnauthorized, response.MsgUnauthorized)
				return
			}
			if got != role {
				log.Warn("access denied",
					slog.String("request_id", middleware.GetReqID(r.Context())),
					slog.String("role", got),
					slog.String("required", role),
				)
				response.JSONError(w, r, http.StatusForbidden, response.MsgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
