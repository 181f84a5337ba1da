package middlewarectx_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sohagq3024/my-secret-web-2.0/internal/http/middlewarectx"
	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/jwt"
)

type TokenParserMock struct {
	mock.Mock
}

func (m *TokenParserMock) ParseToken(tokenStr string) (*jwt.CustomClaims, error) {
	args := m.Called(tokenStr)
	claims, _ := args.Get(0).(*jwt.CustomClaims)
	return claims, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestJWTMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		claims         *jwt.CustomClaims
		parseErr       error
		wantStatusCode int
		wantCalled     bool
	}{
		{
			name:           "missing Authorization header",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "invalid Authorization header prefix",
			authHeader:     "Basic sometoken",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "token validation error",
			authHeader:     "Bearer bad",
			parseErr:       errors.New("token is expired"),
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "valid token",
			authHeader:     "Bearer good",
			claims:         &jwt.CustomClaims{UserID: 7, Username: "admin", Role: "admin"},
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := new(TokenParserMock)
			if tt.claims != nil || tt.parseErr != nil {
				parser.On("ParseToken", tt.authHeader[len("Bearer "):]).Return(tt.claims, tt.parseErr).Once()
			}

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				assert.Equal(t, 7, r.Context().Value(middlewarectx.UserID))
				assert.Equal(t, "admin", r.Context().Value(middlewarectx.User))
				assert.Equal(t, "admin", r.Context().Value(middlewarectx.Role))
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			middlewarectx.JWTMiddleware(parser, newNoopLogger())(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatusCode, rr.Code)
			assert.Equal(t, tt.wantCalled, called)
			parser.AssertExpectations(t)
		})
	}
}

func TestJWTMiddleware_RealToken(t *testing.T) {
	maker := jwt.NewJWTMaker("secret", time.Hour)
	token, err := maker.GenerateToken(1, "root", "admin")
	assert.NoError(t, err)

	handler := middlewarectx.JWTMiddleware(maker, newNoopLogger())(
		middlewarectx.RequireRole("admin", newNoopLogger())(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			}),
		),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name           string
		role           any
		wantStatusCode int
	}{
		{name: "admin allowed", role: "admin", wantStatusCode: http.StatusOK},
		{name: "user forbidden", role: "user", wantStatusCode: http.StatusForbidden},
		{name: "no role in context", role: nil, wantStatusCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.role != nil {
				req = req.WithContext(contextWithRole(req, tt.role.(string)))
			}
			rr := httptest.NewRecorder()

			middlewarectx.RequireRole("admin", newNoopLogger())(next).ServeHTTP(rr, req)
			assert.Equal(t, tt.wantStatusCode, rr.Code)
		})
	}
}

func contextWithRole(r *http.Request, role string) context.Context {
	return context.WithValue(r.Context(), middlewarectx.Role, role)
}
