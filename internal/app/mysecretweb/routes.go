// Package mysecretweb собирает HTTP API сайта: хранилище, кеш, сервисы и маршруты.
package mysecretweb

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sohagq3024/my-secret-web-2.0/internal/http/handlers/auth/login"
	"github.com/sohagq3024/my-secret-web-2.0/internal/http/handlers/auth/register"
	catalogcreate "github.com/sohagq3024/my-secret-web-2.0/internal/http/handlers/catalog/create"
	cataloglist "github.com/sohagq3024/my-secret-web-2.0/internal/http/handlers/catalog/list"
	catalogread "github.com/sohagq3024/my-secret-web-2.0/internal/http/handlers/catalog/read"
	"github.com/sohagq3024/my-secret-web-2.0/internal/http/handlers/health"
	"github.com/sohagq3024/my-secret-web-2.0/internal/http/handlers/membership/check"
	membershipcreate "github.com/sohagq3024/my-secret-web-2.0/internal/http/handlers/membership/create"
	membershiplist "github.com/sohagq3024/my-secret-web-2.0/internal/http/handlers/membership/list"
	"github.com/sohagq3024/my-secret-web-2.0/internal/http/handlers/membership/status"
	"github.com/sohagq3024/my-secret-web-2.0/internal/http/middlewarectx"
	"github.com/sohagq3024/my-secret-web-2.0/internal/metrics"
	"github.com/sohagq3024/my-secret-web-2.0/internal/models"
	"github.com/sohagq3024/my-secret-web-2.0/internal/services/auth"
	"github.com/sohagq3024/my-secret-web-2.0/internal/services/catalog"
	"github.com/sohagq3024/my-secret-web-2.0/internal/services/membership"
)

// Services: сервисы, которые обслуживают маршруты.
type Services struct {
	Auth       *auth.Service
	Membership *membership.Service
	Catalog    *catalog.Service
}

// RouterDeps: инфраструктура для middleware и служебных маршрутов.
type RouterDeps struct {
	Logger   *slog.Logger
	Metrics  *metrics.Registry
	Gatherer prometheus.Gatherer
	Tokens   middlewarectx.TokenParser
	Limiter  *middlewarectx.RateLimiter
	Storage  health.Pinger

	// TrustProxyHeaders: брать адрес клиента из заголовков прокси.
	// Иначе лимитер считает запросы по адресу сокета.
	TrustProxyHeaders bool
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, deps RouterDeps, svc Services) {
	logger := deps.Logger

	// Глобальные middleware
	r.Use(middleware.RequestID)
	if deps.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middlewarectx.MetricsMiddleware(deps.Metrics),
	)

	r.Get("/health", health.New(logger, deps.Storage).ServeHTTP)
	r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	r.Get("/docs/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		r.Use(deps.Limiter.Middleware(logger))

		r.Post("/auth/login", login.New(logger, svc.Auth).ServeHTTP)
		r.Post("/auth/register", register.New(logger, svc.Auth).ServeHTTP)

		r.Post("/membership/request", membershipcreate.New(logger, svc.Membership).ServeHTTP)
		r.Get("/membership/check/{userId}", check.New(logger, svc.Membership).ServeHTTP)

		for _, kind := range []string{catalog.KindCelebrities, catalog.KindAlbums, catalog.KindVideos, catalog.KindSlideshow} {
			r.Get("/"+kind, cataloglist.New(logger, svc.Catalog, kind).ServeHTTP)
		}
		for _, kind := range []string{catalog.KindCelebrities, catalog.KindAlbums, catalog.KindVideos} {
			r.Get("/"+kind+"/{id}", catalogread.New(logger, svc.Catalog, kind).ServeHTTP)
		}

		// Группа администратора
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(deps.Tokens, logger))
			r.Use(middlewarectx.RequireRole(models.RoleAdmin, logger))

			r.Get("/membership/requests", membershiplist.New(logger, svc.Membership).ServeHTTP)
			r.Patch("/membership/requests/{id}/status", status.New(logger, svc.Membership).ServeHTTP)

			for _, kind := range []string{catalog.KindCelebrities, catalog.KindAlbums, catalog.KindVideos, catalog.KindSlideshow} {
				r.Post("/admin/"+kind, catalogcreate.New(logger, svc.Catalog, kind).ServeHTTP)
			}
		})
	})
}

// NewRouter создаёт chi-роутер со всеми маршрутами.
func NewRouter(deps RouterDeps, svc Services) http.Handler {
	router := chi.NewRouter()
	RegisterRoutes(router, deps, svc)
	return router
}
