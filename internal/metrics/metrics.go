// Package metrics содержит метрики Prometheus сервиса.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mysecretweb"

// Registry хранит все метрики сервиса.
type Registry struct {
	// HTTP
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Бизнес-метрики
	MembershipTransitions *prometheus.CounterVec
	LoginAttempts         *prometheus.CounterVec
	CatalogCacheLookups   *prometheus.CounterVec
	ExpiryNotifications   *prometheus.CounterVec
}

// New регистрирует метрики в reg. Для тестов передаётся prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)
	return &Registry{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests processed by route, method, and status code",
			},
			[]string{"route", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency distribution in seconds",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"route", "method"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Number of HTTP requests currently being processed",
			},
		),
		MembershipTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "membership_transitions_total",
				Help:      "Membership request status transitions by target status and result",
			},
			[]string{"status", "result"},
		),
		LoginAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "login_attempts_total",
				Help:      "Login attempts by outcome",
			},
			[]string{"outcome"},
		),
		CatalogCacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "catalog_cache_lookups_total",
				Help:      "Catalog list cache lookups by kind and result",
			},
			[]string{"kind", "result"},
		),
		ExpiryNotifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "expiry_notifications_total",
				Help:      "Membership expiry notifications by publish result",
			},
			[]string{"result"},
		),
	}
}

// NewNoop возвращает метрики, не зарегистрированные ни в одном реестре.
func NewNoop() *Registry {
	return New(prometheus.NewRegistry())
}
