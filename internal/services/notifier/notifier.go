// Package notifier периодически ищет членства, срок которых скоро истекает,
// и публикует уведомления в RabbitMQ.
package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/rabbitmq"
	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/sl"
	"github.com/sohagq3024/my-secret-web-2.0/internal/metrics"
	"github.com/sohagq3024/my-secret-web-2.0/internal/models"
)

// Repository возвращает членства, истекающие в интервале (from, to].
type Repository interface {
	ListMembershipsExpiringBetween(ctx context.Context, from, to time.Time) ([]*models.ExpiringMembership, error)
}

// Publisher отправляет сообщение с ключом маршрутизации.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

// Service публикует уведомления об истечении членства.
// Каждое членство уведомляется один раз за время жизни процесса.
type Service struct {
	repo      Repository
	publisher Publisher
	log       *slog.Logger
	metrics   *metrics.Registry
	window    time.Duration
	now       func() time.Time

	notified map[int]time.Time
}

// New создает новый экземпляр Service.
func New(repo Repository, publisher Publisher, log *slog.Logger, m *metrics.Registry, window time.Duration) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		log:       log,
		metrics:   m,
		window:    window,
		now:       func() time.Time { return time.Now().UTC() },
		notified:  make(map[int]time.Time),
	}
}

// Run выполняет проверку сразу и затем каждые interval до отмены ctx.
func (s *Service) Run(ctx context.Context, interval time.Duration) {
	s.runOnceLogged(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("expiry notifier stopped")
			return
		case <-ticker.C:
			s.runOnceLogged(ctx)
		}
	}
}

func (s *Service) runOnceLogged(ctx context.Context) {
	if _, err := s.RunOnce(ctx); err != nil {
		s.log.Error("expiry check failed", sl.Err(err))
	}
}

// RunOnce публикует уведомления по членствам, истекающим в ближайшие window.
// Возвращает количество опубликованных сообщений.
func (s *Service) RunOnce(ctx context.Context) (int, error) {
	const op = "notifier.RunOnce"
	now := s.now()
	s.forgetExpired(now)

	list, err := s.repo.ListMembershipsExpiringBetween(ctx, now, now.Add(s.window))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if len(list) == 0 {
		s.log.Debug("no expiring memberships found")
		return 0, nil
	}

	published := 0
	for _, m := range list {
		if _, done := s.notified[m.MembershipID]; done {
			continue
		}
		if err := s.publisher.Publish(ctx, rabbitmq.RoutingKeyMembershipExpiring, m); err != nil {
			s.metrics.ExpiryNotifications.WithLabelValues("error").Inc()
			s.log.Error("failed to publish message",
				slog.Int("membership_id", m.MembershipID),
				sl.Err(err),
			)
			continue
		}
		s.notified[m.MembershipID] = m.ExpiresAt
		s.metrics.ExpiryNotifications.WithLabelValues("ok").Inc()
		published++
	}

	s.log.Info("expiry notifications published",
		slog.Int("found", len(list)),
		slog.Int("published", published),
	)
	return published, nil
}

func (s *Service) forgetExpired(now time.Time) {
	for id, expiresAt := range s.notified {
		if !expiresAt.After(now) {
			delete(s.notified, id)
		}
	}
}
