// Package membership реализует жизненный цикл заявок на членство
// и проверку действующего доступа пользователя.
package membership

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/plan"
	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/sl"
	"github.com/sohagq3024/my-secret-web-2.0/internal/metrics"
	"github.com/sohagq3024/my-secret-web-2.0/internal/models"
	"github.com/sohagq3024/my-secret-web-2.0/internal/storage"
)

var (
	// ErrNotFound: заявки с таким ID нет.
	ErrNotFound = errors.New("membership request not found")
	// ErrInvalidTransition: заявка уже одобрена или отклонена.
	ErrInvalidTransition = errors.New("membership request is not pending")
	// ErrInvalidStatus: целевой статус не approved и не rejected.
	ErrInvalidStatus = errors.New("invalid target status")
	// ErrUnknownUser: владелец заявки не зарегистрирован.
	ErrUnknownUser = errors.New("user does not exist")
)

// Repository описывает хранилище заявок и членств.
type Repository interface {
	CreateMembershipRequest(ctx context.Context, req models.MembershipRequest) (*models.MembershipRequest, error)
	GetMembershipRequest(ctx context.Context, id int) (*models.MembershipRequest, error)
	ListMembershipRequests(ctx context.Context) ([]*models.MembershipRequestWithUser, error)
	// ApproveMembershipRequest атомарно одобряет заявку в статусе pending и создаёт членство.
	ApproveMembershipRequest(ctx context.Context, id int, approvedAt, expiresAt time.Time) (*models.ActiveMembership, error)
	// RejectMembershipRequest отклоняет заявку в статусе pending.
	RejectMembershipRequest(ctx context.Context, id int) error
	LatestValidMembership(ctx context.Context, userID int, now time.Time) (*models.ActiveMembership, error)
}

// Service управляет заявками на членство.
type Service struct {
	repo    Repository
	log     *slog.Logger
	metrics *metrics.Registry
	now     func() time.Time
}

// Option настраивает Service.
type Option func(*Service)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New создает новый экземпляр Service.
func New(repo Repository, log *slog.Logger, m *metrics.Registry, opts ...Option) *Service {
	s := &Service{
		repo:    repo,
		log:     log,
		metrics: m,
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit сохраняет новую заявку в статусе pending.
func (s *Service) Submit(ctx context.Context, input models.MembershipRequestInput) (*models.MembershipRequest, error) {
	const op = "membership.Submit"

	req, err := s.repo.CreateMembershipRequest(ctx, models.MembershipRequest{
		UserID:        input.UserID,
		Plan:          input.Plan,
		Price:         input.Price,
		PaymentMethod: input.PaymentMethod,
		Status:        models.StatusPending,
	})
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, ErrUnknownUser)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("membership request submitted",
		slog.Int("request_id", req.ID),
		slog.Int("user_id", req.UserID),
		slog.String("plan", req.Plan),
	)
	return req, nil
}

// List возвращает все заявки с профилями владельцев.
func (s *Service) List(ctx context.Context) ([]*models.MembershipRequestWithUser, error) {
	const op = "membership.List"
	list, err := s.repo.ListMembershipRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

// SetStatus переводит заявку из pending в approved или rejected.
// При одобрении создаётся членство со сроком по плану заявки.
func (s *Service) SetStatus(ctx context.Context, id int, status string) error {
	const op = "membership.SetStatus"

	var err error
	switch status {
	case models.StatusApproved:
		err = s.approve(ctx, id)
	case models.StatusRejected:
		err = s.repo.RejectMembershipRequest(ctx, id)
	default:
		return fmt.Errorf("%s: %q: %w", op, status, ErrInvalidStatus)
	}

	switch {
	case err == nil:
		s.metrics.MembershipTransitions.WithLabelValues(status, "ok").Inc()
		s.log.Info("membership request status changed", slog.Int("request_id", id), slog.String("status", status))
		return nil
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, ErrNotFound):
		s.metrics.MembershipTransitions.WithLabelValues(status, "not_found").Inc()
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, storage.ErrStatusConflict), errors.Is(err, ErrInvalidTransition):
		s.metrics.MembershipTransitions.WithLabelValues(status, "conflict").Inc()
		return fmt.Errorf("%s: %w", op, ErrInvalidTransition)
	default:
		s.metrics.MembershipTransitions.WithLabelValues(status, "error").Inc()
		return fmt.Errorf("%s: %w", op, err)
	}
}

func (s *Service) approve(ctx context.Context, id int) error {
	req, err := s.repo.GetMembershipRequest(ctx, id)
	if err != nil {
		return err
	}
	if req.Status != models.StatusPending {
		return ErrInvalidTransition
	}

	now := s.now()
	expiresAt, known := plan.ExpiresAt(req.Plan, now)
	if !known {
		s.log.Warn("unknown plan code, membership expires immediately",
			slog.Int("request_id", id),
			slog.String("plan", req.Plan),
		)
	}

	m, err := s.repo.ApproveMembershipRequest(ctx, id, now, expiresAt)
	if err != nil {
		return err
	}
	s.log.Debug("active membership created",
		slog.Int("membership_id", m.ID),
		slog.Int("user_id", m.UserID),
		slog.Time("expires_at", m.ExpiresAt),
	)
	return nil
}

// Check возвращает действующее членство пользователя или nil, если его нет.
// Результат не кешируется.
func (s *Service) Check(ctx context.Context, userID int) (*models.ActiveMembership, error) {
	const op = "membership.Check"
	m, err := s.repo.LatestValidMembership(ctx, userID, s.now())
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		s.log.Error("failed to check membership", sl.Op(op), slog.Int("user_id", userID), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return m, nil
}
