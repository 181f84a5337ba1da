package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sohagq3024/my-secret-web-2.0/internal/models"
	"github.com/sohagq3024/my-secret-web-2.0/internal/storage"
)

// CreateMembershipRequest сохраняет заявку в статусе pending.
func (s *Storage) CreateMembershipRequest(ctx context.Context, req models.MembershipRequest) (*models.MembershipRequest, error) {
	const op = "storage.memory.CreateMembershipRequest"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[req.UserID]; !ok {
		return nil, fmt.Errorf("%s: user %d: %w", op, req.UserID, storage.ErrNotFound)
	}

	req.ID = s.nextID("membership_requests")
	req.Status = models.StatusPending
	req.ApprovedAt = nil
	if req.CreatedAt.IsZero() {
		req.CreatedAt = s.now()
	}
	s.requests[req.ID] = req
	return &req, nil
}

// GetMembershipRequest возвращает заявку по ID.
func (s *Storage) GetMembershipRequest(ctx context.Context, id int) (*models.MembershipRequest, error) {
	const op = "storage.memory.GetMembershipRequest"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	req, ok := s.requests[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return &req, nil
}

// ListMembershipRequests возвращает все заявки по возрастанию ID вместе с профилем владельца.
func (s *Storage) ListMembershipRequests(ctx context.Context) ([]*models.MembershipRequestWithUser, error) {
	const op = "storage.memory.ListMembershipRequests"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.MembershipRequestWithUser, 0, len(s.requests))
	for _, req := range s.requests {
		item := &models.MembershipRequestWithUser{MembershipRequest: req}
		if u, ok := s.users[req.UserID]; ok {
			item.User = u.Summary()
		}
		result = append(result, item)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// ApproveMembershipRequest переводит заявку из pending в approved и создаёт
// активное членство с планом заявки. Обе записи меняются под одной блокировкой.
func (s *Storage) ApproveMembershipRequest(ctx context.Context, id int, approvedAt, expiresAt time.Time) (*models.ActiveMembership, error) {
	const op = "storage.memory.ApproveMembershipRequest"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	if req.Status != models.StatusPending {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrStatusConflict)
	}

	req.Status = models.StatusApproved
	req.ApprovedAt = &approvedAt
	s.requests[id] = req

	m := models.ActiveMembership{
		ID:        s.nextID("active_memberships"),
		UserID:    req.UserID,
		Plan:      req.Plan,
		ExpiresAt: expiresAt,
		CreatedAt: approvedAt,
	}
	s.memberships[m.ID] = m
	return &m, nil
}

// RejectMembershipRequest переводит заявку из pending в rejected.
func (s *Storage) RejectMembershipRequest(ctx context.Context, id int) error {
	const op = "storage.memory.RejectMembershipRequest"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[id]
	if !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	if req.Status != models.StatusPending {
		return fmt.Errorf("%s: %w", op, storage.ErrStatusConflict)
	}

	req.Status = models.StatusRejected
	s.requests[id] = req
	return nil
}

// LatestValidMembership возвращает действующее в момент now членство пользователя
// с самой поздней датой окончания. При равных датах выигрывает больший ID.
func (s *Storage) LatestValidMembership(ctx context.Context, userID int, now time.Time) (*models.ActiveMembership, error) {
	const op = "storage.memory.LatestValidMembership"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var best *models.ActiveMembership
	for _, m := range s.memberships {
		if m.UserID != userID || !m.IsValidAt(now) {
			continue
		}
		if best == nil || m.ExpiresAt.After(best.ExpiresAt) ||
			(m.ExpiresAt.Equal(best.ExpiresAt) && m.ID > best.ID) {
			m := m
			best = &m
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return best, nil
}

// ListMembershipsExpiringBetween возвращает членства с окончанием в (from, to],
// если у владельца нет другого членства, действующего дольше to.
func (s *Storage) ListMembershipsExpiringBetween(ctx context.Context, from, to time.Time) ([]*models.ExpiringMembership, error) {
	const op = "storage.memory.ListMembershipsExpiringBetween"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	extended := make(map[int]bool)
	for _, m := range s.memberships {
		if m.ExpiresAt.After(to) {
			extended[m.UserID] = true
		}
	}

	var result []*models.ExpiringMembership
	for _, m := range s.memberships {
		if !m.ExpiresAt.After(from) || m.ExpiresAt.After(to) || extended[m.UserID] {
			continue
		}
		u, ok := s.users[m.UserID]
		if !ok {
			continue
		}
		result = append(result, &models.ExpiringMembership{
			MembershipID: m.ID,
			UserID:       u.ID,
			Username:     u.Username,
			Email:        u.Email,
			Plan:         m.Plan,
			ExpiresAt:    m.ExpiresAt,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].MembershipID < result[j].MembershipID })
	return result, nil
}
