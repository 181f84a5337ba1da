package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sohagq3024/my-secret-web-2.0/internal/models"
	"github.com/sohagq3024/my-secret-web-2.0/internal/storage"
)

const requestColumns = `r.id, r.user_id, r.plan, r.price::text, r.payment_method, r.status,
	r.created_at, r.approved_at`

func scanRequest(row scanner, extra ...any) (*models.MembershipRequest, error) {
	r := &models.MembershipRequest{}
	var approvedAt sql.NullTime
	dest := append([]any{&r.ID, &r.UserID, &r.Plan, &r.Price, &r.PaymentMethod, &r.Status,
		&r.CreatedAt, &approvedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if approvedAt.Valid {
		t := approvedAt.Time
		r.ApprovedAt = &t
	}
	return r, nil
}

// CreateMembershipRequest сохраняет заявку в статусе pending.
// Для несуществующего пользователя возвращает storage.ErrNotFound.
func (s *Storage) CreateMembershipRequest(ctx context.Context, req models.MembershipRequest) (*models.MembershipRequest, error) {
	const op = "storage.CreateMembershipRequest"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `INSERT INTO membership_requests AS r (user_id, plan, price, payment_method, status)
			  VALUES ($1, $2, $3, $4, 'pending')
			  RETURNING ` + requestColumns
	created, err := scanRequest(s.DB.QueryRowContext(ctx, query,
		req.UserID, req.Plan, req.Price, req.PaymentMethod))
	if err != nil {
		return nil, wrap(op, err)
	}
	return created, nil
}

// GetMembershipRequest возвращает заявку по ID.
func (s *Storage) GetMembershipRequest(ctx context.Context, id int) (*models.MembershipRequest, error) {
	const op = "storage.GetMembershipRequest"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	r, err := scanRequest(s.DB.QueryRowContext(ctx,
		`SELECT `+requestColumns+` FROM membership_requests r WHERE r.id = $1`, id))
	if err != nil {
		return nil, wrap(op, err)
	}
	return r, nil
}

// ListMembershipRequests возвращает все заявки вместе с сокращённым профилем владельца.
func (s *Storage) ListMembershipRequests(ctx context.Context) ([]*models.MembershipRequestWithUser, error) {
	const op = "storage.ListMembershipRequests"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT ` + requestColumns + `,
			      u.id, u.username, u.first_name, u.last_name, u.email
			  FROM membership_requests r
			  LEFT JOIN users u ON u.id = r.user_id
			  ORDER BY r.id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]*models.MembershipRequestWithUser, 0)
	for rows.Next() {
		var uid sql.NullInt64
		var username, firstName, lastName, email sql.NullString
		r, err := scanRequest(rows, &uid, &username, &firstName, &lastName, &email)
		if err != nil {
			return nil, wrap(op, err)
		}
		item := &models.MembershipRequestWithUser{MembershipRequest: *r}
		if uid.Valid {
			item.User = &models.UserSummary{
				ID:        int(uid.Int64),
				Username:  username.String,
				FirstName: firstName.String,
				LastName:  lastName.String,
				Email:     email.String,
			}
		}
		result = append(result, item)
	}
	if err = rows.Err(); err != nil {
		return nil, wrap(op, err)
	}
	return result, nil
}

// ApproveMembershipRequest в одной транзакции переводит заявку из pending в approved
// и создаёт активное членство с планом заявки.
func (s *Storage) ApproveMembershipRequest(ctx context.Context, id int, approvedAt, expiresAt time.Time) (*models.ActiveMembership, error) {
	const op = "storage.ApproveMembershipRequest"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var userID int
	var plan string
	err = tx.QueryRowContext(ctx, `UPDATE membership_requests
			  SET status = 'approved', approved_at = $2
			  WHERE id = $1 AND status = 'pending'
			  RETURNING user_id, plan`, id, approvedAt).Scan(&userID, &plan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, s.transitionError(ctx, op, id)
	}
	if err != nil {
		return nil, wrap(op, err)
	}

	m := &models.ActiveMembership{UserID: userID, Plan: plan}
	err = tx.QueryRowContext(ctx, `INSERT INTO active_memberships (user_id, plan, expires_at, created_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, expires_at, created_at`, userID, plan, expiresAt, approvedAt).
		Scan(&m.ID, &m.ExpiresAt, &m.CreatedAt)
	if err != nil {
		return nil, wrap(op, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, wrap(op, err)
	}
	return m, nil
}

// RejectMembershipRequest переводит заявку из pending в rejected.
func (s *Storage) RejectMembershipRequest(ctx context.Context, id int) error {
	const op = "storage.RejectMembershipRequest"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	res, err := s.DB.ExecContext(ctx, `UPDATE membership_requests
			  SET status = 'rejected'
			  WHERE id = $1 AND status = 'pending'`, id)
	if err != nil {
		return wrap(op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return wrap(op, err)
	}
	if affected == 0 {
		return s.transitionError(ctx, op, id)
	}
	return nil
}

// transitionError отличает отсутствующую заявку от уже обработанной.
func (s *Storage) transitionError(ctx context.Context, op string, id int) error {
	var exists bool
	err := s.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM membership_requests WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return wrap(op, err)
	}
	if !exists {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, storage.ErrStatusConflict)
}

// LatestValidMembership возвращает действующее в момент now членство пользователя
// с самой поздней датой окончания, при равенстве с большим ID.
func (s *Storage) LatestValidMembership(ctx context.Context, userID int, now time.Time) (*models.ActiveMembership, error) {
	const op = "storage.LatestValidMembership"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	m := &models.ActiveMembership{}
	err := s.DB.QueryRowContext(ctx, `SELECT id, user_id, plan, expires_at, created_at
			  FROM active_memberships
			  WHERE user_id = $1 AND expires_at > $2
			  ORDER BY expires_at DESC, id DESC
			  LIMIT 1`, userID, now).
		Scan(&m.ID, &m.UserID, &m.Plan, &m.ExpiresAt, &m.CreatedAt)
	if err != nil {
		return nil, wrap(op, err)
	}
	return m, nil
}

// ListMembershipsExpiringBetween возвращает членства с окончанием в (from, to],
// если у владельца нет членства, действующего дольше to.
func (s *Storage) ListMembershipsExpiringBetween(ctx context.Context, from, to time.Time) ([]*models.ExpiringMembership, error) {
	const op = "storage.ListMembershipsExpiringBetween"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT m.id, u.id, u.username, u.email, m.plan, m.expires_at
			  FROM active_memberships m
			  JOIN users u ON u.id = m.user_id
			  WHERE m.expires_at > $1 AND m.expires_at <= $2
			    AND NOT EXISTS (
			        SELECT 1 FROM active_memberships later
			        WHERE later.user_id = m.user_id AND later.expires_at > $2
			    )
			  ORDER BY m.id`
	rows, err := s.DB.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.ExpiringMembership
	for rows.Next() {
		var e models.ExpiringMembership
		if err = rows.Scan(&e.MembershipID, &e.UserID, &e.Username, &e.Email, &e.Plan, &e.ExpiresAt); err != nil {
			return nil, wrap(op, err)
		}
		result = append(result, &e)
	}
	if err = rows.Err(); err != nil {
		return nil, wrap(op, err)
	}
	return result, nil
}
