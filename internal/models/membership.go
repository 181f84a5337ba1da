package models

import "time"

// Статусы заявки на членство.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// MembershipRequest: заявка пользователя на покупку доступа.
// Статус меняется ровно один раз: из pending в approved или rejected.
type MembershipRequest struct {
	ID            int        `json:"id"`
	UserID        int        `json:"userId"`
	Plan          string     `json:"plan"`
	Price         string     `json:"price"`
	PaymentMethod string     `json:"paymentMethod"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	ApprovedAt    *time.Time `json:"approvedAt"`
}

// MembershipRequestWithUser: заявка вместе с сокращённым профилем владельца.
// User равен nil, если пользователь не найден.
type MembershipRequestWithUser struct {
	MembershipRequest
	User *UserSummary `json:"user"`
}

// ActiveMembership: оплаченный доступ с датой окончания.
// Действует, пока ExpiresAt строго позже текущего времени.
type ActiveMembership struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Plan      string    `json:"plan"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsValidAt сообщает, действует ли членство в момент now.
func (m *ActiveMembership) IsValidAt(now time.Time) bool {
	return m.ExpiresAt.After(now)
}

// ExpiringMembership: членство, которое скоро истечёт, с контактами владельца.
type ExpiringMembership struct {
	MembershipID int       `json:"membershipId"`
	UserID       int       `json:"userId"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Plan         string    `json:"plan"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// MembershipRequestInput: данные новой заявки из JSON-запроса.
type MembershipRequestInput struct {
	UserID        int    `json:"userId" validate:"required,gt=0"`
	Plan          string `json:"plan" validate:"required,oneof=3-days 15-days 30-days"`
	Price         string `json:"price" validate:"required,numeric"`
	PaymentMethod string `json:"paymentMethod" validate:"required"`
}

// StatusUpdate: целевой статус заявки.
type StatusUpdate struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}
