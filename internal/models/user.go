// Package models содержит доменные структуры сайта: пользователей, заявки на членство,
// активные членства и записи каталога, а также DTO входящих запросов с правилами валидации.
package models

import "time"

const (
	// RoleUser: роль, назначаемая при регистрации.
	RoleUser = "user"
	// RoleAdmin: роль администратора, создаётся только при наполнении.
	RoleAdmin = "admin"
)

// User представляет зарегистрированного пользователя системы.
type User struct {
	ID            int       `json:"id"`
	Username      string    `json:"username"`
	PasswordHash  string    `json:"-"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	DateOfBirth   string    `json:"dateOfBirth"`
	ContactNumber string    `json:"contactNumber"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PublicUser: профиль пользователя, который можно отдавать клиенту.
type PublicUser struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// UserSummary: сокращённый профиль для списка заявок.
type UserSummary struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Public возвращает профиль без пароля.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
	}
}

// Summary возвращает сокращённый профиль.
func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

// RegisterRequest используется для приёма данных регистрации из JSON-запроса.
// Роль не принимается от клиента.
type RegisterRequest struct {
	Username      string `json:"username" validate:"required,max=100"`
	Password      string `json:"password" validate:"required,min=6,max=72"`
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	DateOfBirth   string `json:"dateOfBirth" validate:"required"`
	ContactNumber string `json:"contactNumber" validate:"required"`
}

// LoginRequest: учётные данные для входа. Username может содержать и email.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
