// Package password реализует функции для безопасного хеширования и проверки паролей.
//
// GetHash создает bcrypt-хеш пароля для безопасного хранения.
// CompareHash сравнивает bcrypt-хеш с введённым паролем.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrMismatch возвращается, если пароль не соответствует хешу.
	ErrMismatch = errors.New("password does not match")
	// ErrTooLong возвращается, если пароль длиннее MaxLength байт.
	ErrTooLong = errors.New("password is too long")
)

// MaxLength: максимальная длина пароля в байтах, которую принимает bcrypt.
const MaxLength = 72

// GetHash принимает пароль пользователя и возвращает его bcrypt‑хэш со стандартной стоимостью.
func GetHash(password string) (string, error) {
	return GetHashWithCost(password, bcrypt.DefaultCost)
}

// GetHashWithCost возвращает bcrypt‑хэш с заданной стоимостью.
// Стоимость вне допустимого диапазона заменяется стандартной.
func GetHashWithCost(password string, cost int) (string, error) {
	const op = "password.GetHash"
	if len(password) > MaxLength {
		return "", fmt.Errorf("%s: %w", op, ErrTooLong)
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashedPassword), nil
}

// CompareHash сравнивает bcrypt‑хэш с введённым паролем.
//
// Возвращает nil, если пароль соответствует хэшу, ErrMismatch при несовпадении
// и обёрнутую ошибку bcrypt, если хеш повреждён.
func CompareHash(originalHash, externalPassword string) error {
	const op = "password.CompareHash"
	err := bcrypt.CompareHashAndPassword([]byte(originalHash), []byte(externalPassword))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return fmt.Errorf("%s: %w", op, ErrMismatch)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
