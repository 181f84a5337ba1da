// Package auth содержит регистрацию и вход пользователей.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/jwt"
	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/password"
	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/sl"
	"github.com/sohagq3024/my-secret-web-2.0/internal/metrics"
	"github.com/sohagq3024/my-secret-web-2.0/internal/models"
	"github.com/sohagq3024/my-secret-web-2.0/internal/storage"
)

var (
	// ErrUsernameTaken: username уже занят.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrEmailTaken: email уже занят.
	ErrEmailTaken = errors.New("email already exists")
	// ErrUserExists: пользователь появился одновременно с регистрацией.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials: неверный логин или пароль. Причина не раскрывается.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPasswordTooLong: пароль длиннее 72 байт, bcrypt его не принимает.
	ErrPasswordTooLong = errors.New("password is too long")
)

// UserRepository описывает контракт для работы с пользователями в хранилище.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его ID.
	CreateUser(ctx context.Context, user models.User) (int, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// EntitlementChecker отвечает, есть ли у пользователя действующее членство.
type EntitlementChecker interface {
	Check(ctx context.Context, userID int) (*models.ActiveMembership, error)
}

// LoginResult: ответ на успешный вход.
type LoginResult struct {
	User               *models.PublicUser `json:"user"`
	HasValidMembership bool               `json:"hasValidMembership"`
	Token              string             `json:"token"`
}

// Service отвечает за регистрацию и вход.
type Service struct {
	users       UserRepository
	entitlement EntitlementChecker
	jwtMaker    jwt.Maker
	log         *slog.Logger
	metrics     *metrics.Registry
	hashCost    int
}

// Option настраивает Service.
type Option func(*Service)

// WithHashCost задаёт стоимость bcrypt.
func WithHashCost(cost int) Option {
	return func(s *Service) {
		s.hashCost = cost
	}
}

// New создает новый экземпляр Service.
func New(users UserRepository, entitlement EntitlementChecker, jwtMaker jwt.Maker,
	log *slog.Logger, m *metrics.Registry, opts ...Option) *Service {
	s := &Service{
		users:       users,
		entitlement: entitlement,
		jwtMaker:    jwtMaker,
		log:         log,
		metrics:     m,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register создает нового пользователя с ролью "user" и хешированным паролем.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*models.PublicUser, error) {
	const op = "auth.Register"

	if err := s.ensureAbsent(ctx, s.users.GetUserByUsername, req.Username, ErrUsernameTaken); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.ensureAbsent(ctx, s.users.GetUserByEmail, req.Email, ErrEmailTaken); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hashed, err := password.GetHashWithCost(req.Password, s.hashCost)
	if errors.Is(err, password.ErrTooLong) {
		return nil, fmt.Errorf("%s: %w", op, ErrPasswordTooLong)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user := models.User{
		Username:      req.Username,
		PasswordHash:  hashed,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		DateOfBirth:   req.DateOfBirth,
		ContactNumber: req.ContactNumber,
		Role:          models.RoleUser,
	}
	id, err := s.users.CreateUser(ctx, user)
	if errors.Is(err, storage.ErrAlreadyExists) {
		return nil, fmt.Errorf("%s: %w", op, ErrUserExists)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user.ID = id

	s.log.Info("user registered", slog.Int("user_id", id), slog.String("username", user.Username))
	return user.Public(), nil
}

func (s *Service) ensureAbsent(ctx context.Context,
	lookup func(context.Context, string) (*models.User, error), key string, taken error) error {
	_, err := lookup(ctx, key)
	switch {
	case err == nil:
		return taken
	case errors.Is(err, storage.ErrNotFound):
		return nil
	default:
		return err
	}
}

// Login ищет пользователя по username, затем по email, и проверяет пароль.
// Любая ошибка проверки возвращается как ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, identifier, rawPassword string) (*LoginResult, error) {
	const op = "auth.Login"

	user, err := s.findUser(ctx, identifier)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.metrics.LoginAttempts.WithLabelValues("failure").Inc()
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		s.metrics.LoginAttempts.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		if !errors.Is(err, password.ErrMismatch) {
			s.log.Warn("stored password hash is malformed", slog.Int("user_id", user.ID), sl.Err(err))
		}
		s.metrics.LoginAttempts.WithLabelValues("failure").Inc()
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	membership, err := s.entitlement.Check(ctx, user.ID)
	if err != nil {
		s.metrics.LoginAttempts.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.jwtMaker.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		s.metrics.LoginAttempts.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.LoginAttempts.WithLabelValues("success").Inc()
	return &LoginResult{
		User:               user.Public(),
		HasValidMembership: membership != nil,
		Token:              token,
	}, nil
}

func (s *Service) findUser(ctx context.Context, identifier string) (*models.User, error) {
	user, err := s.users.GetUserByUsername(ctx, identifier)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	return s.users.GetUserByEmail(ctx, identifier)
}
