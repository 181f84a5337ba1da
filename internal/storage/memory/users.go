package memory

import (
	"context"
	"fmt"

	"github.com/sohagq3024/my-secret-web-2.0/internal/models"
	"github.com/sohagq3024/my-secret-web-2.0/internal/storage"
)

// CreateUser сохраняет пользователя и возвращает его ID.
// Username и email уникальны.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (int, error) {
	const op = "storage.memory.CreateUser"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}
	}

	user.ID = s.nextID("users")
	if user.CreatedAt.IsZero() {
		user.CreatedAt = s.now()
	}
	s.users[user.ID] = user
	return user.ID, nil
}

// GetUser возвращает пользователя по ID.
func (s *Storage) GetUser(ctx context.Context, id int) (*models.User, error) {
	const op = "storage.memory.GetUser"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return &u, nil
}

// GetUserByUsername возвращает пользователя по username.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.memory.GetUserByUsername"
	return s.findUser(ctx, op, func(u models.User) bool { return u.Username == username })
}

// GetUserByEmail возвращает пользователя по email.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.memory.GetUserByEmail"
	return s.findUser(ctx, op, func(u models.User) bool { return u.Email == email })
}

func (s *Storage) findUser(ctx context.Context, op string, match func(models.User) bool) (*models.User, error) {
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
}
