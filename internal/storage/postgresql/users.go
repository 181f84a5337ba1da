package postgresql

import (
	"context"

	"github.com/sohagq3024/my-secret-web-2.0/internal/models"
)

const userColumns = `id, username, password_hash, first_name, last_name, email,
	date_of_birth, contact_number, role, created_at`

func scanUser(row scanner) (*models.User, error) {
	u := &models.User{}
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.Email, &u.DateOfBirth, &u.ContactNumber, &u.Role, &u.CreatedAt); err != nil {
		return nil, err
	}
	return u, nil
}

// CreateUser сохраняет нового пользователя в базу данных и возвращает его ID.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (int, error) {
	const op = "storage.CreateUser"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}

	var id int
	query := `INSERT INTO users (username, password_hash, first_name, last_name, email,
			      date_of_birth, contact_number, role)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Username, user.PasswordHash, user.FirstName, user.LastName, user.Email,
		user.DateOfBirth, user.ContactNumber, user.Role).Scan(&id); err != nil {
		return 0, wrap(op, err)
	}
	return id, nil
}

// GetUser возвращает пользователя по ID.
func (s *Storage) GetUser(ctx context.Context, id int) (*models.User, error) {
	const op = "storage.GetUser"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	u, err := scanUser(s.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, wrap(op, err)
	}
	return u, nil
}

// GetUserByUsername возвращает пользователя по его username.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.GetUserByUsername"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	u, err := scanUser(s.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if err != nil {
		return nil, wrap(op, err)
	}
	return u, nil
}

// GetUserByEmail возвращает пользователя по email.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	u, err := scanUser(s.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		return nil, wrap(op, err)
	}
	return u, nil
}
