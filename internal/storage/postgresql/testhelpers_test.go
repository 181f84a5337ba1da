package postgresql

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sohagq3024/my-secret-web-2.0/internal/migrations"
	"github.com/sohagq3024/my-secret-web-2.0/internal/models"
)

// setupTestDatabase поднимает PostgreSQL в контейнере и применяет миграции.
func setupTestDatabase(t *testing.T) *Storage {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err, "failed to start container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	root, err := filepath.Abs("../../..")
	require.NoError(t, err)
	require.NoError(t, migrations.Run(s.DB, filepath.Join(root, "migrations")))
	require.NoError(t, s.CheckDatabaseReady(ctx))
	return s
}

// TestDataFactory создаёт тестовые записи.
type TestDataFactory struct {
	storage *Storage
}

func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

func (f *TestDataFactory) CreateUser(t *testing.T, username, email string) int {
	t.Helper()
	id, err := f.storage.CreateUser(context.Background(), models.User{
		Username:     username,
		PasswordHash: "hashedpassword",
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		Role:         models.RoleUser,
	})
	require.NoError(t, err)
	return id
}

func (f *TestDataFactory) CreateRequest(t *testing.T, userID int, plan string) *models.MembershipRequest {
	t.Helper()
	req, err := f.storage.CreateMembershipRequest(context.Background(), models.MembershipRequest{
		UserID:        userID,
		Plan:          plan,
		Price:         "20.00",
		PaymentMethod: "card",
	})
	require.NoError(t, err)
	return req
}

// CountActiveMemberships возвращает количество членств пользователя.
func (f *TestDataFactory) CountActiveMemberships(t *testing.T, userID int) int {
	t.Helper()
	var count int
	err := f.storage.DB.QueryRow("SELECT COUNT(*) FROM active_memberships WHERE user_id = $1", userID).Scan(&count)
	require.NoError(t, err)
	return count
}
