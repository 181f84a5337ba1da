// Package seed наполняет пустое хранилище: создаёт администратора и демонстрационный каталог.
// Повторный запуск ничего не меняет.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/password"
	"github.com/sohagq3024/my-secret-web-2.0/internal/models"
	"github.com/sohagq3024/my-secret-web-2.0/internal/storage"
)

// ErrNoAdminCredentials: учётные данные администратора не заданы.
var ErrNoAdminCredentials = errors.New("admin credentials are not set")

// UserRepository описывает хранилище пользователей.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (int, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// Catalog описывает каталог, в который добавляются демонстрационные записи.
type Catalog interface {
	ListCelebrities(ctx context.Context) ([]*models.Celebrity, error)
	CreateCelebrity(ctx context.Context, in models.CelebrityInput) (*models.Celebrity, error)
	ListAlbums(ctx context.Context, featuredOnly bool) ([]*models.Album, error)
	CreateAlbum(ctx context.Context, in models.AlbumInput) (*models.Album, error)
	ListVideos(ctx context.Context, featuredOnly bool) ([]*models.Video, error)
	CreateVideo(ctx context.Context, in models.VideoInput) (*models.Video, error)
	ListAllSlideshowImages(ctx context.Context) ([]*models.SlideshowImage, error)
	CreateSlideshowImage(ctx context.Context, in models.SlideshowInput) (*models.SlideshowImage, error)
}

// AdminCredentials: учётные данные администратора из конфигурации.
type AdminCredentials struct {
	Username string
	Password string
	Email    string
}

// Report: сколько записей создано за запуск.
type Report struct {
	AdminCreated bool
	Celebrities  int
	Albums       int
	Videos       int
	Slides       int
}

// Seeder выполняет наполнение.
type Seeder struct {
	users   UserRepository
	catalog Catalog
	log     *slog.Logger
}

// New создает новый экземпляр Seeder.
func New(users UserRepository, catalog Catalog, log *slog.Logger) *Seeder {
	return &Seeder{users: users, catalog: catalog, log: log}
}

// Run создаёт администратора, если его нет, и добавляет демонстрационные записи
// в те виды каталога, которые пусты.
func (s *Seeder) Run(ctx context.Context, admin AdminCredentials) (*Report, error) {
	const op = "seed.Run"
	if admin.Username == "" || admin.Password == "" || admin.Email == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrNoAdminCredentials)
	}

	report := &Report{}
	created, err := s.ensureAdmin(ctx, admin)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	report.AdminCreated = created

	if report.Celebrities, err = s.seedCelebrities(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if report.Albums, err = s.seedAlbums(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if report.Videos, err = s.seedVideos(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if report.Slides, err = s.seedSlideshow(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("seed finished",
		slog.Bool("admin_created", report.AdminCreated),
		slog.Int("celebrities", report.Celebrities),
		slog.Int("albums", report.Albums),
		slog.Int("videos", report.Videos),
		slog.Int("slides", report.Slides),
	)
	return report, nil
}

func (s *Seeder) ensureAdmin(ctx context.Context, admin AdminCredentials) (bool, error) {
	_, err := s.users.GetUserByUsername(ctx, admin.Username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return false, err
	}

	hash, err := password.GetHash(admin.Password)
	if err != nil {
		return false, err
	}
	_, err = s.users.CreateUser(ctx, models.User{
		Username:      admin.Username,
		PasswordHash:  hash,
		FirstName:     "Admin",
		LastName:      "User",
		Email:         admin.Email,
		DateOfBirth:   "1990-01-01",
		ContactNumber: "+1234567890",
		Role:          models.RoleAdmin,
	})
	if errors.Is(err, storage.ErrAlreadyExists) {
		return false, fmt.Errorf("admin email %s belongs to another user: %w", admin.Email, err)
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Seeder) seedCelebrities(ctx context.Context) (int, error) {
	existing, err := s.catalog.ListCelebrities(ctx)
	if err != nil || len(existing) > 0 {
		return 0, err
	}
	for _, in := range sampleCelebrities() {
		if _, err := s.catalog.CreateCelebrity(ctx, in); err != nil {
			return 0, err
		}
	}
	return len(sampleCelebrities()), nil
}

func (s *Seeder) seedAlbums(ctx context.Context) (int, error) {
	existing, err := s.catalog.ListAlbums(ctx, false)
	if err != nil || len(existing) > 0 {
		return 0, err
	}
	for _, in := range sampleAlbums {
		if _, err := s.catalog.CreateAlbum(ctx, in); err != nil {
			return 0, err
		}
	}
	return len(sampleAlbums), nil
}

func (s *Seeder) seedVideos(ctx context.Context) (int, error) {
	existing, err := s.catalog.ListVideos(ctx, false)
	if err != nil || len(existing) > 0 {
		return 0, err
	}
	for _, in := range sampleVideos() {
		if _, err := s.catalog.CreateVideo(ctx, in); err != nil {
			return 0, err
		}
	}
	return len(sampleVideos()), nil
}

func (s *Seeder) seedSlideshow(ctx context.Context) (int, error) {
	existing, err := s.catalog.ListAllSlideshowImages(ctx)
	if err != nil || len(existing) > 0 {
		return 0, err
	}
	for _, in := range sampleSlideshow() {
		if _, err := s.catalog.CreateSlideshowImage(ctx, in); err != nil {
			return 0, err
		}
	}
	return len(sampleSlideshow()), nil
}
