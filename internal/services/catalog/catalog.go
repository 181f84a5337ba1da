// Package catalog содержит чтение и создание записей каталога: знаменитостей,
// альбомов, видео и баннеров слайд-шоу. Списки кешируются.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/sanitize"
	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/sl"
	"github.com/sohagq3024/my-secret-web-2.0/internal/metrics"
	"github.com/sohagq3024/my-secret-web-2.0/internal/models"
	"github.com/sohagq3024/my-secret-web-2.0/internal/storage"
)

// Виды записей каталога.
const (
	KindCelebrities = "celebrities"
	KindAlbums      = "albums"
	KindVideos      = "videos"
	KindSlideshow   = "slideshow"
)

// ListTTL: время жизни закешированного списка.
const ListTTL = 10 * time.Minute

// ErrNotFound: записи с таким ID нет.
var ErrNotFound = errors.New("catalog item not found")

// Repository описывает хранилище каталога.
type Repository interface {
	CreateCelebrity(ctx context.Context, c models.Celebrity) (*models.Celebrity, error)
	GetCelebrity(ctx context.Context, id int) (*models.Celebrity, error)
	ListCelebrities(ctx context.Context) ([]*models.Celebrity, error)

	CreateAlbum(ctx context.Context, a models.Album) (*models.Album, error)
	GetAlbum(ctx context.Context, id int) (*models.Album, error)
	ListAlbums(ctx context.Context, featuredOnly bool) ([]*models.Album, error)

	CreateVideo(ctx context.Context, v models.Video) (*models.Video, error)
	GetVideo(ctx context.Context, id int) (*models.Video, error)
	ListVideos(ctx context.Context, featuredOnly bool) ([]*models.Video, error)

	CreateSlideshowImage(ctx context.Context, img models.SlideshowImage) (*models.SlideshowImage, error)
	ListSlideshowImages(ctx context.Context, activeOnly bool) ([]*models.SlideshowImage, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	// Invalidate удаляет значения из кеша по ключам.
	Invalidate(ctx context.Context, keys ...string) error
}

// Service реализует каталог с кешированием списков.
type Service struct {
	repo    Repository
	cache   Cache
	log     *slog.Logger
	metrics *metrics.Registry

	// generations растёт при каждой записи вида. Список, загруженный
	// до записи, в кеш не попадает.
	mu          sync.Mutex
	generations map[string]uint64
}

// New создает новый экземпляр Service.
func New(repo Repository, cache Cache, log *slog.Logger, m *metrics.Registry) *Service {
	return &Service{
		repo:    repo,
		cache:   cache,
		log:     log,
		metrics: m,

		generations: make(map[string]uint64),
	}
}

func (s *Service) generation(kind string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[kind]
}

// storeIfCurrent кладёт список в кеш, только если вид не менялся с поколения gen.
// Проверка и запись идут под тем же мьютексом, что и сброс в invalidate.
func (s *Service) storeIfCurrent(ctx context.Context, kind string, gen uint64, key string, items any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generations[kind] != gen {
		return false, nil
	}
	return true, s.cache.Set(ctx, key, items, ListTTL)
}

// CacheKey возвращает ключ кеша для списка вида kind с фильтром filter.
func CacheKey(kind, filter string) string {
	return "catalog:" + kind + ":" + filter
}

func filterName(featuredOnly bool) string {
	if featuredOnly {
		return "featured"
	}
	return "all"
}

// cachedList читает список из кеша, при промахе загружает из хранилища и кладёт в кеш.
// Ошибки кеша не прерывают запрос.
func cachedList[T any](ctx context.Context, s *Service, kind, filter string,
	load func(context.Context) ([]*T, error)) ([]*T, error) {
	key := CacheKey(kind, filter)
	log := s.log.With(slog.String("cache_key", key))

	var cached []*T
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Warn("failed to read catalog cache", sl.Err(err))
	}
	if found {
		s.metrics.CatalogCacheLookups.WithLabelValues(kind, "hit").Inc()
		return cached, nil
	}
	s.metrics.CatalogCacheLookups.WithLabelValues(kind, "miss").Inc()

	gen := s.generation(kind)
	items, err := load(ctx)
	if err != nil {
		return nil, err
	}
	stored, err := s.storeIfCurrent(ctx, kind, gen, key, items)
	if err != nil {
		log.Warn("failed to write catalog cache", sl.Err(err))
	}
	if !stored {
		log.Debug("catalog changed during load, result not cached")
	}
	return items, nil
}

func (s *Service) invalidate(ctx context.Context, kind string, filters ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[kind]++

	keys := make([]string, 0, len(filters))
	for _, f := range filters {
		keys = append(keys, CacheKey(kind, f))
	}
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		s.log.Warn("failed to invalidate catalog cache", slog.String("kind", kind), sl.Err(err))
	}
}

func notFound(op string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// ListCelebrities возвращает всех знаменитостей.
func (s *Service) ListCelebrities(ctx context.Context) ([]*models.Celebrity, error) {
	const op = "catalog.ListCelebrities"
	list, err := cachedList(ctx, s, KindCelebrities, "all", s.repo.ListCelebrities)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

// GetCelebrity возвращает знаменитость по ID.
func (s *Service) GetCelebrity(ctx context.Context, id int) (*models.Celebrity, error) {
	c, err := s.repo.GetCelebrity(ctx, id)
	if err != nil {
		return nil, notFound("catalog.GetCelebrity", err)
	}
	return c, nil
}

// CreateCelebrity сохраняет знаменитость и сбрасывает кеш списка.
func (s *Service) CreateCelebrity(ctx context.Context, in models.CelebrityInput) (*models.Celebrity, error) {
	const op = "catalog.CreateCelebrity"
	c, err := s.repo.CreateCelebrity(ctx, models.Celebrity{
		Name:        sanitize.Text(in.Name),
		Profession:  sanitize.Text(in.Profession),
		ImageURL:    in.ImageURL,
		Description: sanitize.HTMLPtr(in.Description),
		IsFree:      in.IsFree,
		Price:       in.Price,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx, KindCelebrities, "all")
	return c, nil
}

// ListAlbums возвращает альбомы, при featuredOnly только избранные.
func (s *Service) ListAlbums(ctx context.Context, featuredOnly bool) ([]*models.Album, error) {
	const op = "catalog.ListAlbums"
	list, err := cachedList(ctx, s, KindAlbums, filterName(featuredOnly),
		func(ctx context.Context) ([]*models.Album, error) {
			return s.repo.ListAlbums(ctx, featuredOnly)
		})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

// GetAlbum возвращает альбом по ID.
func (s *Service) GetAlbum(ctx context.Context, id int) (*models.Album, error) {
	a, err := s.repo.GetAlbum(ctx, id)
	if err != nil {
		return nil, notFound("catalog.GetAlbum", err)
	}
	return a, nil
}

// CreateAlbum сохраняет альбом и сбрасывает кеш списков.
func (s *Service) CreateAlbum(ctx context.Context, in models.AlbumInput) (*models.Album, error) {
	const op = "catalog.CreateAlbum"
	a, err := s.repo.CreateAlbum(ctx, models.Album{
		Title:       sanitize.Text(in.Title),
		Description: sanitize.HTML(in.Description),
		ImageURL:    in.ImageURL,
		Price:       in.Price,
		ImageCount:  in.ImageCount,
		IsFeatured:  in.IsFeatured,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx, KindAlbums, "all", "featured")
	return a, nil
}

// ListVideos возвращает видео, при featuredOnly только избранные.
func (s *Service) ListVideos(ctx context.Context, featuredOnly bool) ([]*models.Video, error) {
	const op = "catalog.ListVideos"
	list, err := cachedList(ctx, s, KindVideos, filterName(featuredOnly),
		func(ctx context.Context) ([]*models.Video, error) {
			return s.repo.ListVideos(ctx, featuredOnly)
		})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

// GetVideo возвращает видео по ID.
func (s *Service) GetVideo(ctx context.Context, id int) (*models.Video, error) {
	v, err := s.repo.GetVideo(ctx, id)
	if err != nil {
		return nil, notFound("catalog.GetVideo", err)
	}
	return v, nil
}

// CreateVideo сохраняет видео и сбрасывает кеш списков.
func (s *Service) CreateVideo(ctx context.Context, in models.VideoInput) (*models.Video, error) {
	const op = "catalog.CreateVideo"
	v, err := s.repo.CreateVideo(ctx, models.Video{
		Title:        sanitize.Text(in.Title),
		Description:  sanitize.HTML(in.Description),
		ThumbnailURL: in.ThumbnailURL,
		VideoURL:     in.VideoURL,
		Price:        in.Price,
		Duration:     sanitize.TextPtr(in.Duration),
		IsFeatured:   in.IsFeatured,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx, KindVideos, "all", "featured")
	return v, nil
}

// ListSlideshow возвращает активные баннеры по возрастанию order.
func (s *Service) ListSlideshow(ctx context.Context) ([]*models.SlideshowImage, error) {
	const op = "catalog.ListSlideshow"
	list, err := cachedList(ctx, s, KindSlideshow, "active",
		func(ctx context.Context) ([]*models.SlideshowImage, error) {
			return s.repo.ListSlideshowImages(ctx, true)
		})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

// ListAllSlideshowImages возвращает все баннеры, включая неактивные. Не кешируется.
func (s *Service) ListAllSlideshowImages(ctx context.Context) ([]*models.SlideshowImage, error) {
	const op = "catalog.ListAllSlideshowImages"
	list, err := s.repo.ListSlideshowImages(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

// CreateSlideshowImage сохраняет баннер и сбрасывает кеш слайд-шоу.
func (s *Service) CreateSlideshowImage(ctx context.Context, in models.SlideshowInput) (*models.SlideshowImage, error) {
	const op = "catalog.CreateSlideshowImage"
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	img, err := s.repo.CreateSlideshowImage(ctx, models.SlideshowImage{
		ImageURL: in.ImageURL,
		Title:    sanitize.Text(in.Title),
		Subtitle: sanitize.HTMLPtr(in.Subtitle),
		Order:    in.Order,
		IsActive: active,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx, KindSlideshow, "active")
	return img, nil
}
