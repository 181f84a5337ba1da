package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/sohagq3024/my-secret-web-2.0/internal/models"
	"github.com/sohagq3024/my-secret-web-2.0/internal/storage"
)

// CreateCelebrity сохраняет знаменитость.
func (s *Storage) CreateCelebrity(ctx context.Context, c models.Celebrity) (*models.Celebrity, error) {
	const op = "storage.memory.CreateCelebrity"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextID("celebrities")
	c.CreatedAt = s.now()
	s.celebrities[c.ID] = c
	return &c, nil
}

// GetCelebrity возвращает знаменитость по ID.
func (s *Storage) GetCelebrity(ctx context.Context, id int) (*models.Celebrity, error) {
	const op = "storage.memory.GetCelebrity"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.celebrities[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return &c, nil
}

// ListCelebrities возвращает всех знаменитостей по возрастанию ID.
func (s *Storage) ListCelebrities(ctx context.Context) ([]*models.Celebrity, error) {
	const op = "storage.memory.ListCelebrities"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Celebrity, 0, len(s.celebrities))
	for _, c := range s.celebrities {
		c := c
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// CreateAlbum сохраняет альбом.
func (s *Storage) CreateAlbum(ctx context.Context, a models.Album) (*models.Album, error) {
	const op = "storage.memory.CreateAlbum"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = s.nextID("albums")
	a.CreatedAt = s.now()
	s.albums[a.ID] = a
	return &a, nil
}

// GetAlbum возвращает альбом по ID.
func (s *Storage) GetAlbum(ctx context.Context, id int) (*models.Album, error) {
	const op = "storage.memory.GetAlbum"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.albums[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return &a, nil
}

// ListAlbums возвращает альбомы, при featuredOnly только избранные.
func (s *Storage) ListAlbums(ctx context.Context, featuredOnly bool) ([]*models.Album, error) {
	const op = "storage.memory.ListAlbums"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Album, 0, len(s.albums))
	for _, a := range s.albums {
		if featuredOnly && !a.IsFeatured {
			continue
		}
		a := a
		result = append(result, &a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// CreateVideo сохраняет видео.
func (s *Storage) CreateVideo(ctx context.Context, v models.Video) (*models.Video, error) {
	const op = "storage.memory.CreateVideo"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	v.ID = s.nextID("videos")
	v.CreatedAt = s.now()
	s.videos[v.ID] = v
	return &v, nil
}

// GetVideo возвращает видео по ID.
func (s *Storage) GetVideo(ctx context.Context, id int) (*models.Video, error) {
	const op = "storage.memory.GetVideo"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.videos[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return &v, nil
}

// ListVideos возвращает видео, при featuredOnly только избранные.
func (s *Storage) ListVideos(ctx context.Context, featuredOnly bool) ([]*models.Video, error) {
	const op = "storage.memory.ListVideos"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Video, 0, len(s.videos))
	for _, v := range s.videos {
		if featuredOnly && !v.IsFeatured {
			continue
		}
		v := v
		result = append(result, &v)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// CreateSlideshowImage сохраняет баннер слайд-шоу.
func (s *Storage) CreateSlideshowImage(ctx context.Context, img models.SlideshowImage) (*models.SlideshowImage, error) {
	const op = "storage.memory.CreateSlideshowImage"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	img.ID = s.nextID("slideshow_images")
	img.CreatedAt = s.now()
	s.slides[img.ID] = img
	return &img, nil
}

// ListSlideshowImages возвращает баннеры. При activeOnly только активные, по возрастанию order.
func (s *Storage) ListSlideshowImages(ctx context.Context, activeOnly bool) ([]*models.SlideshowImage, error) {
	const op = "storage.memory.ListSlideshowImages"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.SlideshowImage, 0, len(s.slides))
	for _, img := range s.slides {
		if activeOnly && !img.IsActive {
			continue
		}
		img := img
		result = append(result, &img)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}
