package postgresql

import (
	"context"
	"database/sql"

	"github.com/sohagq3024/my-secret-web-2.0/internal/models"
)

const (
	celebrityColumns = `id, name, profession, image_url, description, is_free, price::text, created_at`
	albumColumns     = `id, title, description, image_url, price::text, image_count, is_featured, created_at`
	videoColumns     = `id, title, description, thumbnail_url, video_url, price::text, duration, is_featured, created_at`
	slideColumns     = `id, image_url, title, subtitle, "order", is_active, created_at`
)

func scanCelebrity(row scanner) (*models.Celebrity, error) {
	c := &models.Celebrity{}
	var description, price sql.NullString
	if err := row.Scan(&c.ID, &c.Name, &c.Profession, &c.ImageURL, &description,
		&c.IsFree, &price, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.Description = stringPtr(description)
	c.Price = stringPtr(price)
	return c, nil
}

func scanAlbum(row scanner) (*models.Album, error) {
	a := &models.Album{}
	if err := row.Scan(&a.ID, &a.Title, &a.Description, &a.ImageURL, &a.Price,
		&a.ImageCount, &a.IsFeatured, &a.CreatedAt); err != nil {
		return nil, err
	}
	return a, nil
}

func scanVideo(row scanner) (*models.Video, error) {
	v := &models.Video{}
	var duration sql.NullString
	if err := row.Scan(&v.ID, &v.Title, &v.Description, &v.ThumbnailURL, &v.VideoURL,
		&v.Price, &duration, &v.IsFeatured, &v.CreatedAt); err != nil {
		return nil, err
	}
	v.Duration = stringPtr(duration)
	return v, nil
}

func scanSlide(row scanner) (*models.SlideshowImage, error) {
	img := &models.SlideshowImage{}
	var subtitle sql.NullString
	if err := row.Scan(&img.ID, &img.ImageURL, &img.Title, &subtitle,
		&img.Order, &img.IsActive, &img.CreatedAt); err != nil {
		return nil, err
	}
	img.Subtitle = stringPtr(subtitle)
	return img, nil
}

// queryList выполняет запрос и сканирует все строки через scan.
func queryList[T any](ctx context.Context, db *sql.DB, op string, scan func(scanner) (*T, error),
	query string, args ...any) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, wrap(op, err)
		}
		result = append(result, item)
	}
	if err = rows.Err(); err != nil {
		return nil, wrap(op, err)
	}
	return result, nil
}

// CreateCelebrity сохраняет знаменитость.
func (s *Storage) CreateCelebrity(ctx context.Context, c models.Celebrity) (*models.Celebrity, error) {
	const op = "storage.CreateCelebrity"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `INSERT INTO celebrities (name, profession, image_url, description, is_free, price)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING ` + celebrityColumns
	created, err := scanCelebrity(s.DB.QueryRowContext(ctx, query,
		c.Name, c.Profession, c.ImageURL, nullString(c.Description), c.IsFree, nullString(c.Price)))
	if err != nil {
		return nil, wrap(op, err)
	}
	return created, nil
}

// GetCelebrity возвращает знаменитость по ID.
func (s *Storage) GetCelebrity(ctx context.Context, id int) (*models.Celebrity, error) {
	const op = "storage.GetCelebrity"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	c, err := scanCelebrity(s.DB.QueryRowContext(ctx,
		`SELECT `+celebrityColumns+` FROM celebrities WHERE id = $1`, id))
	if err != nil {
		return nil, wrap(op, err)
	}
	return c, nil
}

// ListCelebrities возвращает всех знаменитостей.
func (s *Storage) ListCelebrities(ctx context.Context) ([]*models.Celebrity, error) {
	const op = "storage.ListCelebrities"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}
	return queryList(ctx, s.DB, op, scanCelebrity,
		`SELECT `+celebrityColumns+` FROM celebrities ORDER BY id`)
}

// CreateAlbum сохраняет альбом.
func (s *Storage) CreateAlbum(ctx context.Context, a models.Album) (*models.Album, error) {
	const op = "storage.CreateAlbum"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `INSERT INTO albums (title, description, image_url, price, image_count, is_featured)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING ` + albumColumns
	created, err := scanAlbum(s.DB.QueryRowContext(ctx, query,
		a.Title, a.Description, a.ImageURL, a.Price, a.ImageCount, a.IsFeatured))
	if err != nil {
		return nil, wrap(op, err)
	}
	return created, nil
}

// GetAlbum возвращает альбом по ID.
func (s *Storage) GetAlbum(ctx context.Context, id int) (*models.Album, error) {
	const op = "storage.GetAlbum"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	a, err := scanAlbum(s.DB.QueryRowContext(ctx,
		`SELECT `+albumColumns+` FROM albums WHERE id = $1`, id))
	if err != nil {
		return nil, wrap(op, err)
	}
	return a, nil
}

// ListAlbums возвращает альбомы, при featuredOnly только избранные.
func (s *Storage) ListAlbums(ctx context.Context, featuredOnly bool) ([]*models.Album, error) {
	const op = "storage.ListAlbums"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}
	return queryList(ctx, s.DB, op, scanAlbum,
		`SELECT `+albumColumns+` FROM albums WHERE is_featured OR NOT $1 ORDER BY id`, featuredOnly)
}

// CreateVideo сохраняет видео.
func (s *Storage) CreateVideo(ctx context.Context, v models.Video) (*models.Video, error) {
	const op = "storage.CreateVideo"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `INSERT INTO videos (title, description, thumbnail_url, video_url, price, duration, is_featured)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + videoColumns
	created, err := scanVideo(s.DB.QueryRowContext(ctx, query,
		v.Title, v.Description, v.ThumbnailURL, v.VideoURL, v.Price, nullString(v.Duration), v.IsFeatured))
	if err != nil {
		return nil, wrap(op, err)
	}
	return created, nil
}

// GetVideo возвращает видео по ID.
func (s *Storage) GetVideo(ctx context.Context, id int) (*models.Video, error) {
	const op = "storage.GetVideo"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	v, err := scanVideo(s.DB.QueryRowContext(ctx,
		`SELECT `+videoColumns+` FROM videos WHERE id = $1`, id))
	if err != nil {
		return nil, wrap(op, err)
	}
	return v, nil
}

// ListVideos возвращает видео, при featuredOnly только избранные.
func (s *Storage) ListVideos(ctx context.Context, featuredOnly bool) ([]*models.Video, error) {
	const op = "storage.ListVideos"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}
	return queryList(ctx, s.DB, op, scanVideo,
		`SELECT `+videoColumns+` FROM videos WHERE is_featured OR NOT $1 ORDER BY id`, featuredOnly)
}

// CreateSlideshowImage сохраняет баннер слайд-шоу.
func (s *Storage) CreateSlideshowImage(ctx context.Context, img models.SlideshowImage) (*models.SlideshowImage, error) {
	const op = "storage.CreateSlideshowImage"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `INSERT INTO slideshow_images (image_url, title, subtitle, "order", is_active)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING ` + slideColumns
	created, err := scanSlide(s.DB.QueryRowContext(ctx, query,
		img.ImageURL, img.Title, nullString(img.Subtitle), img.Order, img.IsActive))
	if err != nil {
		return nil, wrap(op, err)
	}
	return created, nil
}

// ListSlideshowImages возвращает баннеры по возрастанию order, при activeOnly только активные.
func (s *Storage) ListSlideshowImages(ctx context.Context, activeOnly bool) ([]*models.SlideshowImage, error) {
	const op = "storage.ListSlideshowImages"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}
	return queryList(ctx, s.DB, op, scanSlide,
		`SELECT `+slideColumns+` FROM slideshow_images WHERE is_active OR NOT $1 ORDER BY "order", id`, activeOnly)
}
