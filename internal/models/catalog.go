package models

import "time"

// Celebrity: профиль знаменитости.
type Celebrity struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Profession  string    `json:"profession"`
	ImageURL    string    `json:"imageUrl"`
	Description *string   `json:"description"`
	IsFree      bool      `json:"isFree"`
	Price       *string   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Album: фотоальбом.
type Album struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Price       string    `json:"price"`
	ImageCount  int       `json:"imageCount"`
	IsFeatured  bool      `json:"isFeatured"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Video: видеоролик.
type Video struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	VideoURL     string    `json:"videoUrl"`
	Price        string    `json:"price"`
	Duration     *string   `json:"duration"`
	IsFeatured   bool      `json:"isFeatured"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SlideshowImage: баннер слайд-шоу на главной странице.
type SlideshowImage struct {
	ID        int       `json:"id"`
	ImageURL  string    `json:"imageUrl"`
	Title     string    `json:"title"`
	Subtitle  *string   `json:"subtitle"`
	Order     int       `json:"order"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// CelebrityInput: данные новой знаменитости.
type CelebrityInput struct {
	Name        string  `json:"name" validate:"required"`
	Profession  string  `json:"profession" validate:"required"`
	ImageURL    string  `json:"imageUrl" validate:"required"`
	Description *string `json:"description"`
	IsFree      bool    `json:"isFree"`
	Price       *string `json:"price" validate:"omitempty,numeric"`
}

// AlbumInput: данные нового альбома.
type AlbumInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	ImageURL    string `json:"imageUrl" validate:"required"`
	Price       string `json:"price" validate:"required,numeric"`
	ImageCount  int    `json:"imageCount" validate:"gte=0"`
	IsFeatured  bool   `json:"isFeatured"`
}

// VideoInput: данные нового видео.
type VideoInput struct {
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	ThumbnailURL string  `json:"thumbnailUrl" validate:"required"`
	VideoURL     string  `json:"videoUrl" validate:"required"`
	Price        string  `json:"price" validate:"required,numeric"`
	Duration     *string `json:"duration"`
	IsFeatured   bool    `json:"isFeatured"`
}

// SlideshowInput: данные нового баннера. IsActive по умолчанию true.
type SlideshowInput struct {
	ImageURL string  `json:"imageUrl" validate:"required"`
	Title    string  `json:"title" validate:"required"`
	Subtitle *string `json:"subtitle"`
	Order    int     `json:"order" validate:"gte=0"`
	IsActive *bool   `json:"isActive"`
}
