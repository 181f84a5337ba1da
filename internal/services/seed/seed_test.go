package seed_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sohagq3024/my-secret-web-2.0/internal/cache"
	"github.com/sohagq3024/my-secret-web-2.0/internal/lib/password"
	"github.com/sohagq3024/my-secret-web-2.0/internal/metrics"
	"github.com/sohagq3024/my-secret-web-2.0/internal/models"
	"github.com/sohagq3024/my-secret-web-2.0/internal/services/catalog"
	"github.com/sohagq3024/my-secret-web-2.0/internal/services/seed"
	"github.com/sohagq3024/my-secret-web-2.0/internal/storage/memory"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var admin = seed.AdminCredentials{
	Username: "admin",
	Password: "change-me",
	Email:    "admin@example.com",
}

func newSeeder() (*seed.Seeder, *memory.Storage, *catalog.Service) {
	store := memory.New()
	cat := catalog.New(store, cache.NewMemory(time.Minute), newNoopLogger(), metrics.NewNoop())
	return seed.New(store, cat, newNoopLogger()), store, cat
}

func TestSeeder_Run(t *testing.T) {
	seeder, store, cat := newSeeder()
	ctx := context.Background()

	report, err := seeder.Run(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, &seed.Report{AdminCreated: true, Celebrities: 4, Albums: 3, Videos: 3, Slides: 3}, report)

	u, err := store.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, u.Role)
	assert.NotEqual(t, "change-me", u.PasswordHash)
	require.NoError(t, password.CompareHash(u.PasswordHash, "change-me"))

	celebs, err := cat.ListCelebrities(ctx)
	require.NoError(t, err)
	require.Len(t, celebs, 4)
	assert.Equal(t, "Sarah Johnson", celebs[0].Name)
	assert.Equal(t, "Model & Influencer", celebs[0].Profession)

	featured, err := cat.ListAlbums(ctx, true)
	require.NoError(t, err)
	assert.Len(t, featured, 3)

	slides, err := cat.ListSlideshow(ctx)
	require.NoError(t, err)
	require.Len(t, slides, 3)
	assert.Equal(t, "Premium Content Awaits", slides[0].Title)
}

func TestSeeder_RunIsIdempotent(t *testing.T) {
	seeder, _, cat := newSeeder()
	ctx := context.Background()

	_, err := seeder.Run(ctx, admin)
	require.NoError(t, err)

	report, err := seeder.Run(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, &seed.Report{}, report)

	videos, err := cat.ListVideos(ctx, false)
	require.NoError(t, err)
	assert.Len(t, videos, 3)
}

func TestSeeder_SkipsNonEmptyKinds(t *testing.T) {
	seeder, _, cat := newSeeder()
	ctx := context.Background()

	_, err := cat.CreateAlbum(ctx, models.AlbumInput{Title: "Own", Description: "d", ImageURL: "u", Price: "1.00"})
	require.NoError(t, err)

	report, err := seeder.Run(ctx, admin)
	require.NoError(t, err)
	assert.Zero(t, report.Albums)
	assert.Equal(t, 4, report.Celebrities)
}

func TestSeeder_InactiveSlidesCountAsExisting(t *testing.T) {
	seeder, _, cat := newSeeder()
	ctx := context.Background()

	inactive := false
	_, err := cat.CreateSlideshowImage(ctx, models.SlideshowInput{ImageURL: "u", Title: "Hidden", Order: 1, IsActive: &inactive})
	require.NoError(t, err)

	report, err := seeder.Run(ctx, admin)
	require.NoError(t, err)
	assert.Zero(t, report.Slides)

	all, err := cat.ListAllSlideshowImages(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	report, err = seeder.Run(ctx, admin)
	require.NoError(t, err)
	assert.Zero(t, report.Slides)
}

func TestSeeder_RequiresCredentials(t *testing.T) {
	seeder, _, _ := newSeeder()

	_, err := seeder.Run(context.Background(), seed.AdminCredentials{Username: "admin"})
	require.ErrorIs(t, err, seed.ErrNoAdminCredentials)
}
