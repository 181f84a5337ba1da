package seed

import "github.com/sohagq3024/my-secret-web-2.0/internal/models"

func strPtr(s string) *string { return &s }

func sampleCelebrities() []models.CelebrityInput {
	return []models.CelebrityInput{
		{
			Name:        "Sarah Johnson",
			Profession:  "Model & Influencer",
			ImageURL:    "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=400&h=400&fit=crop",
			Description: strPtr("Professional model and social media influencer"),
			Price:       strPtr("25.00"),
		},
		{
			Name:        "Emma Davis",
			Profession:  "Fashion Model",
			ImageURL:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop",
			Description: strPtr("International fashion model"),
			Price:       strPtr("30.00"),
		},
		{
			Name:        "Lisa Chen",
			Profession:  "Celebrity",
			ImageURL:    "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400&h=400&fit=crop",
			Description: strPtr("Celebrity and entertainment personality"),
			Price:       strPtr("35.00"),
		},
		{
			Name:        "Maya Rodriguez",
			Profession:  "Influencer",
			ImageURL:    "https://images.unsplash.com/photo-1494790108755-2616b612b77c?w=400&h=400&fit=crop",
			Description: strPtr("Social media influencer and content creator"),
			Price:       strPtr("20.00"),
		},
	}
}

var sampleAlbums = []models.AlbumInput{
	{
		Title:       "Glamour Collection",
		Description: "Exclusive high-fashion photography collection with 25+ premium images",
		ImageURL:    "https://images.unsplash.com/photo-1469334031218-e382a71b716b?w=600&h=400&fit=crop",
		Price:       "15.00",
		ImageCount:  25,
		IsFeatured:  true,
	},
	{
		Title:       "Portrait Masters",
		Description: "Professional portrait collection featuring top models and celebrities",
		ImageURL:    "https://images.unsplash.com/photo-1524504388940-b1c1722653e1?w=600&h=400&fit=crop",
		Price:       "20.00",
		ImageCount:  30,
		IsFeatured:  true,
	},
	{
		Title:       "Lifestyle Luxury",
		Description: "Premium lifestyle photography capturing authentic moments and beauty",
		ImageURL:    "https://images.unsplash.com/photo-1488716820095-cbe80883c496?w=600&h=400&fit=crop",
		Price:       "25.00",
		ImageCount:  35,
		IsFeatured:  true,
	},
}

func sampleVideos() []models.VideoInput {
	return []models.VideoInput{
		{
			Title:        "Behind the Scenes",
			Description:  "Exclusive behind-the-scenes footage from premium photo shoots",
			ThumbnailURL: "https://images.unsplash.com/photo-1598300042247-d088f8ab3a91?w=600&h=400&fit=crop",
			VideoURL:     "https://example.com/video1.mp4",
			Price:        "30.00",
			Duration:     strPtr("15:30"),
			IsFeatured:   true,
		},
		{
			Title:        "Studio Sessions",
			Description:  "Professional studio sessions with top models and celebrities",
			ThumbnailURL: "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=600&h=400&fit=crop",
			VideoURL:     "https://example.com/video2.mp4",
			Price:        "35.00",
			Duration:     strPtr("22:15"),
			IsFeatured:   true,
		},
		{
			Title:        "Fashion Shows",
			Description:  "Exclusive coverage of high-fashion runway shows and events",
			ThumbnailURL: "https://images.unsplash.com/photo-1469334031218-e382a71b716b?w=600&h=400&fit=crop",
			VideoURL:     "https://example.com/video3.mp4",
			Price:        "40.00",
			Duration:     strPtr("28:45"),
			IsFeatured:   true,
		},
	}
}

func sampleSlideshow() []models.SlideshowInput {
	return []models.SlideshowInput{
		{
			ImageURL: "https://images.unsplash.com/photo-1519501025264-65ba15a82390?w=1920&h=800&fit=crop",
			Title:    "Premium Content Awaits",
			Subtitle: strPtr("Exclusive access to high-quality digital content"),
			Order:    1,
		},
		{
			ImageURL: "https://images.unsplash.com/photo-1618221195710-dd6b41faaea6?w=1920&h=800&fit=crop",
			Title:    "Luxury Experience",
			Subtitle: strPtr("Discover premium content like never before"),
			Order:    2,
		},
		{
			ImageURL: "https://images.unsplash.com/photo-1551434678-e076c223a692?w=1920&h=800&fit=crop",
			Title:    "Digital Excellence",
			Subtitle: strPtr("Where technology meets premium content"),
			Order:    3,
		},
	}
}
