package gallery

import (
	"time"

	"photosite/internal/domain"
)

// SamplePhotos is the built-in set the public views substitute when the
// photo collection is empty or the backend is unconfigured, so the site
// never renders visually empty. Purely presentational: the samples are
// never written into the store.
func SamplePhotos() []domain.Photo {
	now := time.Now().UTC()
	return []domain.Photo{
		{ID: "sample-1", Title: "Beautiful Wedding Ceremony", Category: "wedding", ImageURL: "https://images.unsplash.com/photo-1519741497674-611481863552?w=800", CreatedAt: now},
		{ID: "sample-2", Title: "Elegant Bride Portrait", Category: "wedding", ImageURL: "https://images.unsplash.com/photo-1465495976277-4387d4b0b4c6?w=800", CreatedAt: now},
		{ID: "sample-3", Title: "Couple First Dance", Category: "wedding", ImageURL: "https://images.unsplash.com/photo-1511285560929-80b456fea0bc?w=800", CreatedAt: now},
		{ID: "sample-4", Title: "Professional Headshot", Category: "portrait", ImageURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=800", CreatedAt: now},
		{ID: "sample-5", Title: "Family Portrait Session", Category: "portrait", ImageURL: "https://images.unsplash.com/photo-1511895426328-dc8714191300?w=800", CreatedAt: now},
		{ID: "sample-6", Title: "Senior Portrait", Category: "portrait", ImageURL: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=800", CreatedAt: now},
		{ID: "sample-7", Title: "Corporate Event Coverage", Category: "event", ImageURL: "https://images.unsplash.com/photo-1505236858219-8359eb29e329?w=800", CreatedAt: now},
		{ID: "sample-8", Title: "Birthday Celebration", Category: "event", ImageURL: "https://images.unsplash.com/photo-1530103862676-de8c9debad1d?w=800", CreatedAt: now},
		{ID: "sample-9", Title: "Conference Photography", Category: "event", ImageURL: "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=800", CreatedAt: now},
		{ID: "sample-10", Title: "Studio Fashion Shoot", Category: "studio", ImageURL: "https://images.unsplash.com/photo-1492681290082-e932832941e6?w=800", CreatedAt: now},
		{ID: "sample-11", Title: "Product Photography", Category: "studio", ImageURL: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=800", CreatedAt: now},
		{ID: "sample-12", Title: "Beauty Portrait", Category: "studio", ImageURL: "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=800", CreatedAt: now},
	}
}
