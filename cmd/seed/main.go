package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"photosite/internal/config"
	"photosite/internal/database"
	"photosite/internal/domain"
	"photosite/internal/modules/gallery"
	"photosite/internal/store"
)

// Seeds the configured record store with the sample gallery, a few
// bookings across every status and a handful of approved comments, so a
// fresh install has something to show.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed: ", err)
	}

	ctx := context.Background()
	st := connect(ctx, cfg)

	log.Println("Seeding photos...")
	photoIDs := seedPhotos(ctx, st)

	log.Println("Seeding bookings...")
	seedBookings(ctx, st)

	log.Println("Seeding comments...")
	seedComments(ctx, st, photoIDs)

	log.Println("Done.")
}

func connect(ctx context.Context, cfg *config.Config) store.Store {
	if cfg.UseMongo() {
		db, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			log.Fatal("mongo connection failed: ", err)
		}
		return store.NewMongoStore(db)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}
	st, err := store.NewSQLStore(db)
	if err != nil {
		log.Fatal("store init failed: ", err)
	}
	return st
}

func seedPhotos(ctx context.Context, st store.Store) []string {
	ids := make([]string, 0, 12)
	for _, p := range gallery.SamplePhotos() {
		id, err := st.Add(ctx, store.CollectionPhotos, store.Record{
			"title":       p.Title,
			"category":    p.Category,
			"imageUrl":    p.ImageURL,
			"description": p.Description,
			"storagePath": "",
			"createdAt":   p.CreatedAt,
		})
		if err != nil {
			log.Fatal("seed photo failed: ", err)
		}
		ids = append(ids, id)
	}
	log.Printf("Created %d photos", len(ids))
	return ids
}

func seedBookings(ctx context.Context, st store.Store) {
	now := time.Now().UTC()
	bookings := []store.Record{
		{
			"name": "Asel Nurlanova", "phone": "7771234567", "email": "asel@mail.kz",
			"eventType": "Wedding", "date": now.AddDate(0, 1, 0).Format("2006-01-02"),
			"message": "Outdoor ceremony, around 80 guests",
			"status":  string(domain.BookingPending), "createdAt": now.Add(-48 * time.Hour),
		},
		{
			"name": "Bekzat Omarov", "phone": "7019876543", "email": "bekzat@gmail.com",
			"eventType": "Corporate Event", "date": now.AddDate(0, 0, 14).Format("2006-01-02"),
			"message": "",
			"status":  string(domain.BookingConfirmed), "createdAt": now.Add(-24 * time.Hour),
		},
		{
			"name": "Dina Serikova", "phone": "7075551212", "email": "dina@yandex.kz",
			"eventType": "Family Portrait", "date": now.AddDate(0, 0, 7).Format("2006-01-02"),
			"message": "Two kids, prefer morning light",
			"status":  string(domain.BookingCancelled), "createdAt": now.Add(-12 * time.Hour),
		},
	}

	for _, b := range bookings {
		if _, err := st.Add(ctx, store.CollectionBookings, b); err != nil {
			log.Fatal("seed booking failed: ", err)
		}
	}
	log.Printf("Created %d bookings", len(bookings))
}

func seedComments(ctx context.Context, st store.Store, photoIDs []string) {
	if len(photoIDs) == 0 {
		return
	}
	now := time.Now().UTC()
	comments := []store.Record{
		{
			"photoId": photoIDs[0], "name": "Asel", "email": "asel@mail.kz",
			"comment": "Absolutely stunning work!", "rating": 5, "approved": true,
			"createdAt": now.Add(-6 * time.Hour),
		},
		{
			"photoId": photoIDs[0], "name": "Bekzat", "email": "",
			"comment": "Great composition", "rating": 4, "approved": true,
			"createdAt": now.Add(-3 * time.Hour),
		},
		{
			"photoId": photoIDs[3], "name": "Dina", "email": "dina@yandex.kz",
			"comment": "Booked a session after seeing this", "rating": 5, "approved": true,
			"createdAt": now.Add(-1 * time.Hour),
		},
	}

	for _, c := range comments {
		if _, err := st.Add(ctx, store.CollectionComments, c); err != nil {
			log.Fatal("seed comment failed: ", err)
		}
	}
	log.Printf("Created %d comments", len(comments))
}
