package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"photosite/internal/config"
	"photosite/internal/database"
	"photosite/internal/imagehost"
	"photosite/internal/middleware"
	"photosite/internal/modules/admin"
	"photosite/internal/modules/auth"
	"photosite/internal/modules/booking"
	"photosite/internal/modules/comment"
	"photosite/internal/modules/gallery"
	"photosite/internal/notification"
	"photosite/internal/pkg/jwt"
	"photosite/internal/pkg/logger"
	"photosite/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.L().Fatal("failed to load config", zap.Error(err))
	}

	log := logger.Init(cfg.Env)
	defer log.Sync()

	recordStore := buildStore(cfg, log)
	imageHost := buildImageHost(cfg, log)
	verifier := buildVerifier(cfg, log)

	tokens := jwt.New(cfg.JWTSecret, cfg.JWTTTL)
	sender := notification.NewEmailJS(
		cfg.EmailJSServiceID, cfg.EmailJSTemplateID,
		cfg.EmailJSPublicKey, cfg.EmailJSPrivateKey, log)

	bookingSvc := booking.NewService(recordStore, sender, log)
	commentSvc := comment.NewService(recordStore, log)
	gallerySvc := gallery.NewService(recordStore, imageHost, cfg.CloudinaryFolder, log)
	authSvc := auth.NewService(verifier, tokens, log)
	adminSvc := admin.NewService(bookingSvc, gallerySvc, commentSvc)

	if cfg.Env == "production" || cfg.Env == "prod" || cfg.Env == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           10 * time.Minute,
	}))

	v1 := router.Group("/api/v1")
	protected := v1.Group("")
	protected.Use(middleware.RequireAdmin(authSvc))

	booking.NewHandler(bookingSvc).RegisterRoutes(v1, protected)
	comment.NewHandler(commentSvc).RegisterRoutes(v1, protected)
	gallery.NewHandler(gallerySvc).RegisterRoutes(v1, protected)
	auth.NewHandler(authSvc).RegisterRoutes(v1, protected)
	admin.NewHandler(adminSvc).RegisterRoutes(protected)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	log.Info("starting api",
		zap.String("port", cfg.AppPort),
		zap.Bool("mongo", cfg.UseMongo()),
		zap.String("auth_mode", cfg.AuthMode))

	if err := router.Run(":" + cfg.AppPort); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

// buildStore selects the record store backend: the remote document store
// when MONGO_URI is set, the local SQL store otherwise.
func buildStore(cfg *config.Config, log *zap.Logger) store.Store {
	if cfg.UseMongo() {
		db, err := database.ConnectMongo(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			log.Fatal("failed to connect to mongo", zap.Error(err))
		}
		log.Info("using remote record store", zap.String("database", cfg.MongoDatabase))
		return store.NewMongoStore(db)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	st, err := store.NewSQLStore(db)
	if err != nil {
		log.Fatal("failed to initialize record store", zap.Error(err))
	}
	log.Info("using local record store", zap.String("dsn", cfg.DatabaseURL))
	return st
}

// buildImageHost returns nil when Cloudinary is unconfigured; the gallery
// then serves reads normally and refuses uploads.
func buildImageHost(cfg *config.Config, log *zap.Logger) gallery.ImageHost {
	if !cfg.CloudinaryConfigured() {
		log.Warn("cloudinary not configured, photo uploads disabled")
		return nil
	}

	host, err := imagehost.NewCloudinary(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		log.Fatal("failed to initialize cloudinary", zap.Error(err))
	}
	return host
}

func buildVerifier(cfg *config.Config, log *zap.Logger) auth.Verifier {
	if cfg.AuthMode == "firebase" {
		v, err := auth.NewFirebaseVerifier(context.Background(), cfg.FirebaseCredentialsFile)
		if err != nil {
			log.Fatal("failed to initialize firebase verifier", zap.Error(err))
		}
		return v
	}
	return auth.NewLocalVerifier(cfg.AdminUsername, cfg.AdminPassword)
}

func corsOrigins() []string {
	origins := []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"http://127.0.0.1:3000",
		"http://127.0.0.1:5173",
	}
	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	return origins
}
