package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "change-me-jwt-secret"

// Config holds all runtime configuration. Values come from environment
// variables, with an optional config.yaml for local development.
type Config struct {
	AppPort string `mapstructure:"APP_PORT"`
	Env     string `mapstructure:"ENV"`

	// Local record store backend (SQLite path or postgres URL).
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Remote record store backend; when MONGO_URI is set it wins over the
	// local backend.
	MongoURI      string `mapstructure:"MONGO_URI"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	JWTSecret string        `mapstructure:"JWT_SECRET"`
	JWTTTL    time.Duration `mapstructure:"JWT_TTL"`

	// Session guard: "local" compares against the fixed admin pair,
	// "firebase" delegates to the external identity verifier.
	AuthMode                string `mapstructure:"AUTH_MODE"`
	AdminUsername           string `mapstructure:"ADMIN_USERNAME"`
	AdminPassword           string `mapstructure:"ADMIN_PASSWORD"`
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`

	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
	CloudinaryFolder    string `mapstructure:"CLOUDINARY_FOLDER"`

	EmailJSServiceID  string `mapstructure:"EMAILJS_SERVICE_ID"`
	EmailJSTemplateID string `mapstructure:"EMAILJS_TEMPLATE_ID"`
	EmailJSPublicKey  string `mapstructure:"EMAILJS_PUBLIC_KEY"`
	EmailJSPrivateKey string `mapstructure:"EMAILJS_PRIVATE_KEY"`
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("DATABASE_URL", "photosite.db")
	viper.SetDefault("MONGO_URI", "")
	viper.SetDefault("MONGO_DATABASE", "photosite")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_TTL", "24h")
	viper.SetDefault("AUTH_MODE", "local")
	viper.SetDefault("ADMIN_USERNAME", "")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "")
	viper.SetDefault("CLOUDINARY_FOLDER", "photosite")
	viper.SetDefault("EMAILJS_SERVICE_ID", "")
	viper.SetDefault("EMAILJS_TEMPLATE_ID", "")
	viper.SetDefault("EMAILJS_PUBLIC_KEY", "")
	viper.SetDefault("EMAILJS_PRIVATE_KEY", "")

	// The config file is optional; environment variables alone are enough.
	_ = viper.ReadInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}

	switch cfg.AuthMode {
	case "local":
		if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
			return fmt.Errorf("AUTH_MODE=local requires ADMIN_USERNAME and ADMIN_PASSWORD")
		}
	case "firebase":
		if cfg.FirebaseCredentialsFile == "" {
			return fmt.Errorf("AUTH_MODE=firebase requires FIREBASE_CREDENTIALS_FILE")
		}
	default:
		return fmt.Errorf("AUTH_MODE must be \"local\" or \"firebase\", got %q", cfg.AuthMode)
	}

	if cfg.MongoURI == "" && cfg.DatabaseURL == "" {
		return fmt.Errorf("either MONGO_URI or DATABASE_URL must be set")
	}

	if isProdLike(cfg.Env) && cfg.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}
	return nil
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

// UseMongo reports whether the remote document backend is configured.
func (c *Config) UseMongo() bool {
	return c.MongoURI != ""
}

// CloudinaryConfigured reports whether the image host can be used.
func (c *Config) CloudinaryConfigured() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}
