package logger

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global *zap.Logger

// Init builds the process logger. Production config (JSON, info level) for
// prod-like environments, colored development config otherwise.
func Init(env string) *zap.Logger {
	var cfg zap.Config
	if env == "production" || env == "prod" || env == "release" {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := cfg.Build()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	global = l
	return l
}

// L returns the process logger, initializing a development logger if Init
// was never called (tests).
func L() *zap.Logger {
	if global == nil {
		return Init("development")
	}
	return global
}
