package logger

import (
	"kafe-backend/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// Init: Uygulama geneli zap logger'ı hazırlar.
// Development'ta renkli console çıktısı, production'da JSON.
func Init(cfg *config.Config) error {
	var zapConfig zap.Config
	if cfg.Environment == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := zapConfig.Build()
	if err != nil {
		return err
	}

	log = l.With(zap.String("service", "kafe-backend"))
	return nil
}

// Get: Global logger'ı döner. Init çağrılmadıysa no-op logger döner,
// testlerde ayrıca kurulum gerekmesin diye.
func Get() *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
