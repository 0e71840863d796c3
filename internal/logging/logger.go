// Package logging builds the zap logger shared by the server and the CLI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON production logger, or a console logger outside
// production. level is a zap level name such as "debug" or "warn".
func New(level string, production bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	config := zap.NewProductionConfig()
	if !production {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.Level = zap.NewAtomicLevelAt(lvl)

	return config.Build()
}

// NewOrDefault is New for program entry points; it falls back to the default
// production logger when the configuration is invalid.
func NewOrDefault(level string, production bool) *zap.Logger {
	logger, err := New(level, production)
	if err != nil {
		fallback, _ := zap.NewProduction()
		if fallback == nil {
			return zap.NewNop()
		}
		fallback.Warn("falling back to default logger", zap.Error(err))
		return fallback
	}
	return logger
}
