package logging

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel is used when no level is configured
const DefaultLevel = "info"

// New builds a zap logger. development switches to the human-readable
// console encoder; level accepts zap level names (debug, info, warn, error).
func New(level string, development bool) (*zap.Logger, error) {
	if level == "" {
		level = DefaultLevel
	}
	atomic, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	config := zap.NewProductionConfig()
	if development {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.Level = atomic

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// WithSession tags every entry of logger with a fresh session id
func WithSession(logger *zap.Logger) (*zap.Logger, string) {
	session := uuid.NewString()
	return logger.With(zap.String("session", session)), session
}
