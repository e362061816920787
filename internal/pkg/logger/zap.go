package logger

import (
	"fmt"
	"log/slog"

	slogzap "github.com/samber/slog-zap/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZap builds the process zap logger for levelStr and routes the global slog
// logger through it, so port.Logger and *zap.Logger users share one sink.
func NewZap(levelStr string, development bool) (*zap.Logger, error) {
	level, ok := ParseLevel(levelStr)
	if !ok {
		return nil, fmt.Errorf("invalid log level %q", levelStr)
	}

	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(level))

	zapLogger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}

	handler := slogzap.Option{Level: level, Logger: zapLogger}.NewZapHandler()
	SetDefault(slog.New(handler))
	return zapLogger, nil
}

func zapLevel(level slog.Level) zapcore.Level {
	switch {
	case level <= slog.LevelDebug:
		return zapcore.DebugLevel
	case level <= slog.LevelInfo:
		return zapcore.InfoLevel
	case level <= slog.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
