// Package logging builds zap loggers from the logging configuration section.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sidharth1507/DNS-Server/internal/config"
)

// New builds a zap logger honoring the configured level, encoding and sink.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)

	switch cfg.Format {
	case "console":
		zcfg.Encoding = "console"
		zcfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	case "json", "":
		zcfg.Encoding = "json"
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}

	switch cfg.Output {
	case "", "stderr":
		zcfg.OutputPaths = []string{"stderr"}
	case "stdout":
		zcfg.OutputPaths = []string{"stdout"}
	default:
		zcfg.OutputPaths = []string{cfg.Output}
	}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
