// Package logging builds the zap loggers basecalc uses. The interactive TUI
// owns the terminal, so its logger writes to a file; non-interactive
// commands log to stderr through the standard production config.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"basecalc/internal/config"
)

// New builds a logger from the logging configuration. When logging is
// disabled it returns a no-op logger, so callers never nil-check.
func New(cfg config.LoggingConfig, file string) (*zap.Logger, error) {
	if !cfg.Enabled {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{file}
	zcfg.ErrorOutputPaths = []string{file}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// NewStderr builds a stderr logger for non-interactive commands. Verbose
// lowers the level to debug.
func NewStderr(verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}
