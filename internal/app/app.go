package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/canopy/internal/config"
	"github.com/specialistvlad/canopy/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// New is the constructor for the main application. It loads the optional
// settings file through loader, applies defaults, validates the result and
// builds an isolated logger writing to logW. The report goes to outW.
func New(outW, logW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	merged := *cfg

	if merged.ConfigPath != "" {
		// The settings file is loaded before the real logger exists.
		bootLogger := newLogger(merged.LogLevel, merged.LogFormat, logW)
		model, err := loader.Load(ctxlog.WithLogger(context.Background(), bootLogger), merged.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		merged = merged.merge(model)
	}
	if merged.InputPath == "" {
		merged.InputPath = DefaultInputPath
	}

	validated, err := NewConfig(merged)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(validated.LogLevel, validated.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "input", validated.InputPath, "workers", validated.Workers)

	return &App{
		outW:   outW,
		logger: logger,
		config: validated,
	}, nil
}

// Config returns the effective configuration. This is primarily for testing.
func (a *App) Config() Config {
	return *a.config
}
