package app

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/canopy/internal/config"
)

// DefaultInputPath is read when neither a flag nor a config file names the input.
const DefaultInputPath = "input.txt"

// Setting names used in Config.Explicit.
const (
	SettingInput     = "input"
	SettingLogLevel  = "log-level"
	SettingLogFormat = "log-format"
	SettingWorkers   = "workers"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath  string
	ConfigPath string // optional settings file

	LogFormat string
	LogLevel  string
	Workers   int

	// Explicit marks settings given on the command line. Values from the
	// settings file never replace them.
	Explicit map[string]bool
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}
	if !validLogLevel(cfg.LogLevel) {
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	return &cfg, nil
}

// merge layers the settings file under the command line. A relative input
// path from the file is resolved against the file's directory.
func (c Config) merge(m *config.Model) Config {
	if m == nil {
		return c
	}
	if m.Input != nil && !c.Explicit[SettingInput] {
		c.InputPath = *m.Input
		if c.InputPath != "" && !filepath.IsAbs(c.InputPath) && m.Source != "" {
			c.InputPath = filepath.Join(filepath.Dir(m.Source), c.InputPath)
		}
	}
	if m.LogLevel != nil && !c.Explicit[SettingLogLevel] {
		c.LogLevel = *m.LogLevel
	}
	if m.LogFormat != nil && !c.Explicit[SettingLogFormat] {
		c.LogFormat = *m.LogFormat
	}
	if m.Workers != nil && !c.Explicit[SettingWorkers] {
		c.Workers = *m.Workers
	}
	return c
}

func validLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}
