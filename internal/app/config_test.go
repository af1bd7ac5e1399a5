package app

import (
	"path/filepath"
	"testing"

	"github.com/specialistvlad/canopy/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{InputPath: "input.txt", LogLevel: "info", LogFormat: "text", Workers: 1}
}

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing input", mutate: func(c *Config) { c.InputPath = "" }, wantErr: "InputPath is a required"},
		{name: "zero workers", mutate: func(c *Config) { c.Workers = 0 }, wantErr: "workers must be at least 1"},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "invalid log-level"},
		{name: "bad format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: "invalid log-format"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)

			got, err := NewConfig(cfg)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, cfg, *got)
		})
	}
}

func TestConfigMerge(t *testing.T) {
	input, level, format, workers := "day08.txt", "debug", "json", 7
	model := &config.Model{
		Source:    filepath.Join("/etc", "canopy", "canopy.hcl"),
		Input:     &input,
		LogLevel:  &level,
		LogFormat: &format,
		Workers:   &workers,
	}

	t.Run("file fills unset values", func(t *testing.T) {
		got := validConfig().merge(model)

		assert.Equal(t, filepath.Join("/etc", "canopy", "day08.txt"), got.InputPath)
		assert.Equal(t, "debug", got.LogLevel)
		assert.Equal(t, "json", got.LogFormat)
		assert.Equal(t, 7, got.Workers)
	})

	t.Run("explicit flags win", func(t *testing.T) {
		cfg := validConfig()
		cfg.InputPath = "cli.txt"
		cfg.Workers = 2
		cfg.Explicit = map[string]bool{SettingInput: true, SettingWorkers: true}

		got := cfg.merge(model)

		assert.Equal(t, "cli.txt", got.InputPath)
		assert.Equal(t, 2, got.Workers)
		assert.Equal(t, "debug", got.LogLevel)
	})

	t.Run("absolute input kept", func(t *testing.T) {
		abs := filepath.Join(t.TempDir(), "grid.txt")
		got := validConfig().merge(&config.Model{Source: "conf/canopy.hcl", Input: &abs})

		assert.Equal(t, abs, got.InputPath)
	})

	t.Run("nil model", func(t *testing.T) {
		assert.Equal(t, validConfig(), validConfig().merge(nil))
	})
}
