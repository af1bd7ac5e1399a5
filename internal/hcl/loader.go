package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/canopy/internal/config"
	"github.com/specialistvlad/canopy/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	environ func() []string
}

// NewLoader creates a loader that exposes the real process environment.
func NewLoader() *Loader {
	return &Loader{environ: os.Environ}
}

// NewLoaderWithEnv creates a loader that exposes only the given
// KEY=VALUE pairs as `env`.
func NewLoaderWithEnv(environ []string) *Loader {
	return &Loader{environ: func() []string { return environ }}
}

// fileRoot mirrors the attributes accepted at the top level of a settings file.
type fileRoot struct {
	Input     *string `hcl:"input,optional"`
	LogLevel  *string `hcl:"log_level,optional"`
	LogFormat *string `hcl:"log_format,optional"`
	Workers   *int    `hcl:"workers,optional"`
}

// Load parses and decodes the settings file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, l.evalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	model := &config.Model{
		Source:    path,
		Input:     root.Input,
		LogLevel:  root.LogLevel,
		LogFormat: root.LogFormat,
		Workers:   root.Workers,
	}
	logger.Debug("HCL loading complete.", "path", path, "attributes", countSet(model))
	return model, nil
}

func (l *Loader) evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envObject(l.environ()),
		},
	}
}

func countSet(m *config.Model) int {
	n := 0
	for _, set := range []bool{m.Input != nil, m.LogLevel != nil, m.LogFormat != nil, m.Workers != nil} {
		if set {
			n++
		}
	}
	return n
}
