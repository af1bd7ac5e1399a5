package app

import (
	"context"
	"fmt"
	"time"

	"github.com/specialistvlad/canopy/internal/ctxlog"
	"github.com/specialistvlad/canopy/internal/forest"
	"github.com/specialistvlad/canopy/internal/fsutil"
)

// Run reads the input grid, computes both answers and prints the report.
// Nothing is printed unless both answers were computed.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	start := time.Now()
	a.logger.Info("Run started.", "input", a.config.InputPath)

	lines, err := fsutil.ReadLines(a.config.InputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	a.logger.Debug("Input read.", "lines", len(lines))

	grid, err := forest.Parse(lines)
	if err != nil {
		return fmt.Errorf("failed to build grid from %s: %w", a.config.InputPath, err)
	}

	result, err := forest.Analyze(ctx, grid, a.config.Workers)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if err := Report(a.outW, result); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	a.logger.Info("Run finished.", "visible", result.Visible, "best_score", result.BestScore, "elapsed", time.Since(start))
	return nil
}
