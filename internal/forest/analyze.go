// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package forest

import (
	"context"
	"fmt"

	"github.com/specialistvlad/canopy/internal/ctxlog"
	"golang.org/x/sync/errgroup"
)

// Result holds both answers for one grid.
type Result struct {
	Visible   int   // trees visible from outside the grid
	BestScore int   // highest scenic score
	Best      Coord // first cell, row-major, with BestScore
}

// Analyze counts the visible trees and finds the highest scenic score.
// The four edge scans run concurrently, and the scenic scores are computed
// row by row on at most workers goroutines. The outcome is identical for any
// worker count.
func Analyze(ctx context.Context, g *Grid, workers int) (Result, error) {
	logger := ctxlog.FromContext(ctx)
	if workers < 1 {
		return Result{}, fmt.Errorf("workers must be at least 1, got %d", workers)
	}
	logger.Debug("Analysing grid.", "rows", g.rows, "cols", g.cols, "workers", workers)

	visible, err := visibleConcurrent(ctx, g)
	if err != nil {
		return Result{}, fmt.Errorf("visibility scan failed: %w", err)
	}

	score, best, err := maxScenicScoreConcurrent(ctx, g, workers)
	if err != nil {
		return Result{}, fmt.Errorf("scenic score evaluation failed: %w", err)
	}
	logger.Debug("Best scenic score found.", "score", score, "coord", best.String())

	return Result{Visible: visible.Len(), BestScore: score, Best: best}, nil
}

func visibleConcurrent(ctx context.Context, g *Grid) (CoordSet, error) {
	logger := ctxlog.FromContext(ctx)

	var perEdge [len(Directions)][]Coord
	eg, egCtx := errgroup.WithContext(ctx)
	for i, d := range Directions {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			perEdge[i] = VisibleFrom(g, d)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return CoordSet{}, err
	}

	set := NewCoordSet()
	for i, d := range Directions {
		logger.Debug("Edge scanned.", "edge", d.String(), "visible", len(perEdge[i]))
		set.Add(perEdge[i]...)
	}
	return set, nil
}

type rowBest struct {
	score int
	coord Coord
}

func maxScenicScoreConcurrent(ctx context.Context, g *Grid, workers int) (int, Coord, error) {
	rows := make([]rowBest, g.rows)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for r := 0; r < g.rows; r++ {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			score, c := maxScenicScoreInRow(g, r)
			rows[r] = rowBest{score: score, coord: c}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, Coord{}, err
	}

	// Merge in row order so ties resolve exactly as MaxScenicScore does.
	var best Coord
	bestScore := 0
	for _, rb := range rows {
		if rb.score > bestScore {
			bestScore, best = rb.score, rb.coord
		}
	}
	return bestScore, best, nil
}
