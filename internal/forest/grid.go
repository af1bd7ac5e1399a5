// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package forest

import (
	"errors"
	"fmt"
)

// MaxHeight is the tallest height a single digit can encode.
const MaxHeight = 9

var (
	// ErrEmptyInput is reported when there are no rows, or the first row is empty.
	ErrEmptyInput = errors.New("input contains no trees")
	// ErrInvalidDigit is reported for any character outside '0'..'9'.
	ErrInvalidDigit = errors.New("not a decimal digit")
	// ErrRaggedRow is reported when a row's length differs from the first row.
	ErrRaggedRow = errors.New("row length differs from first row")
)

// ParseError describes why input lines could not be turned into a Grid.
// Line and Column are 1-based; zero means the position does not apply.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	switch {
	case e.Line == 0:
		return fmt.Sprintf("parse grid: %v", e.Err)
	case e.Column == 0:
		return fmt.Sprintf("parse grid: line %d: %v", e.Line, e.Err)
	default:
		return fmt.Sprintf("parse grid: line %d, column %d: %v", e.Line, e.Column, e.Err)
	}
}

// Unwrap exposes the sentinel reason to errors.Is.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Coord addresses a single cell. Coords compare by value and are used
// directly as set members.
type Coord struct {
	Row int
	Col int
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is a dense, row-major matrix of tree heights.
type Grid struct {
	rows  int
	cols  int
	cells []int
}

// newGrid allocates a zero-filled grid. Only rotations use it; everything
// else gets its Grid from Parse.
func newGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]int, rows*cols),
	}
}

// Parse builds a Grid from lines of decimal digits. Every line must have the
// same length as the first, and there must be at least one non-empty line.
func Parse(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, &ParseError{Err: ErrEmptyInput}
	}

	g := newGrid(len(lines), len(lines[0]))
	for r, line := range lines {
		if len(line) != g.cols {
			return nil, &ParseError{
				Line: r + 1,
				Err:  fmt.Errorf("%w: got %d, want %d", ErrRaggedRow, len(line), g.cols),
			}
		}
		for c := 0; c < len(line); c++ {
			ch := line[c]
			if ch < '0' || ch > '9' {
				return nil, &ParseError{
					Line:   r + 1,
					Column: c + 1,
					Err:    fmt.Errorf("%w: %q", ErrInvalidDigit, ch),
				}
			}
			g.cells[r*g.cols+c] = int(ch - '0')
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Contains reports whether c lies inside the grid.
func (g *Grid) Contains(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the height at c. It panics if c is outside the grid.
func (g *Grid) At(c Coord) int {
	if !g.Contains(c) {
		panic(fmt.Sprintf("forest: coordinate %v outside %dx%d grid", c, g.rows, g.cols))
	}
	return g.cells[c.Row*g.cols+c.Col]
}

// Coords returns every coordinate in row-major order.
func (g *Grid) Coords() []Coord {
	out := make([]Coord, 0, len(g.cells))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			out = append(out, Coord{Row: r, Col: c})
		}
	}
	return out
}

func (g *Grid) set(c Coord, height int) {
	g.cells[c.Row*g.cols+c.Col] = height
}
