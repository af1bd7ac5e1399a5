// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package forest

// RotateLeftCoord maps c in a rows×cols grid to the same cell after the grid
// is turned a quarter counter-clockwise into a cols×rows grid.
func RotateLeftCoord(rows, cols int, c Coord) Coord {
	return Coord{Row: cols - 1 - c.Col, Col: c.Row}
}

// RotateRightCoord maps c in a rows×cols grid to the same cell after the grid
// is turned a quarter clockwise into a cols×rows grid.
//
// RotateRightCoord(cols, rows, RotateLeftCoord(rows, cols, c)) == c, and the
// same holds with the two functions swapped.
func RotateRightCoord(rows, cols int, c Coord) Coord {
	return Coord{Row: c.Col, Col: rows - 1 - c.Row}
}

// RotateLeft returns a new grid turned a quarter counter-clockwise. The right
// column of g becomes the top row of the result.
func (g *Grid) RotateLeft() *Grid {
	return g.rotate(RotateLeftCoord)
}

// RotateRight returns a new grid turned a quarter clockwise. The left column
// of g becomes the top row of the result.
func (g *Grid) RotateRight() *Grid {
	return g.rotate(RotateRightCoord)
}

func (g *Grid) rotate(mapCoord func(rows, cols int, c Coord) Coord) *Grid {
	out := newGrid(g.cols, g.rows)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			src := Coord{Row: r, Col: c}
			out.set(mapCoord(g.rows, g.cols, src), g.At(src))
		}
	}
	return out
}

// quarterTurn is one rotation step applied before a top scan.
type quarterTurn int

const (
	turnLeft quarterTurn = iota
	turnRight
)

func (t quarterTurn) apply(g *Grid) *Grid {
	if t == turnLeft {
		return g.RotateLeft()
	}
	return g.RotateRight()
}

// undo maps a coordinate of the rotated rows×cols grid back to the grid the
// turn was applied to.
func (t quarterTurn) undo(rows, cols int, c Coord) Coord {
	if t == turnLeft {
		return RotateRightCoord(rows, cols, c)
	}
	return RotateLeftCoord(rows, cols, c)
}
