// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package forest

// ScanFromTop returns, column by column, every tree visible from the top
// edge: the first tree of each column, then each tree that is taller than all
// trees above it.
func ScanFromTop(g *Grid) []Coord {
	var found []Coord
	for c := 0; c < g.cols; c++ {
		tallest := -1
		for r := 0; r < g.rows; r++ {
			p := Coord{Row: r, Col: c}
			if h := g.At(p); h > tallest {
				found = append(found, p)
				tallest = h
			}
		}
	}
	return found
}

// VisibleFrom returns the trees visible from edge d, in g's coordinates.
// The grid is rotated until d is on top, scanned with ScanFromTop, and the
// results are walked back through each rotation in reverse.
func VisibleFrom(g *Grid, d Direction) []Coord {
	turns := d.turns()
	stages := make([]*Grid, 0, len(turns)+1)
	stages = append(stages, g)
	for _, t := range turns {
		stages = append(stages, t.apply(stages[len(stages)-1]))
	}

	found := ScanFromTop(stages[len(stages)-1])
	for i := len(turns) - 1; i >= 0; i-- {
		rotated := stages[i+1]
		for j := range found {
			found[j] = turns[i].undo(rotated.rows, rotated.cols, found[j])
		}
	}
	return found
}

// Visible returns the union of the trees visible from all four edges.
func Visible(g *Grid) CoordSet {
	set := NewCoordSet()
	for _, d := range Directions {
		set.Add(VisibleFrom(g, d)...)
	}
	return set
}
