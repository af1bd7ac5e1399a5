// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package forest

// ViewingDistance counts the trees seen from c looking in direction d. The
// count stops at, and includes, the first tree at least as tall as c, or at
// the grid edge. A tree on the edge facing d sees nothing and scores 0.
func ViewingDistance(g *Grid, c Coord, d Direction) int {
	height := g.At(c)

	distance := 0
	for p := c.Move(d); g.Contains(p); p = p.Move(d) {
		distance++
		if g.At(p) >= height {
			break
		}
	}
	return distance
}

// ScenicScore multiplies the viewing distances in all four directions.
func ScenicScore(g *Grid, c Coord) int {
	score := 1
	for _, d := range Directions {
		score *= ViewingDistance(g, c, d)
	}
	return score
}

// MaxScenicScore returns the highest scenic score in g and the first
// coordinate, in row-major order, that reaches it.
func MaxScenicScore(g *Grid) (int, Coord) {
	var best Coord
	bestScore := 0
	for r := 0; r < g.rows; r++ {
		score, c := maxScenicScoreInRow(g, r)
		if score > bestScore {
			bestScore, best = score, c
		}
	}
	return bestScore, best
}

func maxScenicScoreInRow(g *Grid, row int) (int, Coord) {
	best := Coord{Row: row}
	bestScore := 0
	for c := 0; c < g.cols; c++ {
		p := Coord{Row: row, Col: c}
		if score := ScenicScore(g, p); score > bestScore {
			bestScore, best = score, p
		}
	}
	return bestScore, best
}
