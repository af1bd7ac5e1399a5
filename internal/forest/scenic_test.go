package forest

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewingDistance_Example(t *testing.T) {
	g := mustParse(t, exampleLines...)

	testCases := []struct {
		name  string
		coord Coord
		want  map[Direction]int
	}{
		{
			name:  "middle five of second row",
			coord: Coord{Row: 1, Col: 2},
			want:  map[Direction]int{Up: 1, Left: 1, Right: 2, Down: 2},
		},
		{
			name:  "five in fourth row",
			coord: Coord{Row: 3, Col: 2},
			want:  map[Direction]int{Up: 2, Left: 2, Right: 2, Down: 1},
		},
		{
			name:  "top left corner",
			coord: Coord{Row: 0, Col: 0},
			want:  map[Direction]int{Up: 0, Left: 0, Right: 2, Down: 2},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for d, want := range tc.want {
				assert.Equal(t, want, ViewingDistance(g, tc.coord, d), "direction %v", d)
			}
		})
	}
}

func TestViewingDistance_RunsToEdge(t *testing.T) {
	g := mustParse(t, "91111")

	assert.Equal(t, 4, ViewingDistance(g, Coord{Row: 0, Col: 0}, Right))
	assert.Equal(t, 1, ViewingDistance(g, Coord{Row: 0, Col: 2}, Right), "equal height blocks")
	assert.Equal(t, 1, ViewingDistance(g, Coord{Row: 0, Col: 1}, Left), "taller tree blocks and is counted")
}

func TestScenicScore_Example(t *testing.T) {
	g := mustParse(t, exampleLines...)

	assert.Equal(t, 4, ScenicScore(g, Coord{Row: 1, Col: 2}))
	assert.Equal(t, 8, ScenicScore(g, Coord{Row: 3, Col: 2}))

	score, best := MaxScenicScore(g)
	assert.Equal(t, 8, score)
	assert.Equal(t, Coord{Row: 3, Col: 2}, best)
}

func TestScenicScore_BoundaryIsZero(t *testing.T) {
	rng := rand.New(rand.NewPCG(2022, 8))

	for i := 0; i < 25; i++ {
		rows, cols := 1+rng.IntN(8), 1+rng.IntN(8)
		g := randomGrid(t, rng, rows, cols)

		for _, c := range g.Coords() {
			if c.Row == 0 || c.Col == 0 || c.Row == rows-1 || c.Col == cols-1 {
				assert.Zero(t, ScenicScore(g, c), "boundary %v of %dx%d", c, rows, cols)
			}
		}
	}
}

func TestMaxScenicScore_SingleCell(t *testing.T) {
	score, best := MaxScenicScore(mustParse(t, "5"))

	assert.Zero(t, score)
	assert.Equal(t, Coord{}, best)
}

func TestMaxScenicScore_FirstMaximumWins(t *testing.T) {
	g := mustParse(t,
		"00000",
		"05050",
		"00000",
	)

	score, best := MaxScenicScore(g)
	assert.Equal(t, 2, score)
	assert.Equal(t, Coord{Row: 1, Col: 1}, best)
}
