package forest

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_Scenarios(t *testing.T) {
	testCases := []struct {
		name      string
		lines     []string
		wantCount int
		wantScore int
		wantBest  Coord
	}{
		{
			name:      "canonical example",
			lines:     exampleLines,
			wantCount: 21,
			wantScore: 8,
			wantBest:  Coord{Row: 3, Col: 2},
		},
		{
			name:      "single tree",
			lines:     []string{"5"},
			wantCount: 1,
			wantScore: 0,
		},
		{
			name:      "single row",
			lines:     []string{"13231"},
			wantCount: 5,
			wantScore: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustParse(t, tc.lines...)

			res, err := Analyze(context.Background(), g, 2)
			require.NoError(t, err)
			assert.Equal(t, tc.wantCount, res.Visible)
			assert.Equal(t, tc.wantScore, res.BestScore)
			assert.Equal(t, tc.wantBest, res.Best)
		})
	}
}

func TestAnalyze_MatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewPCG(99, 1))

	for i := 0; i < 20; i++ {
		g := randomGrid(t, rng, 1+rng.IntN(12), 1+rng.IntN(12))
		wantScore, wantBest := MaxScenicScore(g)
		wantVisible := Visible(g).Len()

		for _, workers := range []int{1, 3, 16} {
			res, err := Analyze(context.Background(), g, workers)
			require.NoError(t, err)
			assert.Equal(t, Result{Visible: wantVisible, BestScore: wantScore, Best: wantBest}, res, "workers=%d", workers)
		}
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	g := mustParse(t, exampleLines...)

	first, err := Analyze(context.Background(), g, 4)
	require.NoError(t, err)
	second, err := Analyze(context.Background(), g, 4)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, mustParse(t, exampleLines...), g, "analysis must not mutate the grid")
}

func TestAnalyze_InvalidWorkers(t *testing.T) {
	_, err := Analyze(context.Background(), mustParse(t, "1"), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers must be at least 1")
}

func TestAnalyze_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Analyze(ctx, mustParse(t, exampleLines...), 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
