package search_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/twanvl/ice-sliding-puzzle/internal/puzzle"
	"github.com/twanvl/ice-sliding-puzzle/internal/search"
	"github.com/twanvl/ice-sliding-puzzle/internal/solver"
)

func TestGreedy_Improves(t *testing.T) {
	g, err := puzzle.FromRows([]string{
		"S.#...",
		"......",
		"...#..",
		"......",
		"......",
	})
	require.NoError(t, err)

	sol := solver.New(nil)
	initialScore := sol.MaxDistance(&g)

	best, bestScore := search.Greedy(g, &search.GreedyOptions{
		Rng: rand.New(rand.NewSource(1)),
	})
	require.GreaterOrEqual(t, bestScore, initialScore)
	require.Equal(t, bestScore, sol.MaxDistance(&best))
	require.Equal(t, g.ObstacleCount(), best.ObstacleCount())
	require.False(t, best.Obstacle(best.Start()))
}

// TestGreedy_LocalOptimum checks the termination condition: with the default
// budget the result has no strictly better neighbor.
func TestGreedy_LocalOptimum(t *testing.T) {
	g, err := puzzle.FromRows([]string{
		"S.#.",
		"....",
		".#..",
		"....",
	})
	require.NoError(t, err)

	sol := solver.New(nil)
	best, bestScore := search.Greedy(g, &search.GreedyOptions{
		Rng: rand.New(rand.NewSource(7)),
	})
	for cand := range search.Neighbors(best, search.NeighborOptions{}) {
		require.LessOrEqual(t, sol.MaxDistance(&cand), bestScore)
	}
}

func TestGreedy_ReachableOnly(t *testing.T) {
	g, err := puzzle.FromRows([]string{
		"S.#...",
		"......",
		"...#..",
		"......",
	})
	require.NoError(t, err)

	sol := solver.New(nil)
	initialScore := sol.MaxDistance(&g)
	best, bestScore := search.Greedy(g, &search.GreedyOptions{
		ReachableOnly: true,
		Rng:           rand.New(rand.NewSource(3)),
	})
	require.GreaterOrEqual(t, bestScore, initialScore)
	require.Equal(t, bestScore, sol.MaxDistance(&best))
	require.Equal(t, g.ObstacleCount(), best.ObstacleCount())
}

func TestRandomRestart(t *testing.T) {
	best, score, err := search.RandomRestart(&search.RestartOptions{
		Width:     4,
		Height:    4,
		Obstacles: 2,
		Trials:    25,
		Rng:       rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)
	require.Equal(t, score, solver.New(nil).MaxDistance(&best))
	require.LessOrEqual(t, best.ObstacleCount(), 2)
	require.False(t, best.Obstacle(best.Start()))
	// Every local optimum on 4×4 boards with two obstacles scores at least
	// 3; the unconstrained optimum is 7.
	require.GreaterOrEqual(t, score, 3)
	require.LessOrEqual(t, score, 7)
}

func TestRandomRestart_BadDimensions(t *testing.T) {
	_, _, err := search.RandomRestart(&search.RestartOptions{Width: 0, Height: 4, Trials: 1})
	require.ErrorIs(t, err, puzzle.ErrDimensions)
}
