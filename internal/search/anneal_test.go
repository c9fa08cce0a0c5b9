package search_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/twanvl/ice-sliding-puzzle/internal/puzzle"
	"github.com/twanvl/ice-sliding-puzzle/internal/search"
	"github.com/twanvl/ice-sliding-puzzle/internal/solver"
)

func TestAnneal(t *testing.T) {
	opts := search.DefaultAnnealOptions(5, 5, 3)
	opts.Runs = 2
	opts.StepsPerBatch = 40
	opts.Rng = rand.New(rand.NewSource(1))

	best, score, err := search.Anneal(opts)
	require.NoError(t, err)
	require.Positive(t, score)
	require.Equal(t, score, solver.New(nil).MaxDistance(&best))
	require.False(t, best.Obstacle(best.Start()))
	require.LessOrEqual(t, best.ObstacleCount(), 3)
	require.Equal(t, 5, best.Width())
	require.Equal(t, 5, best.Height())
}

func TestAnneal_BadDimensions(t *testing.T) {
	opts := search.DefaultAnnealOptions(0, 5, 3)
	_, _, err := search.Anneal(opts)
	require.ErrorIs(t, err, puzzle.ErrDimensions)
}

// TestAnneal_PackedBoard runs the annealer on a board where obstacles can
// crowd out every cell but the start, leaving no free cell for proposal
// moves. The run must still terminate with a valid layout.
func TestAnneal_PackedBoard(t *testing.T) {
	opts := search.DefaultAnnealOptions(2, 2, 4)
	opts.Runs = 1
	opts.StepsPerBatch = 10
	opts.InitialTemp = 1.0
	opts.FinalTemp = 0.5
	opts.Rng = rand.New(rand.NewSource(3))

	best, _, err := search.Anneal(opts)
	require.NoError(t, err)
	require.False(t, best.Obstacle(best.Start()))
	require.LessOrEqual(t, best.ObstacleCount(), 3)
}

// TestAnneal_SeedReproducible checks that a fixed seed makes the whole run,
// acceptance draws included, reproducible.
func TestAnneal_SeedReproducible(t *testing.T) {
	run := func() (puzzle.Grid, int) {
		opts := search.DefaultAnnealOptions(5, 5, 3)
		opts.Runs = 1
		opts.StepsPerBatch = 25
		opts.Rng = rand.New(rand.NewSource(42))
		g, s, err := search.Anneal(opts)
		require.NoError(t, err)
		return g, s
	}
	g1, s1 := run()
	g2, s2 := run()
	require.Equal(t, s1, s2)
	require.Equal(t, g1, g2)
}
