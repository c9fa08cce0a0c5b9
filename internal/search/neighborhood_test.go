package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/twanvl/ice-sliding-puzzle/internal/puzzle"
	"github.com/twanvl/ice-sliding-puzzle/internal/search"
	"github.com/twanvl/ice-sliding-puzzle/internal/solver"
)

// diff summarizes how a candidate differs from the base grid.
func diff(base, cand *puzzle.Grid) (cells int, startMoved bool) {
	for c := range base.Coords() {
		if base.Obstacle(c) != cand.Obstacle(c) {
			cells++
		}
	}
	return cells, base.Start() != cand.Start()
}

// TestNeighbors_Closure checks that every candidate preserves the obstacle
// count and differs from the input by exactly one edit.
func TestNeighbors_Closure(t *testing.T) {
	g, err := puzzle.FromRows([]string{
		"..#.",
		"S...",
		"..#.",
	})
	require.NoError(t, err)

	count := 0
	for cand := range search.Neighbors(g, search.NeighborOptions{}) {
		count++
		require.Equal(t, g.ObstacleCount(), cand.ObstacleCount())
		require.False(t, cand.Obstacle(cand.Start()), "start must stay free")

		cells, startMoved := diff(&g, &cand)
		if startMoved {
			require.Equal(t, 0, cells, "a start move must not touch obstacles")
		} else {
			require.Equal(t, 2, cells, "an obstacle relocation changes exactly two cells")
		}
	}

	// 2 obstacles × 9 free non-start destinations, plus 9 start moves.
	require.Equal(t, 27, count)
}

func TestNeighbors_Swaps(t *testing.T) {
	g, err := puzzle.FromRows([]string{
		"..#.",
		"S...",
		"..#.",
	})
	require.NoError(t, err)

	count := 0
	for cand := range search.Neighbors(g, search.NeighborOptions{Swaps: true}) {
		count++
		require.Equal(t, g.ObstacleCount(), cand.ObstacleCount())
		require.False(t, cand.Obstacle(cand.Start()))
	}
	// 27 single-cell edits plus C(4,2) column and C(3,2) row swaps.
	require.Equal(t, 27+6+3, count)
}

// TestNeighbors_ReachableOnly checks that obstacle destinations are pruned
// to cells the base grid can reach.
func TestNeighbors_ReachableOnly(t *testing.T) {
	g, err := puzzle.New(7, 6)
	require.NoError(t, err)
	g.SetObstacle(puzzle.MakeCoord(2, 0), true)
	g.SetStart(puzzle.MakeCoord(1, 0))

	d := solver.New(nil).Solve(&g)
	dead := puzzle.MakeCoord(2, 1) // shadowed by the obstacle, no slide touches it
	require.False(t, d.Reachable(dead))

	for cand := range search.Neighbors(g, search.NeighborOptions{Reachable: d}) {
		require.False(t, cand.Obstacle(dead), "unreachable cell must never become a destination")
	}
}
