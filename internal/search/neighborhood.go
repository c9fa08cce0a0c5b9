// Package search explores the space of puzzle layouts for ones that maximize
// the sliding-move score. It provides a single-edit neighborhood generator
// and four strategies built on it: greedy hill-climbing with random restarts,
// simulated annealing, symmetry-pruned exhaustive enumeration, and canonical
// relative-position (shape) enumeration.
package search

import (
	"iter"

	"github.com/twanvl/ice-sliding-puzzle/internal/puzzle"
	"github.com/twanvl/ice-sliding-puzzle/internal/solver"
)

// NeighborOptions configures the neighborhood generator.
type NeighborOptions struct {
	// Swaps also offers whole row and column exchanges.
	Swaps bool
	// Reachable, when non-nil, restricts obstacle destinations to cells the
	// input grid's own distance map can reach. An obstacle on a cell no
	// slide ever touches cannot change the score, so those candidates are
	// skipped without evaluation.
	Reachable *solver.Distances
}

// Neighbors yields every grid reachable from g by exactly one edit: an
// obstacle relocated to a free non-start cell, the start relocated to a free
// cell, or (with Swaps) two columns or two rows exchanged. Yielded grids are
// independent values; the generator does not score them.
func Neighbors(g puzzle.Grid, opts NeighborOptions) iter.Seq[puzzle.Grid] {
	return func(yield func(puzzle.Grid) bool) {
		cand := g

		// Relocate each obstacle to each free, non-start cell.
		for obstacle := range g.Coords() {
			if !g.Obstacle(obstacle) {
				continue
			}
			cand.SetObstacle(obstacle, false)
			for alt := range g.Coords() {
				if g.Obstacle(alt) || alt == g.Start() {
					continue
				}
				if opts.Reachable != nil && !opts.Reachable.Reachable(alt) {
					continue
				}
				cand.SetObstacle(alt, true)
				if !yield(cand) {
					return
				}
				cand.SetObstacle(alt, false)
			}
			cand.SetObstacle(obstacle, true)
		}

		// Relocate the start to each free cell.
		for alt := range g.Coords() {
			if g.Obstacle(alt) || alt == g.Start() {
				continue
			}
			cand.SetStart(alt)
			if !yield(cand) {
				return
			}
		}

		if !opts.Swaps {
			return
		}
		for x1 := 0; x1 < g.Width(); x1++ {
			for x2 := x1 + 1; x2 < g.Width(); x2++ {
				cand = g
				cand.SwapCols(x1, x2)
				if !yield(cand) {
					return
				}
			}
		}
		for y1 := 0; y1 < g.Height(); y1++ {
			for y2 := y1 + 1; y2 < g.Height(); y2++ {
				cand = g
				cand.SwapRows(y1, y2)
				if !yield(cand) {
					return
				}
			}
		}
	}
}
