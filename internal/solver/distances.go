package solver

import (
	"slices"

	"github.com/twanvl/ice-sliding-puzzle/internal/puzzle"
)

// Distances is the result of one oracle run. Stop[c] is the minimum number of
// moves to come to rest on c; Pass[c] the minimum to have traveled through c
// at all. Stop[c] >= Pass[c] for every cell; unreached cells hold Unreachable.
type Distances struct {
	Stop [puzzle.MaxCells]int
	Pass [puzzle.MaxCells]int
	// From[c] is the resting cell the first improving slide through c
	// started from, or -1. Filled only when Options.TrackPaths is set.
	From [puzzle.MaxCells]puzzle.Coord
	// Score is the maximum Pass value over visited cells.
	Score int
	// Farthest is a cell attaining Score.
	Farthest puzzle.Coord
}

// Reachable reports whether the cell was visited by any slide.
func (d *Distances) Reachable(c puzzle.Coord) bool {
	return d.Pass[c] < Unreachable
}

// Path reconstructs one shortest move sequence from start to target by
// walking back-pointers. The result lists the resting cells of the sequence,
// start first; consecutive entries are colinear (each pair is one slide), and
// the final entry is target itself, which may be a pass-through cell. Returns
// nil if the target is unreached or paths were not tracked.
func (d *Distances) Path(start, target puzzle.Coord) []puzzle.Coord {
	if !d.Reachable(target) {
		return nil
	}
	var path []puzzle.Coord
	for c := target; ; c = d.From[c] {
		path = append(path, c)
		if c == start {
			break
		}
		if d.From[c] < 0 {
			return nil
		}
	}
	slices.Reverse(path)
	return path
}
