// Package solver computes sliding-move distances on a puzzle grid: the
// minimum number of moves an optimal player needs to rest on or pass through
// every cell, and the worst case over all cells (the puzzle's score).
package solver

import (
	"github.com/twanvl/ice-sliding-puzzle/internal/puzzle"
)

// Unreachable marks cells with no finite path from the start. It is strictly
// larger than any attainable distance, so it compares correctly in min/max
// updates.
const Unreachable = puzzle.MaxCells + 1

// Options configures the distance computation.
type Options struct {
	// BoundaryWall makes the grid edge stop a slide. When false, a slide
	// that reaches the edge produces no landing cell; cells crossed on the
	// way still receive pass-distance updates.
	BoundaryWall bool
	// TrackPaths records, for every improved cell, the resting cell the
	// improving slide started from. Needed only for path display.
	TrackPaths bool
}

// DefaultOptions returns the standard configuration: edges act as walls,
// paths untracked.
func DefaultOptions() *Options {
	return &Options{BoundaryWall: true}
}

// Solver computes distance maps for grids. It owns its working buffers and
// reuses them across calls, so a single Solver must not be shared between
// goroutines; give each worker its own.
type Solver struct {
	options Options
	dist    Distances
	queue   [puzzle.MaxCells]puzzle.Coord
}

// New creates a solver. A nil options uses DefaultOptions.
func New(options *Options) *Solver {
	if options == nil {
		options = DefaultOptions()
	}
	return &Solver{options: *options}
}

// MaxDistance returns the grid's score: the maximum over all cells of the
// minimum number of moves to first visit that cell. Cells that no slide ever
// touches do not contribute.
func (s *Solver) MaxDistance(g *puzzle.Grid) int {
	s.run(g)
	return s.dist.Score
}

// Solve returns the full distance map for the grid. The result is an
// independent copy; the solver's buffers are reused by the next call.
func (s *Solver) Solve(g *puzzle.Grid) *Distances {
	s.run(g)
	d := s.dist
	return &d
}

// run performs the breadth-first search over resting cells. Popping a cell at
// distance d, each of the four slides from it yields pass-distance d+1 for
// every cell crossed and stop-distance d+1 for the landing cell.
func (s *Solver) run(g *puzzle.Grid) {
	d := &s.dist
	// Full reinitialization: buffers may hold state from a grid of a
	// different extent.
	for i := range d.Stop {
		d.Stop[i] = Unreachable
		d.Pass[i] = Unreachable
		// From must be reset even when paths are untracked: Path relies
		// on -1 entries to detect that back-pointers were never recorded.
		d.From[i] = -1
	}

	start := g.Start()
	d.Stop[start] = 0
	d.Pass[start] = 0
	d.Score = 0
	d.Farthest = start
	if s.options.TrackPaths {
		d.From[start] = start
	}

	qHead, qTail := 0, 0
	s.queue[qTail] = start
	qTail++

	w, h := g.Width(), g.Height()
	for qHead < qTail {
		pos := s.queue[qHead]
		qHead++
		dist := d.Stop[pos]

		col, rowBase := puzzle.Coord(pos.Col()), puzzle.Coord(pos.Row()*puzzle.MaxWidth)
		deltas := [4]puzzle.Coord{-1, 1, -puzzle.MaxWidth, puzzle.MaxWidth}
		// First out-of-bounds coordinate in each direction.
		edges := [4]puzzle.Coord{
			rowBase - 1,
			rowBase + puzzle.Coord(w),
			col - puzzle.MaxWidth,
			puzzle.Coord(h*puzzle.MaxWidth) + col,
		}

		for i := 0; i < 4; i++ {
			p := pos
			hitEdge := false
			for {
				next := p + deltas[i]
				if next == edges[i] {
					hitEdge = true
					break
				}
				if g.Obstacle(next) {
					break
				}
				if d.Pass[next] > dist+1 {
					d.Pass[next] = dist + 1
					// BFS pops distances in nondecreasing order, so
					// every improvement is the new running maximum.
					d.Score = dist + 1
					d.Farthest = next
					if s.options.TrackPaths {
						d.From[next] = pos
					}
				}
				p = next
			}
			if hitEdge && !s.options.BoundaryWall {
				continue
			}
			if d.Stop[p] > dist+1 {
				d.Stop[p] = dist + 1
				if s.options.TrackPaths {
					d.From[p] = pos
				}
				s.queue[qTail] = p
				qTail++
			}
		}
	}
}
