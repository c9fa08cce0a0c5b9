package search

import (
	"github.com/sirupsen/logrus"

	"github.com/twanvl/ice-sliding-puzzle/internal/puzzle"
	"github.com/twanvl/ice-sliding-puzzle/internal/solver"
)

// BruteOptions configures the exhaustive enumeration.
type BruteOptions struct {
	Width, Height int
	// Obstacles is the exact obstacle count of every enumerated layout.
	Obstacles int

	Logger *logrus.Logger
	Solver *solver.Solver
}

// BruteForce scores every layout with the given obstacle count and returns
// the best. Start cells are restricted to a fundamental domain of the grid's
// symmetry group (left half, top half, and upper triangle for square grids);
// every layout elsewhere is a mirror or transpose of one in the domain and
// scores identically. For each start, obstacle subsets are stepped through in
// lexicographic order by shifting the trailing obstacle block.
func BruteForce(opts *BruteOptions) (puzzle.Grid, int, error) {
	sol := opts.Solver
	if sol == nil {
		sol = solver.New(nil)
	}

	blank, err := puzzle.New(opts.Width, opts.Height)
	if err != nil {
		return puzzle.Grid{}, 0, err
	}
	w, h := opts.Width, opts.Height
	best := blank
	bestScore := -1

	for start := range blank.Coords() {
		if 2*start.Col() > w || 2*start.Row() > h || (w == h && start.Row() > start.Col()) {
			continue
		}
		g := blank
		g.SetStart(start)
		cells := cellsSkippingStart(&g)
		firstLayout(&g, cells, opts.Obstacles)
		for {
			score := sol.MaxDistance(&g)
			if score > bestScore {
				best, bestScore = g, score
				if opts.Logger != nil {
					opts.Logger.WithFields(logrus.Fields{
						"start": start,
						"score": bestScore,
					}).Info("brute: new best")
				}
			}
			if !nextLayout(&g, cells) {
				break
			}
		}
	}
	return best, bestScore, nil
}

// cellsSkippingStart lists the grid's cells in row-major order with the start
// cell removed. This is the ordering the subset stepping operates over.
func cellsSkippingStart(g *puzzle.Grid) []puzzle.Coord {
	cells := make([]puzzle.Coord, 0, g.Width()*g.Height()-1)
	for c := range g.Coords() {
		if c != g.Start() {
			cells = append(cells, c)
		}
	}
	return cells
}

// firstLayout clears the board and fills the first cells of the ordering with
// obstacles: the lexicographically first subset of the requested size.
func firstLayout(g *puzzle.Grid, cells []puzzle.Coord, obstacles int) {
	for _, c := range cells {
		g.SetObstacle(c, false)
	}
	for i := 0; i < obstacles && i < len(cells); i++ {
		g.SetObstacle(cells[i], true)
	}
}

// nextLayout advances the obstacle subset to its successor, turning a prefix
// pattern like 0001110 into 1100001: the leading run of obstacles shifts one
// place right and the remainder of the run refills from the front. Returns
// false when no successor exists.
func nextLayout(g *puzzle.Grid, cells []puzzle.Coord) bool {
	// First obstacle in the ordering.
	first := 0
	for ; ; first++ {
		if first == len(cells) {
			return false // no obstacles
		}
		if g.Obstacle(cells[first]) {
			break
		}
	}
	// First free cell after the obstacle run.
	firstFree := first
	run := 0
	for ; ; firstFree++ {
		if firstFree == len(cells) {
			return false // last subset in the ordering
		}
		if !g.Obstacle(cells[firstFree]) {
			break
		}
		run++
	}
	for i := 0; i < run-1; i++ {
		g.SetObstacle(cells[first+i], false)
		g.SetObstacle(cells[i], true)
	}
	g.SetObstacle(cells[first+run-1], false)
	g.SetObstacle(cells[firstFree], true)
	return true
}
