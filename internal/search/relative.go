package search

import (
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/twanvl/ice-sliding-puzzle/internal/puzzle"
	"github.com/twanvl/ice-sliding-puzzle/internal/solver"
)

// Gap is a relative horizontal or vertical spacing between consecutive
// object boundaries (walls included) of a relative layout.
type Gap int

const (
	// GapSame puts the next boundary on the same line.
	GapSame Gap = iota
	// GapNext advances by one cell.
	GapNext
	// GapSkip advances by a representative "many cells" width.
	GapSkip
)

// skipGapWidth is the concrete width a GapSkip expands to. One size stands
// in for every large gap; enumerating actual widths would reintroduce the
// coordinate-level duplicates this representation exists to avoid.
const skipGapWidth = 3

// RelativeLayout describes a puzzle's shape without absolute coordinates:
// k obstacles plus the start make n = k+1 objects, placed left to right. Each
// axis carries n+1 gap symbols between consecutive boundaries (outer wall to
// first object, object to object, last object to outer wall). Perm maps an
// object's left-to-right rank to its top-to-bottom rank, and StartIndex marks
// which object is the start.
type RelativeLayout struct {
	NumObstacles int
	HGaps, VGaps []Gap
	Perm         []int
	StartIndex   int
}

// NewRelativeLayout returns the first layout of the enumeration order for
// the given obstacle count: minimal gaps, identity permutation, start first.
func NewRelativeLayout(obstacles int) *RelativeLayout {
	n := obstacles + 1
	l := &RelativeLayout{
		NumObstacles: obstacles,
		HGaps:        make([]Gap, n+1),
		VGaps:        make([]Gap, n+1),
		Perm:         make([]int, n),
	}
	resetGaps(l.HGaps)
	resetGaps(l.VGaps)
	identity(l.Perm)
	return l
}

// ToGrid converts the layout to a concrete grid by accumulating gap widths
// from the wall at -1. Returns false when the resulting dimensions are
// non-positive or exceed the compile-time maximum, when an object overlaps
// the left or top wall, or when the start lands on an obstacle.
func (l *RelativeLayout) ToGrid() (puzzle.Grid, bool) {
	n := l.NumObstacles + 1
	xs, w := gapsToCoords(l.HGaps)
	ys, h := gapsToCoords(l.VGaps)
	if w <= 0 || w > puzzle.MaxWidth || xs[0] < 0 {
		return puzzle.Grid{}, false
	}
	if h <= 0 || h > puzzle.MaxHeight || ys[0] < 0 {
		return puzzle.Grid{}, false
	}

	g, err := puzzle.New(w, h)
	if err != nil {
		return puzzle.Grid{}, false
	}
	for i := 0; i < n; i++ {
		pos := puzzle.MakeCoord(xs[i], ys[l.Perm[i]])
		if i == l.StartIndex {
			g.SetStart(pos)
		} else {
			g.SetObstacle(pos, true)
		}
	}
	// Gap symbols can collapse two objects onto one cell; a start buried
	// under an obstacle is not a valid puzzle.
	if g.Obstacle(g.Start()) {
		return puzzle.Grid{}, false
	}
	return g, true
}

// Advance steps the layout to its successor in the enumeration order:
// start index first, then the rank permutation, then the vertical and
// horizontal gap digits. Mirror-symmetric duplicates are skipped by keeping
// the start index and the permutation's first rank in the first half.
// Returns false after the last layout.
func (l *RelativeLayout) Advance() bool {
	n := l.NumObstacles + 1

	l.StartIndex++
	if 2*l.StartIndex <= n-1 {
		return true
	}
	l.StartIndex = 0

	for nextPermutation(l.Perm) {
		if 2*l.Perm[0] <= n-1 {
			return true
		}
	}
	identity(l.Perm)

	if nextGaps(l.VGaps) {
		return true
	}
	return nextGaps(l.HGaps)
}

// gapsToCoords accumulates gap widths from the wall at -1. The first
// len(gaps)-1 results are object positions; the final accumulated value is
// the axis extent (the far wall's position).
func gapsToCoords(gaps []Gap) ([]int, int) {
	coords := make([]int, len(gaps))
	x := -1
	for i, gap := range gaps {
		switch gap {
		case GapNext:
			x++
		case GapSkip:
			x += skipGapWidth
		}
		coords[i] = x
	}
	return coords, coords[len(coords)-1]
}

// resetGaps sets every digit to its minimum: the outer gaps must be at least
// GapNext so no object overlaps a wall.
func resetGaps(gaps []Gap) {
	for i := range gaps {
		gaps[i] = GapSame
	}
	gaps[0] = GapNext
	gaps[len(gaps)-1] = GapNext
}

// nextGaps advances the gap digits odometer-style, least significant first.
// Returns false on wrap-around, leaving the sequence reset.
func nextGaps(gaps []Gap) bool {
	last := len(gaps) - 1
	for i := range gaps {
		if gaps[i] < GapSkip {
			gaps[i]++
			return true
		}
		gaps[i] = GapSame
		if i == 0 || i == last {
			gaps[i] = GapNext
		}
	}
	return false
}

// identity fills p with 0..len(p)-1.
func identity(p []int) {
	for i := range p {
		p[i] = i
	}
}

// nextPermutation advances p to its lexicographic successor, returning false
// if p was already the last (descending) permutation.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	slices.Reverse(p[i+1:])
	return true
}

// ShapeOptions configures the canonical shape enumeration.
type ShapeOptions struct {
	// Obstacles is the obstacle count of every enumerated shape.
	Obstacles int

	Logger *logrus.Logger
	Solver *solver.Solver
}

// EnumerateShapes scores every convertible relative layout with the given
// obstacle count and returns the best grid and score. Layouts that fail
// conversion are skipped, not errors.
func EnumerateShapes(opts *ShapeOptions) (puzzle.Grid, int) {
	sol := opts.Solver
	if sol == nil {
		sol = solver.New(nil)
	}

	var best puzzle.Grid
	bestScore := -1

	l := NewRelativeLayout(opts.Obstacles)
	for {
		if g, ok := l.ToGrid(); ok {
			score := sol.MaxDistance(&g)
			if score > bestScore {
				best, bestScore = g, score
				if opts.Logger != nil {
					opts.Logger.WithFields(logrus.Fields{
						"width":  g.Width(),
						"height": g.Height(),
						"score":  bestScore,
					}).Info("shapes: new best")
				}
			}
		}
		if !l.Advance() {
			break
		}
	}
	return best, bestScore
}
