package search

import (
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/twanvl/ice-sliding-puzzle/internal/puzzle"
	"github.com/twanvl/ice-sliding-puzzle/internal/solver"
)

// Annealing defaults.
const (
	DefaultAnnealRuns    = 10
	DefaultStepsPerBatch = 500
	DefaultInitialTemp   = 2.0
	DefaultFinalTemp     = 0.01
	DefaultCoolingFactor = 0.9
)

// AnnealOptions configures simulated annealing.
type AnnealOptions struct {
	Width, Height int
	// Obstacles is the requested obstacle count; random placement
	// collisions and start placement can lower the realized count.
	Obstacles int
	// Runs is the number of independent annealing runs.
	Runs int
	// StepsPerBatch proposal steps are taken at each temperature.
	StepsPerBatch int
	// Temperature decays geometrically from InitialTemp by CoolingFactor
	// per batch until it drops below FinalTemp.
	InitialTemp   float64
	FinalTemp     float64
	CoolingFactor float64

	Rng    *rand.Rand
	Logger *logrus.Logger
	Solver *solver.Solver
}

// DefaultAnnealOptions returns standard annealing options for a w×h board.
func DefaultAnnealOptions(w, h, obstacles int) *AnnealOptions {
	return &AnnealOptions{
		Width:         w,
		Height:        h,
		Obstacles:     obstacles,
		Runs:          DefaultAnnealRuns,
		StepsPerBatch: DefaultStepsPerBatch,
		InitialTemp:   DefaultInitialTemp,
		FinalTemp:     DefaultFinalTemp,
		CoolingFactor: DefaultCoolingFactor,
	}
}

func (o *AnnealOptions) normalize() *AnnealOptions {
	n := *o
	if n.Runs <= 0 {
		n.Runs = DefaultAnnealRuns
	}
	if n.StepsPerBatch <= 0 {
		n.StepsPerBatch = DefaultStepsPerBatch
	}
	if n.InitialTemp <= 0 {
		n.InitialTemp = DefaultInitialTemp
	}
	if n.FinalTemp <= 0 {
		n.FinalTemp = DefaultFinalTemp
	}
	if n.CoolingFactor <= 0 || n.CoolingFactor >= 1 {
		n.CoolingFactor = DefaultCoolingFactor
	}
	if n.Rng == nil {
		n.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if n.Solver == nil {
		n.Solver = solver.New(nil)
	}
	return &n
}

// Anneal performs several independent simulated-annealing runs and returns
// the best grid and score seen across all of them.
func Anneal(opts *AnnealOptions) (puzzle.Grid, int, error) {
	opts = opts.normalize()
	sol := opts.Solver
	rng := opts.Rng

	best, err := puzzle.New(opts.Width, opts.Height)
	if err != nil {
		return puzzle.Grid{}, 0, err
	}
	bestScore := 0

	for run := 0; run < opts.Runs; run++ {
		cur := randomAnnealGrid(opts.Width, opts.Height, opts.Obstacles, rng)
		curScore := sol.MaxDistance(&cur)
		if curScore > bestScore {
			best, bestScore = cur, curScore
		}

		for temp := opts.InitialTemp; temp > opts.FinalTemp; temp *= opts.CoolingFactor {
			for step := 0; step < opts.StepsPerBatch; step++ {
				saved, savedScore := cur, curScore
				applyRandomMove(&cur, rng)
				curScore = sol.MaxDistance(&cur)
				if curScore > bestScore {
					best, bestScore = cur, curScore
					if opts.Logger != nil {
						opts.Logger.WithFields(logrus.Fields{
							"run":   run,
							"temp":  temp,
							"score": bestScore,
						}).Info("anneal: new best")
					}
				}
				// TODO: confirm with the puzzle's owner whether this should
				// be exp(delta/temp); the reference formula accepts
				// worsening moves more readily as the temperature falls.
				if rng.Float64() >= math.Exp(temp*float64(curScore-savedScore)) {
					cur, curScore = saved, savedScore
				}
			}
		}
	}
	return best, bestScore, nil
}

// randomAnnealGrid builds a random layout whose start is drawn over all
// cells; an obstacle already on the chosen start cell is removed, which keeps
// the start free and can lower the realized obstacle count. Dimensions are
// validated by the caller.
func randomAnnealGrid(w, h, obstacles int, rng *rand.Rand) puzzle.Grid {
	g, _ := puzzle.New(w, h)
	for i := 0; i < obstacles; i++ {
		g.SetObstacle(g.RandomCoord(rng), true)
	}
	start := g.RandomCoord(rng)
	g.SetObstacle(start, false)
	g.SetStart(start)
	return g
}

// applyRandomMove mutates g by one random edit, chosen uniformly over the
// current obstacles plus the start: the picked piece relocates to a random
// free cell.
func applyRandomMove(g *puzzle.Grid, rng *rand.Rand) {
	numObstacles := g.ObstacleCount()
	choice := rng.Intn(numObstacles + 1)
	if choice == numObstacles {
		// A fully packed board has nowhere to move the start; keep it.
		if c, ok := randomFreeCoord(g, rng); ok {
			g.SetStart(c)
		}
		return
	}
	for c := range g.Coords() {
		if !g.Obstacle(c) {
			continue
		}
		if choice == 0 {
			g.SetObstacle(c, false)
			// The freed cell is itself a candidate, so a destination
			// always exists.
			if dest, ok := randomFreeCoord(g, rng); ok {
				g.SetObstacle(dest, true)
			}
			return
		}
		choice--
	}
}

// randomFreeCoord draws a uniform random cell that is neither an obstacle nor
// the start. Reports false when the board has no such cell.
func randomFreeCoord(g *puzzle.Grid, rng *rand.Rand) (puzzle.Coord, bool) {
	free := g.Width()*g.Height() - g.ObstacleCount() - 1
	if free <= 0 {
		return 0, false
	}
	k := rng.Intn(free)
	for c := range g.Coords() {
		if g.Obstacle(c) || c == g.Start() {
			continue
		}
		if k == 0 {
			return c, true
		}
		k--
	}
	return 0, false
}
