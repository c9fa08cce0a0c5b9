package search

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/twanvl/ice-sliding-puzzle/internal/puzzle"
	"github.com/twanvl/ice-sliding-puzzle/internal/solver"
)

// DefaultTrials is the number of independent restarts RandomRestart performs.
const DefaultTrials = 10000

// GreedyOptions configures a single hill-climbing run.
type GreedyOptions struct {
	// Budget is the number of consecutive rounds without improvement before
	// the search halts; every improvement resets it. 0 picks a default:
	// 1 normally (stop at the first local optimum), 10 when AcceptEqual.
	Budget int
	// Swaps offers row/column exchange moves on the first and last rounds
	// of a run, as diversification.
	Swaps bool
	// AcceptEqual lets the search wander plateaus: a candidate scoring the
	// same as the incumbent replaces it with probability 1/ties-seen, a
	// reservoir-style uniform choice among equals within the round.
	AcceptEqual bool
	// ReachableOnly prunes obstacle destinations to cells reachable under
	// the round's base grid.
	ReachableOnly bool

	Rng    *rand.Rand
	Logger *logrus.Logger
	Solver *solver.Solver
}

// DefaultGreedyOptions returns standard hill-climbing options.
func DefaultGreedyOptions() *GreedyOptions {
	return &GreedyOptions{}
}

func (o *GreedyOptions) normalize() *GreedyOptions {
	if o == nil {
		o = DefaultGreedyOptions()
	}
	n := *o
	if n.Budget <= 0 {
		n.Budget = 1
		if n.AcceptEqual {
			n.Budget = 10
		}
	}
	if n.Rng == nil {
		n.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if n.Solver == nil {
		n.Solver = solver.New(nil)
	}
	return &n
}

// Greedy hill-climbs from the initial grid. Each round enumerates the full
// neighborhood of a snapshot of the incumbent; any strictly better candidate
// becomes the new incumbent immediately (the round keeps enumerating from the
// snapshot). Returns the best grid found and its score.
func Greedy(initial puzzle.Grid, opts *GreedyOptions) (puzzle.Grid, int) {
	opts = opts.normalize()
	sol := opts.Solver

	best := initial
	bestScore := sol.MaxDistance(&best)
	budget := opts.Budget

	for budget > 0 {
		budget--
		cur := best
		numEqual := 1
		swaps := opts.Swaps && (budget == opts.Budget || budget == 0)

		var reach *solver.Distances
		if opts.ReachableOnly {
			reach = sol.Solve(&cur)
		}

		for cand := range Neighbors(cur, NeighborOptions{Swaps: swaps, Reachable: reach}) {
			score := sol.MaxDistance(&cand)
			if score > bestScore {
				best, bestScore = cand, score
				budget = opts.Budget
				if opts.Logger != nil {
					opts.Logger.WithField("score", bestScore).Debug("greedy: improved")
				}
			} else if opts.AcceptEqual && score == bestScore {
				numEqual++
				if opts.Rng.Intn(numEqual) == 0 {
					best = cand
				}
			}
		}
	}
	return best, bestScore
}

// RestartOptions configures the random-restart driver.
type RestartOptions struct {
	Width, Height int
	// Obstacles is the requested obstacle count per trial; collisions
	// during random placement mean the realized count can be lower.
	Obstacles int
	// Trials is the number of independent restarts (default DefaultTrials).
	Trials int
	Greedy GreedyOptions

	Rng    *rand.Rand
	Logger *logrus.Logger
}

// RandomRestart runs Greedy from many independent random layouts and keeps
// the best result across all trials.
func RandomRestart(opts *RestartOptions) (puzzle.Grid, int, error) {
	trials := opts.Trials
	if trials <= 0 {
		trials = DefaultTrials
	}
	rng := opts.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	best, err := puzzle.New(opts.Width, opts.Height)
	if err != nil {
		return puzzle.Grid{}, 0, err
	}
	bestScore := 0

	greedyOpts := opts.Greedy
	greedyOpts.Rng = rng
	if greedyOpts.Solver == nil {
		greedyOpts.Solver = solver.New(nil)
	}

	for trial := 0; trial < trials; trial++ {
		g, err := puzzle.Random(opts.Width, opts.Height, opts.Obstacles, rng)
		if err != nil {
			return puzzle.Grid{}, 0, err
		}
		g, score := Greedy(g, &greedyOpts)
		if score > bestScore {
			best, bestScore = g, score
			if opts.Logger != nil {
				opts.Logger.WithFields(logrus.Fields{
					"trial": trial,
					"score": bestScore,
				}).Info("restart: new best")
				opts.Logger.Debug("\n" + best.String())
			}
		}
	}
	return best, bestScore, nil
}
