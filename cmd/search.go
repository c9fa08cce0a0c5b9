package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twanvl/ice-sliding-puzzle/internal/search"
	"github.com/twanvl/ice-sliding-puzzle/internal/solver"
)

var (
	searchObstacles     string
	searchTrials        int
	searchSwaps         bool
	searchAcceptEqual   bool
	searchReachableOnly bool
)

func init() {
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Greedy hill-climbing with random restarts",
		Long: `Hill-climb from many random layouts, keeping the hardest puzzle found.

Examples:
  ice-sliding-puzzle search --obstacles 8
  ice-sliding-puzzle search -W 16 -H 16 --obstacles 8:15 --trials 1000`,
		RunE: runSearch,
	}

	searchCmd.Flags().StringVarP(&searchObstacles, "obstacles", "o", "8", "Obstacle count or sweep range like 8:15")
	searchCmd.Flags().IntVarP(&searchTrials, "trials", "n", search.DefaultTrials, "Number of random restarts per obstacle count")
	searchCmd.Flags().BoolVar(&searchSwaps, "swaps", false, "Offer row/column swap moves")
	searchCmd.Flags().BoolVar(&searchAcceptEqual, "accept-equal", false, "Wander plateaus by accepting equal-scoring candidates")
	searchCmd.Flags().BoolVar(&searchReachableOnly, "reachable-only", false, "Only move obstacles onto reachable cells")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	minObstacles, maxObstacles, err := parseObstacleRange(searchObstacles)
	if err != nil {
		return err
	}

	rng := newRng()
	renderer := newRenderer()
	for o := minObstacles; o <= maxObstacles; o++ {
		best, score, err := search.RandomRestart(&search.RestartOptions{
			Width:     gridWidth,
			Height:    gridHeight,
			Obstacles: o,
			Trials:    searchTrials,
			Greedy: search.GreedyOptions{
				Swaps:         searchSwaps,
				AcceptEqual:   searchAcceptEqual,
				ReachableOnly: searchReachableOnly,
				Solver:        solver.New(solverOptions()),
			},
			Rng:    rng,
			Logger: log,
		})
		if err != nil {
			return err
		}
		dist := solver.New(solverOptions()).Solve(&best)
		fmt.Println(renderer.Board(&best, dist))
		fmt.Printf("With %d obstacles: %d steps\n", o, score)
	}
	return nil
}
