package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twanvl/ice-sliding-puzzle/internal/search"
	"github.com/twanvl/ice-sliding-puzzle/internal/solver"
)

var (
	annealObstacles int
	annealRuns      int
	annealSteps     int
	annealTempInit  float64
	annealTempFinal float64
	annealCooling   float64
)

func init() {
	annealCmd := &cobra.Command{
		Use:   "anneal",
		Short: "Simulated annealing search",
		Long: `Probabilistic local search with a geometric temperature schedule.

Examples:
  ice-sliding-puzzle anneal --obstacles 8
  ice-sliding-puzzle anneal -W 16 -H 16 --obstacles 12 --runs 20`,
		RunE: runAnneal,
	}

	annealCmd.Flags().IntVarP(&annealObstacles, "obstacles", "o", 8, "Obstacle count")
	annealCmd.Flags().IntVar(&annealRuns, "runs", search.DefaultAnnealRuns, "Independent annealing runs")
	annealCmd.Flags().IntVar(&annealSteps, "steps", search.DefaultStepsPerBatch, "Proposal steps per temperature batch")
	annealCmd.Flags().Float64Var(&annealTempInit, "temp-initial", search.DefaultInitialTemp, "Initial temperature")
	annealCmd.Flags().Float64Var(&annealTempFinal, "temp-final", search.DefaultFinalTemp, "Final temperature threshold")
	annealCmd.Flags().Float64Var(&annealCooling, "cooling", search.DefaultCoolingFactor, "Temperature decay factor per batch")

	rootCmd.AddCommand(annealCmd)
}

func runAnneal(cmd *cobra.Command, args []string) error {
	opts := search.DefaultAnnealOptions(gridWidth, gridHeight, annealObstacles)
	opts.Runs = annealRuns
	opts.StepsPerBatch = annealSteps
	opts.InitialTemp = annealTempInit
	opts.FinalTemp = annealTempFinal
	opts.CoolingFactor = annealCooling
	opts.Rng = newRng()
	opts.Logger = log
	opts.Solver = solver.New(solverOptions())

	best, score, err := search.Anneal(opts)
	if err != nil {
		return err
	}
	dist := solver.New(solverOptions()).Solve(&best)
	fmt.Println(newRenderer().Board(&best, dist))
	fmt.Printf("With %d obstacles: %d steps\n", annealObstacles, score)
	return nil
}
