package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twanvl/ice-sliding-puzzle/internal/search"
	"github.com/twanvl/ice-sliding-puzzle/internal/solver"
)

var shapeObstacles string

func init() {
	shapesCmd := &cobra.Command{
		Use:   "shapes",
		Short: "Canonical relative-position enumeration",
		Long: `Enumerate puzzle shapes rather than absolute placements: layouts are
described by relative gaps between obstacles and a row/column
correspondence, so mirror-symmetric and translated duplicates are never
generated. Grid dimensions follow from each shape; --width and --height
are ignored.

Examples:
  ice-sliding-puzzle shapes --obstacles 3
  ice-sliding-puzzle shapes --obstacles 2:4`,
		RunE: runShapes,
	}

	shapesCmd.Flags().StringVarP(&shapeObstacles, "obstacles", "o", "3", "Obstacle count or sweep range like 2:4")

	rootCmd.AddCommand(shapesCmd)
}

func runShapes(cmd *cobra.Command, args []string) error {
	minObstacles, maxObstacles, err := parseObstacleRange(shapeObstacles)
	if err != nil {
		return err
	}
	if minObstacles < 0 {
		return fmt.Errorf("obstacle count must be non-negative, got %d", minObstacles)
	}

	renderer := newRenderer()
	for o := minObstacles; o <= maxObstacles; o++ {
		best, score := search.EnumerateShapes(&search.ShapeOptions{
			Obstacles: o,
			Logger:    log,
			Solver:    solver.New(solverOptions()),
		})
		dist := solver.New(solverOptions()).Solve(&best)
		fmt.Println(renderer.Board(&best, dist))
		fmt.Printf("With %d obstacles: %d steps\n", o, score)
	}
	return nil
}
