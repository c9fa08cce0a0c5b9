// Package cmd implements the ice-sliding-puzzle command line interface.
package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/twanvl/ice-sliding-puzzle/internal/render"
	"github.com/twanvl/ice-sliding-puzzle/internal/solver"
)

var (
	gridWidth  int
	gridHeight int
	seed       int64
	verbose    bool
	openEdges  bool
	noColor    bool
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "ice-sliding-puzzle",
	Short: "Search for hard ice sliding puzzles",
	Long: `Search for ice floor puzzle layouts that maximize the number of moves an
optimal player needs: a token slides in one of four directions until stopped
by an obstacle or the boundary, and the score of a layout is the worst-case
optimal solve length over all cells.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVarP(&gridWidth, "width", "W", 8, "Grid width")
	pf.IntVarP(&gridHeight, "height", "H", 8, "Grid height")
	pf.Int64Var(&seed, "seed", 0, "Random seed (0 = time-based)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Log search progress")
	pf.BoolVar(&openEdges, "open-edges", false, "Boundary does not stop a slide")
	pf.BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// newRng returns the run's random source, honoring --seed.
func newRng() *rand.Rand {
	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(s))
}

// solverOptions translates the boundary flag into oracle options.
func solverOptions() *solver.Options {
	o := solver.DefaultOptions()
	o.BoundaryWall = !openEdges
	return o
}

func newRenderer() *render.Renderer {
	return render.New(!noColor)
}

// parseObstacleRange parses an obstacle count which can be a single number
// like "8" or a sweep range like "8:15". Returns min, max, and an error.
func parseObstacleRange(s string) (min, max int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) == 1 {
		val, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid obstacle count: %w", err)
		}
		return val, val, nil
	} else if len(parts) == 2 {
		minVal, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid obstacle count min: %w", err)
		}
		maxVal, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid obstacle count max: %w", err)
		}
		if minVal > maxVal {
			return 0, 0, fmt.Errorf("obstacle count min (%d) cannot be greater than max (%d)", minVal, maxVal)
		}
		return minVal, maxVal, nil
	}
	return 0, 0, fmt.Errorf("invalid obstacle count format: %s (use format like '8' or '8:15')", s)
}
