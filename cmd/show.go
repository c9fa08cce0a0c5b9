package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/twanvl/ice-sliding-puzzle/internal/puzzle"
	"github.com/twanvl/ice-sliding-puzzle/internal/solver"
)

var showPath bool

func init() {
	showCmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Solve and display a puzzle read from a file or stdin",
		Long: `Read a puzzle as text rows ('#' or '*' for obstacles, '0'/'s'/'S' for the
start, anything else free), compute its distance map, and display it.

Examples:
  ice-sliding-puzzle show puzzle.txt
  ice-sliding-puzzle show --path < puzzle.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runShow,
	}

	showCmd.Flags().BoolVar(&showPath, "path", false, "Trace a shortest path to the hardest cell")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	rows, err := readRows(in)
	if err != nil {
		return err
	}
	g, err := puzzle.FromRows(rows)
	if err != nil {
		return err
	}

	opts := solverOptions()
	opts.TrackPaths = showPath
	dist := solver.New(opts).Solve(&g)

	renderer := newRenderer()
	fmt.Printf("%d steps\n", dist.Score)
	fmt.Println(renderer.Board(&g, dist))
	if showPath {
		fmt.Println(renderer.Path(&g, dist))
	}
	return nil
}

// readRows reads non-empty lines as puzzle rows.
func readRows(in io.Reader) ([]string, error) {
	var rows []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
