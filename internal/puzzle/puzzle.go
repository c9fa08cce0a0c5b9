// Package puzzle defines the ice-floor grid model: a bounded rectangular board
// of obstacles with a single start cell, on which a token slides until blocked.
package puzzle

import (
	"fmt"
	"iter"
	"math/rand"
	"strings"
)

// Grid is a concrete puzzle layout: obstacles plus a start cell. It is a plain
// value type; copying a Grid is ordinary assignment and search strategies rely
// on that to snapshot and restore candidates without aliasing.
type Grid struct {
	cells [MaxCells]bool
	w, h  int
	start Coord
}

// New creates a blank w×h grid with the start at the origin.
func New(w, h int) (Grid, error) {
	if err := validateDimensions(w, h); err != nil {
		return Grid{}, err
	}
	return Grid{w: w, h: h}, nil
}

// FromRows builds a Grid from equal-length text rows. '#' and '*' mark
// obstacles, '0', 's' and 'S' mark the start, and any other character is a
// free cell. The grid's dimensions are the row count and row length.
func FromRows(rows []string) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Grid{}, fmt.Errorf("%w: no rows", ErrDimensions)
	}
	w, h := len(rows[0]), len(rows)
	if err := validateDimensions(w, h); err != nil {
		return Grid{}, err
	}

	g := Grid{w: w, h: h}
	for y, row := range rows {
		if len(row) != w {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, y, len(row), w)
		}
		for x := 0; x < w; x++ {
			pos := MakeCoord(x, y)
			switch row[x] {
			case '#', '*':
				g.cells[pos] = true
			case '0', 's', 'S':
				g.start = pos
			}
		}
	}
	if g.cells[g.start] {
		return Grid{}, fmt.Errorf("%w: start %v is an obstacle", ErrStartObstacle, g.start)
	}
	return g, nil
}

// Random creates a w×h grid with up to the given number of obstacles placed by
// independent uniform cell draws. Placing an obstacle on an occupied cell is a
// no-op, so the realized count may be lower than requested. The start is drawn
// uniformly among free cells; a board left with no free cell fails with
// ErrStartObstacle.
func Random(w, h, obstacles int, rng *rand.Rand) (Grid, error) {
	g, err := New(w, h)
	if err != nil {
		return Grid{}, err
	}
	for i := 0; i < obstacles; i++ {
		g.cells[g.RandomCoord(rng)] = true
	}
	if g.ObstacleCount() == w*h {
		return Grid{}, fmt.Errorf("%w: no free cell on a %dx%d board", ErrStartObstacle, w, h)
	}
	for {
		g.start = g.RandomCoord(rng)
		if !g.cells[g.start] {
			break
		}
	}
	return g, nil
}

// Width returns the grid width.
func (g *Grid) Width() int { return g.w }

// Height returns the grid height.
func (g *Grid) Height() int { return g.h }

// Start returns the start cell.
func (g *Grid) Start() Coord { return g.start }

// SetStart moves the start cell. The caller keeps the invariant that the
// start is in bounds and free.
func (g *Grid) SetStart(c Coord) { g.start = c }

// Obstacle reports whether the cell holds an obstacle.
func (g *Grid) Obstacle(c Coord) bool { return g.cells[c] }

// SetObstacle places or removes an obstacle.
func (g *Grid) SetObstacle(c Coord, obstacle bool) { g.cells[c] = obstacle }

// InBounds reports whether the coordinate lies within the grid extent.
func (g *Grid) InBounds(c Coord) bool {
	return c >= 0 && c.Col() < g.w && c.Row() < g.h
}

// ObstacleCount returns the number of obstacles on the board.
func (g *Grid) ObstacleCount() int {
	n := 0
	for c := range g.Coords() {
		if g.cells[c] {
			n++
		}
	}
	return n
}

// RandomCoord returns a uniformly random in-bounds coordinate.
func (g *Grid) RandomCoord(rng *rand.Rand) Coord {
	return MakeCoord(rng.Intn(g.w), rng.Intn(g.h))
}

// Coords iterates all in-bounds coordinates in row-major order.
func (g *Grid) Coords() iter.Seq[Coord] {
	end := Coord(g.h * MaxWidth)
	return func(yield func(Coord) bool) {
		for c := Coord(0); c != end; c = c.Next(g.w) {
			if !yield(c) {
				return
			}
		}
	}
}

// SwapCols exchanges the contents of two columns, re-pointing the start if it
// lies in one of them.
func (g *Grid) SwapCols(x1, x2 int) {
	for y := 0; y < g.h; y++ {
		a, b := MakeCoord(x1, y), MakeCoord(x2, y)
		g.cells[a], g.cells[b] = g.cells[b], g.cells[a]
	}
	switch g.start.Col() {
	case x1:
		g.start = MakeCoord(x2, g.start.Row())
	case x2:
		g.start = MakeCoord(x1, g.start.Row())
	}
}

// SwapRows exchanges the contents of two rows, re-pointing the start if it
// lies in one of them.
func (g *Grid) SwapRows(y1, y2 int) {
	for x := 0; x < g.w; x++ {
		a, b := MakeCoord(x, y1), MakeCoord(x, y2)
		g.cells[a], g.cells[b] = g.cells[b], g.cells[a]
	}
	switch g.start.Row() {
	case y1:
		g.start = MakeCoord(g.start.Col(), y2)
	case y2:
		g.start = MakeCoord(g.start.Col(), y1)
	}
}

// String returns the literal-row form of the grid: '#' obstacles, 'S' start,
// '.' free cells. Round-trips through FromRows.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.w + 1) * g.h)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			pos := MakeCoord(x, y)
			switch {
			case g.cells[pos]:
				sb.WriteByte('#')
			case pos == g.start:
				sb.WriteByte('S')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
