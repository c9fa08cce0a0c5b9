// Package render draws puzzle grids and their distance maps as text, with
// optional terminal colors: obstacles, per-cell distances, and a traced
// shortest path to the hardest cell.
package render

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/twanvl/ice-sliding-puzzle/internal/puzzle"
	"github.com/twanvl/ice-sliding-puzzle/internal/solver"
)

// Renderer formats grids for terminal output.
type Renderer struct {
	color    bool
	obstacle lipgloss.Style
	start    lipgloss.Style
	farthest lipgloss.Style
}

// New creates a renderer. With color false all styling is suppressed, which
// is also the mode to use when output is not a terminal.
func New(color bool) *Renderer {
	return &Renderer{
		color:    color,
		obstacle: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		start:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		farthest: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	}
}

// Board renders the grid with each free cell showing its pass distance:
// digits, then letters from 10 up. Obstacles are '#', unreached cells '.';
// the start and the score-attaining cell are highlighted.
func (r *Renderer) Board(g *puzzle.Grid, d *solver.Distances) string {
	var sb strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			pos := puzzle.MakeCoord(x, y)
			switch {
			case g.Obstacle(pos):
				sb.WriteString(r.styled('#', r.obstacle))
			case !d.Reachable(pos):
				sb.WriteByte('.')
			default:
				dist := d.Pass[pos]
				switch {
				case dist == 0:
					sb.WriteString(r.styled(distGlyph(dist), r.start))
				case dist == d.Score:
					sb.WriteString(r.styled(distGlyph(dist), r.farthest))
				default:
					sb.WriteRune(distGlyph(dist))
				}
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Path renders the grid with one shortest move sequence to the hardest cell
// overlaid in line-drawing glyphs: 'S' at the start, 'X' at the target,
// straights and corners along each slide. Requires distances computed with
// TrackPaths; returns "" when no path is available.
func (r *Renderer) Path(g *puzzle.Grid, d *solver.Distances) string {
	waypoints := d.Path(g.Start(), d.Farthest)
	if waypoints == nil {
		return ""
	}

	w, h := g.Width(), g.Height()
	cells := make([]rune, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cells[y*w+x] = '.'
			if g.Obstacle(puzzle.MakeCoord(x, y)) {
				cells[y*w+x] = '#'
			}
		}
	}
	at := func(c puzzle.Coord) *rune { return &cells[c.Row()*w+c.Col()] }

	// Straight segments, one per slide.
	for k := 0; k+1 < len(waypoints); k++ {
		a, b := waypoints[k], waypoints[k+1]
		delta, glyph := segmentStep(a, b)
		for c := a + delta; c != b; c += delta {
			*at(c) = glyph
		}
	}
	// Corners where consecutive slides meet.
	for k := 1; k+1 < len(waypoints); k++ {
		in, _ := segmentStep(waypoints[k-1], waypoints[k])
		out, glyph := segmentStep(waypoints[k], waypoints[k+1])
		*at(waypoints[k]) = cornerGlyph(in, out, glyph)
	}
	*at(waypoints[0]) = 'S'
	*at(waypoints[len(waypoints)-1]) = 'X'

	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ch := cells[y*w+x]
			switch ch {
			case '#':
				sb.WriteString(r.styled('#', r.obstacle))
			case 'S':
				sb.WriteString(r.styled('S', r.start))
			case 'X':
				sb.WriteString(r.styled('X', r.farthest))
			default:
				sb.WriteRune(ch)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (r *Renderer) styled(ch rune, style lipgloss.Style) string {
	if !r.color {
		return string(ch)
	}
	return style.Render(string(ch))
}

// distGlyph encodes a distance as a single character: '0'-'9', then letters.
func distGlyph(dist int) rune {
	if dist < 10 {
		return rune('0' + dist)
	}
	return rune('a' + dist - 10)
}

// segmentStep returns the per-cell coordinate delta from a toward b and the
// straight glyph for that axis. a and b are colinear.
func segmentStep(a, b puzzle.Coord) (puzzle.Coord, rune) {
	switch {
	case a.Row() == b.Row() && a < b:
		return 1, '─'
	case a.Row() == b.Row():
		return -1, '─'
	case a < b:
		return puzzle.MaxWidth, '│'
	default:
		return -puzzle.MaxWidth, '│'
	}
}

// cornerGlyph picks the box-drawing corner joining an incoming and outgoing
// step; straight continuations keep the plain glyph.
func cornerGlyph(in, out puzzle.Coord, straight rune) rune {
	type turn struct{ in, out puzzle.Coord }
	switch (turn{in, out}) {
	case turn{1, -puzzle.MaxWidth}, turn{puzzle.MaxWidth, -1}:
		return '┘'
	case turn{1, puzzle.MaxWidth}, turn{-puzzle.MaxWidth, -1}:
		return '┐'
	case turn{-1, -puzzle.MaxWidth}, turn{puzzle.MaxWidth, 1}:
		return '└'
	case turn{-1, puzzle.MaxWidth}, turn{-puzzle.MaxWidth, 1}:
		return '┌'
	}
	return straight
}
