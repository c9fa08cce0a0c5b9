package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/twanvl/ice-sliding-puzzle/internal/puzzle"
	"github.com/twanvl/ice-sliding-puzzle/internal/search"
	"github.com/twanvl/ice-sliding-puzzle/internal/solver"
)

// TestRelativeLayout_ConversionSoundness walks the whole enumeration for a
// small obstacle count and checks that every successful conversion yields a
// grid satisfying the model invariants.
func TestRelativeLayout_ConversionSoundness(t *testing.T) {
	l := search.NewRelativeLayout(2)
	total, valid := 0, 0
	for {
		total++
		if g, ok := l.ToGrid(); ok {
			valid++
			require.LessOrEqual(t, g.Width(), puzzle.MaxWidth)
			require.LessOrEqual(t, g.Height(), puzzle.MaxHeight)
			require.Positive(t, g.Width())
			require.Positive(t, g.Height())
			require.True(t, g.InBounds(g.Start()))
			require.False(t, g.Obstacle(g.Start()))
			require.LessOrEqual(t, g.ObstacleCount(), 2)
		}
		if !l.Advance() {
			break
		}
	}
	require.Greater(t, valid, 0)
	require.Greater(t, total, valid, "some layouts must fail conversion")
}

// TestRelativeLayout_EnumerationSize pins the odometer order for one
// obstacle: 12 gap choices per axis (outer gaps never SAME), one admissible
// permutation and one admissible start index.
func TestRelativeLayout_EnumerationSize(t *testing.T) {
	l := search.NewRelativeLayout(1)
	total, valid := 0, 0
	for {
		total++
		if _, ok := l.ToGrid(); ok {
			valid++
		}
		if !l.Advance() {
			break
		}
	}
	require.Equal(t, 144, total)
	require.Equal(t, 128, valid)
}

func TestRelativeLayout_ToGrid(t *testing.T) {
	// Two objects one cell apart on both axes, start first: a 2×2 board
	// with the start at (0,0) and an obstacle at (1,1).
	l := &search.RelativeLayout{
		NumObstacles: 1,
		HGaps:        []search.Gap{search.GapNext, search.GapNext, search.GapNext},
		VGaps:        []search.Gap{search.GapNext, search.GapNext, search.GapNext},
		Perm:         []int{0, 1},
		StartIndex:   0,
	}
	g, ok := l.ToGrid()
	require.True(t, ok)
	require.Equal(t, 2, g.Width())
	require.Equal(t, 2, g.Height())
	require.Equal(t, puzzle.MakeCoord(0, 0), g.Start())
	require.True(t, g.Obstacle(puzzle.MakeCoord(1, 1)))
}

func TestRelativeLayout_ToGridFailures(t *testing.T) {
	// First gap SAME overlaps the left wall.
	l := &search.RelativeLayout{
		NumObstacles: 1,
		HGaps:        []search.Gap{search.GapSame, search.GapNext, search.GapNext},
		VGaps:        []search.Gap{search.GapNext, search.GapNext, search.GapNext},
		Perm:         []int{0, 1},
		StartIndex:   0,
	}
	_, ok := l.ToGrid()
	require.False(t, ok)

	// Both gaps SAME collapse the start onto the obstacle.
	l = &search.RelativeLayout{
		NumObstacles: 1,
		HGaps:        []search.Gap{search.GapNext, search.GapSame, search.GapNext},
		VGaps:        []search.Gap{search.GapNext, search.GapSame, search.GapNext},
		Perm:         []int{0, 1},
		StartIndex:   0,
	}
	_, ok = l.ToGrid()
	require.False(t, ok)
}

func TestEnumerateShapes(t *testing.T) {
	cases := []struct {
		obstacles int
		score     int
	}{
		{1, 5},
		{2, 8},
	}
	for _, tc := range cases {
		best, score := search.EnumerateShapes(&search.ShapeOptions{Obstacles: tc.obstacles})
		require.Equal(t, tc.score, score, "%d obstacles", tc.obstacles)
		require.Equal(t, score, solver.New(nil).MaxDistance(&best))
		require.False(t, best.Obstacle(best.Start()))
	}
}
