package puzzle

// Compile-time grid bounds. Working buffers throughout the module are sized by
// these, so grids never allocate during search.
const (
	MaxWidth  = 32
	MaxHeight = 32
	MaxCells  = MaxWidth * MaxHeight
)

// Coord addresses a cell as x + y*MaxWidth. The stride is always MaxWidth, not
// the grid's actual width, so a coordinate keeps its meaning when only the
// dimensions of the surrounding grid differ.
type Coord int

// MakeCoord packs an (x, y) pair into a Coord. No bounds checking; callers
// keep x within [0, MaxWidth) and y within [0, MaxHeight).
func MakeCoord(x, y int) Coord {
	return Coord(x + y*MaxWidth)
}

// Col returns the column (x) of the coordinate.
func (c Coord) Col() int {
	return int(c) % MaxWidth
}

// Row returns the row (y) of the coordinate.
func (c Coord) Row() int {
	return int(c) / MaxWidth
}

// Next returns the row-major successor of c within a grid of width w,
// skipping the unused tail of each MaxWidth-stride row.
func (c Coord) Next(w int) Coord {
	n := c + 1
	if int(n)%MaxWidth == w {
		n = n - Coord(w) + MaxWidth
	}
	return n
}
