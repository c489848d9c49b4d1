package canny

import "fmt"

// Sample is the set of element types a Grid can hold.
type Sample interface {
	~uint8 | ~float64
}

// Grid is a dense row-major 2D array with fixed dimensions.
//
// Stages never modify the grids they receive; each returns a freshly
// allocated grid that belongs to the caller.
type Grid[T Sample] struct {
	Width  int
	Height int
	Pix    []T
}

// NewGrid allocates a zeroed width x height grid.
func NewGrid[T Sample](width, height int) *Grid[T] {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid[T]{
		Width:  width,
		Height: height,
		Pix:    make([]T, width*height),
	}
}

// GridFrom wraps pix as a width x height grid without copying.
func GridFrom[T Sample](width, height int, pix []T) (*Grid[T], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative grid size %dx%d", ErrInvalidParameter, width, height)
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("%w: %d samples for a %dx%d grid", ErrInvalidParameter, len(pix), width, height)
	}
	return &Grid[T]{Width: width, Height: height, Pix: pix}, nil
}

// At returns the sample at column x, row y.
func (g *Grid[T]) At(x, y int) T {
	return g.Pix[y*g.Width+x]
}

// Set stores v at column x, row y.
func (g *Grid[T]) Set(x, y int, v T) {
	g.Pix[y*g.Width+x] = v
}

// Row returns row y as a slice aliasing Pix.
func (g *Grid[T]) Row(y int) []T {
	return g.Pix[y*g.Width : (y+1)*g.Width]
}

// Clone returns a deep copy.
func (g *Grid[T]) Clone() *Grid[T] {
	pix := make([]T, len(g.Pix))
	copy(pix, g.Pix)
	return &Grid[T]{Width: g.Width, Height: g.Height, Pix: pix}
}

// Empty reports whether the grid holds no samples.
func (g *Grid[T]) Empty() bool {
	return g.Width == 0 || g.Height == 0
}

// requireSize fails with ErrDimensionTooSmall unless both dimensions are at
// least min.
func requireSize[T Sample](g *Grid[T], min int, stage string) error {
	if g == nil {
		return fmt.Errorf("%w: %s: nil grid", ErrInvalidParameter, stage)
	}
	if g.Width < min || g.Height < min {
		return fmt.Errorf("%w: %s needs at least %dx%d, got %dx%d",
			ErrDimensionTooSmall, stage, min, min, g.Width, g.Height)
	}
	return nil
}
