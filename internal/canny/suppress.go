package canny

import (
	"fmt"
	"math"
)

// offset is a (row, column) step from the centre pixel.
type offset struct {
	dy, dx int
}

// sector picks the two forward neighbours and the interpolation weight for a
// gradient direction theta in [-π/2, π/2]. The backward pair is the point
// reflection of the forward pair.
func sector(theta float64) (d1, d2 offset, weight float64) {
	switch {
	case theta > math.Pi/4:
		return offset{0, 1}, offset{1, 1}, 1 / math.Tan(theta)
	case theta >= 0:
		return offset{1, 0}, offset{1, 1}, math.Tan(theta)
	case theta >= -math.Pi/4:
		return offset{1, 0}, offset{1, -1}, -math.Tan(theta)
	default:
		return offset{0, -1}, offset{1, -1}, -1 / math.Tan(theta)
	}
}

// Suppress thins mag by zeroing every pixel that is not a local maximum
// along its gradient direction.
//
// The neighbour magnitudes on each side are interpolated as
// g(d1)*w + g(d2)*(1-w). A pixel smaller than either interpolated value is
// zeroed; otherwise it is kept unchanged. The result drops the outer 1-pixel
// border of mag.
func Suppress(mag *Grid[uint8], dir *Grid[float64]) (*Grid[uint8], error) {
	return suppress(mag, dir, 1)
}

func suppress(mag *Grid[uint8], dir *Grid[float64], workers int) (*Grid[uint8], error) {
	if err := requireSize(mag, 3, "suppress"); err != nil {
		return nil, err
	}
	if dir == nil || dir.Width != mag.Width || dir.Height != mag.Height {
		return nil, fmt.Errorf("%w: direction grid does not match %dx%d magnitude grid",
			ErrInvalidParameter, mag.Width, mag.Height)
	}

	out := NewGrid[uint8](mag.Width-2, mag.Height-2)
	g := func(y, x int) float64 { return float64(mag.At(x, y)) }

	forEachRow(out.Height, workers, func(oy int) {
		row := out.Row(oy)
		y := oy + 1
		for ox := range row {
			x := ox + 1
			centre := mag.At(x, y)
			row[ox] = centre
			if centre == 0 {
				continue
			}

			d1, d2, w := sector(dir.At(x, y))
			// The float64 conversions stop the compiler from fusing into FMA,
			// which would make plateau ties architecture dependent.
			forward := float64(g(y+d1.dy, x+d1.dx)*w) + float64(g(y+d2.dy, x+d2.dx)*(1-w))
			backward := float64(g(y-d1.dy, x-d1.dx)*w) + float64(g(y-d2.dy, x-d2.dx)*(1-w))

			c := float64(centre)
			if forward > c || backward > c {
				row[ox] = 0
			}
		}
	})

	return out, nil
}
