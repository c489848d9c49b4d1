package canny

import "math"

// Gradient applies the Sobel operators to img.
//
// For every position where the 3x3 window fits, dx and dy are the Gx and Gy
// responses. The magnitude sqrt(dx²+dy²) is truncated to uint8 and saturates
// at 255. The direction is atan(dy/dx), or π/2 when dx is zero, so it always
// lies in [-π/2, π/2]. Both grids are 2 smaller than img in each dimension.
func Gradient(img *Grid[uint8]) (*Grid[uint8], *Grid[float64], error) {
	return gradient(img, 1)
}

func gradient(img *Grid[uint8], workers int) (*Grid[uint8], *Grid[float64], error) {
	if err := requireSize(img, sobelX.Size, "gradient"); err != nil {
		return nil, nil, err
	}

	w := img.Width - 2
	h := img.Height - 2
	mag := NewGrid[uint8](w, h)
	dir := NewGrid[float64](w, h)

	forEachRow(h, workers, func(y int) {
		magRow := mag.Row(y)
		dirRow := dir.Row(y)
		for x := 0; x < w; x++ {
			var dx, dy float64
			for a := 0; a < 3; a++ {
				for b := 0; b < 3; b++ {
					v := float64(img.At(x+b, y+a))
					dx += v * sobelX.At(a, b)
					dy += v * sobelY.At(a, b)
				}
			}
			magRow[x] = truncate8(math.Sqrt(dx*dx + dy*dy))
			if dx == 0 {
				dirRow[x] = math.Pi / 2
			} else {
				dirRow[x] = math.Atan(dy / dx)
			}
		}
	})

	return mag, dir, nil
}
