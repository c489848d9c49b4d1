package canny

import "math/rand"

// uniformGrid returns a width x height grid filled with v.
func uniformGrid(width, height int, v uint8) *Grid[uint8] {
	g := NewGrid[uint8](width, height)
	for i := range g.Pix {
		g.Pix[i] = v
	}
	return g
}

// diagonalStep returns an n x n grid that is contrast above the main
// diagonal (x > y) and 0 on and below it.
func diagonalStep(n int, contrast uint8) *Grid[uint8] {
	g := NewGrid[uint8](n, n)
	for y := 0; y < n; y++ {
		for x := y + 1; x < n; x++ {
			g.Set(x, y, contrast)
		}
	}
	return g
}

// verticalStep returns a grid whose left half is 0 and right half 255.
func verticalStep(width, height int) *Grid[uint8] {
	g := NewGrid[uint8](width, height)
	for y := 0; y < height; y++ {
		for x := width / 2; x < width; x++ {
			g.Set(x, y, 255)
		}
	}
	return g
}

// noiseGrid returns a reproducible random grid.
func noiseGrid(width, height int, seed int64) *Grid[uint8] {
	r := rand.New(rand.NewSource(seed))
	g := NewGrid[uint8](width, height)
	for i := range g.Pix {
		g.Pix[i] = uint8(r.Intn(256))
	}
	return g
}

// blobGrid returns a reproducible grid of soft random blobs, which after
// suppression gives a realistic mix of strong, weak and dead pixels.
func blobGrid(width, height int, seed int64) *Grid[uint8] {
	r := rand.New(rand.NewSource(seed))
	g := NewGrid[uint8](width, height)
	for n := 0; n < 6; n++ {
		x0 := r.Intn(width)
		y0 := r.Intn(height)
		rad := 3 + r.Intn(width/4+1)
		v := uint8(60 + r.Intn(196))
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				dx, dy := x-x0, y-y0
				if dx*dx+dy*dy <= rad*rad {
					g.Set(x, y, v)
				}
			}
		}
	}
	return g
}
