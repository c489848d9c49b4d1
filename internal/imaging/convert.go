package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/canny-edge-mcp/internal/canny"
)

// ToGrid converts img to an intensity grid with the origin at the top-left
// of img's bounds.
//
// *image.Gray sources are copied directly. Anything else is converted with
// imaging.Grayscale (Rec. 601 luma) and the resulting channel is used.
func ToGrid(img image.Image) *canny.Grid[uint8] {
	bounds := img.Bounds()
	g := canny.NewGrid[uint8](bounds.Dx(), bounds.Dy())

	if gray, ok := img.(*image.Gray); ok {
		for y := 0; y < g.Height; y++ {
			off := gray.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(g.Row(y), gray.Pix[off:off+g.Width])
		}
		return g
	}

	// Grayscale returns an NRGBA with R == G == B, anchored at (0,0).
	lum := imaging.Grayscale(img)
	for y := 0; y < g.Height; y++ {
		row := g.Row(y)
		off := lum.PixOffset(0, y)
		for x := range row {
			row[x] = lum.Pix[off+x*4]
		}
	}
	return g
}

// ToImage wraps a grid as an *image.Gray. The pixels are copied.
func ToImage(g *canny.Grid[uint8]) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+g.Width], g.Row(y))
	}
	return img
}

// DirectionImage renders a gradient direction grid for display, mapping
// -π/2 to black and π/2 to white.
func DirectionImage(dir *canny.Grid[float64]) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, dir.Width, dir.Height))
	for y := 0; y < dir.Height; y++ {
		for x, theta := range dir.Row(y) {
			v := (theta + math.Pi/2) / math.Pi * 255
			if math.IsNaN(v) || v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}
			img.SetGray(x, y, color.Gray{Y: uint8(math.Round(v))})
		}
	}
	return img
}

// countEdges returns the number of Edge pixels in mask.
func countEdges(mask *canny.Grid[uint8]) int {
	n := 0
	for _, v := range mask.Pix {
		if v == canny.Edge {
			n++
		}
	}
	return n
}
