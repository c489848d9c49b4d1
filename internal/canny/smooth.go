package canny

// Smooth convolves img with a length x length Gaussian of the given sigma.
//
// Only positions where the kernel fits entirely inside img are computed, so
// the result is smaller by 2*(length/2) in each dimension. Sums are truncated
// to uint8.
func Smooth(img *Grid[uint8], sigma float64, length int) (*Grid[uint8], error) {
	kernel, err := GaussianKernel(length, sigma)
	if err != nil {
		return nil, err
	}
	return smoothWith(img, kernel, 1)
}

func smoothWith(img *Grid[uint8], kernel *Kernel, workers int) (*Grid[uint8], error) {
	if err := requireSize(img, kernel.Size, "smooth"); err != nil {
		return nil, err
	}

	size := kernel.Size
	out := NewGrid[uint8](img.Width-2*kernel.HalfWidth(), img.Height-2*kernel.HalfWidth())

	forEachRow(out.Height, workers, func(y int) {
		row := out.Row(y)
		for x := range row {
			var sum float64
			for a := 0; a < size; a++ {
				src := img.Pix[(y+a)*img.Width+x : (y+a)*img.Width+x+size]
				weights := kernel.Weights[a*size : (a+1)*size]
				for b, w := range weights {
					sum += float64(src[b]) * w
				}
			}
			row[x] = truncate8(sum)
		}
	})

	return out, nil
}

// truncate8 converts v to uint8 by dropping the fraction, saturating outside
// [0, 255].
func truncate8(v float64) uint8 {
	switch {
	case v >= 255:
		return 255
	case v > 0:
		return uint8(v)
	default:
		return 0
	}
}
