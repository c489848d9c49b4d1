// Package canny implements the four-stage Canny edge detector on dense
// 8-bit intensity grids.
//
// The pipeline is fixed:
//
//  1. Smooth: normalized Gaussian convolution (default 5x5, sigma 1.4)
//  2. Gradient: Sobel Gx/Gy giving magnitude and direction grids
//  3. Suppress: interpolated non-maximum suppression along the gradient
//  4. Threshold: hysteresis with strong seeds and 8-connected weak links
//
// # Grid Geometry
//
// Every stage computes its output only where its kernel fits entirely inside
// the input, so each stage returns a grid that is smaller than its input by
// the kernel half-width on every side. With the default options a W x H input
// produces a (W-8) x (H-8) mask whose pixel (0,0) corresponds to input pixel
// (4,4). Options.Border reports that offset.
//
// Grids use image-style coordinates: x is the column, y the row, and Pix is
// stored row-major.
//
// # Numeric Types
//
// Intensities and gradient magnitudes are uint8. Convolution sums are
// truncated toward zero, never rounded. Magnitudes above 255 saturate.
// Directions and kernel weights are float64.
//
// # Errors
//
// Invalid parameters wrap ErrInvalidParameter; undersized inputs wrap
// ErrDimensionTooSmall. Both are detected before any output is produced.
//
// # Concurrency
//
// All functions are pure with respect to their inputs and safe to call
// concurrently. Options.Workers > 1 splits Smooth, Gradient and Suppress into
// row bands; the result is identical to the serial path. Threshold always
// runs serially.
package canny
