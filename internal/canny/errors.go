package canny

import "errors"

var (
	// ErrInvalidParameter reports an unusable kernel length, sigma or
	// threshold pair.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDimensionTooSmall reports an input grid too small for a stage (or the
	// whole pipeline) to produce at least one output pixel.
	ErrDimensionTooSmall = errors.New("dimension too small")
)
