package canny

import "fmt"

// Default pipeline parameters.
const (
	DefaultKernelSize = 5
	DefaultSigma      = 1.4
	DefaultLow        = 40
	DefaultHigh       = 100
)

// Options configures a pipeline run.
type Options struct {
	// KernelSize is the Gaussian kernel length (odd, >= 3).
	KernelSize int `json:"kernel_size"`

	// Sigma is the Gaussian standard deviation (> 0).
	Sigma float64 `json:"sigma"`

	// Low is the hysteresis propagation threshold. Pixels <= Low never
	// become edges.
	Low uint8 `json:"threshold_low"`

	// High is the hysteresis seed threshold. Pixels >= High are always edges.
	High uint8 `json:"threshold_high"`

	// Workers bounds row-band parallelism in the convolution stages.
	// Values <= 1 run serially.
	Workers int `json:"workers,omitempty"`
}

// DefaultOptions returns kernel 5, sigma 1.4, thresholds 40/100, serial.
func DefaultOptions() Options {
	return Options{
		KernelSize: DefaultKernelSize,
		Sigma:      DefaultSigma,
		Low:        DefaultLow,
		High:       DefaultHigh,
		Workers:    1,
	}
}

// Validate checks every parameter without touching any image data.
func (o Options) Validate() error {
	if err := ValidateKernelParams(o.KernelSize, o.Sigma); err != nil {
		return err
	}
	return ValidateThresholds(o.Low, o.High)
}

// Border is the number of input pixels the full pipeline trims from each
// side: the Gaussian half-width, one for Sobel and one for suppression.
func (o Options) Border() int {
	return o.KernelSize/2 + 1 + 1
}

// MinDimension is the smallest input width or height that yields at least
// one output pixel.
func (o Options) MinDimension() int {
	return 2*(o.KernelSize/2) + 2*1 + 3
}

// Stages holds every intermediate grid of one pipeline run.
type Stages struct {
	Smoothed   *Grid[uint8]
	Magnitude  *Grid[uint8]
	Direction  *Grid[float64]
	Suppressed *Grid[uint8]
	Edges      *Grid[uint8]
}

// Detect runs the full pipeline and returns the binary edge mask.
func Detect(img *Grid[uint8], opts Options) (*Grid[uint8], error) {
	stages, err := DetectStages(img, opts)
	if err != nil {
		return nil, err
	}
	return stages.Edges, nil
}

// DetectStages runs the full pipeline and keeps every intermediate grid.
//
// Options and input size are checked up front so that a failure never leaves
// partial output.
func DetectStages(img *Grid[uint8], opts Options) (*Stages, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if img == nil {
		return nil, fmt.Errorf("%w: nil input grid", ErrInvalidParameter)
	}
	if err := requireSize(img, opts.MinDimension(), "pipeline"); err != nil {
		return nil, err
	}

	kernel, err := GaussianKernel(opts.KernelSize, opts.Sigma)
	if err != nil {
		return nil, err
	}

	smoothed, err := smoothWith(img, kernel, opts.Workers)
	if err != nil {
		return nil, fmt.Errorf("smooth: %w", err)
	}
	mag, dir, err := gradient(smoothed, opts.Workers)
	if err != nil {
		return nil, fmt.Errorf("gradient: %w", err)
	}
	thin, err := suppress(mag, dir, opts.Workers)
	if err != nil {
		return nil, fmt.Errorf("suppress: %w", err)
	}
	edges := hysteresis(thin, opts.Low, opts.High, nil)

	return &Stages{
		Smoothed:   smoothed,
		Magnitude:  mag,
		Direction:  dir,
		Suppressed: thin,
		Edges:      edges,
	}, nil
}
