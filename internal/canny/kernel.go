package canny

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Kernel is a square convolution kernel stored row-major.
type Kernel struct {
	Size    int
	Weights []float64
}

// At returns the weight at kernel row i, column j.
func (k *Kernel) At(i, j int) float64 {
	return k.Weights[i*k.Size+j]
}

// HalfWidth is the border a valid convolution with k trims from each side.
func (k *Kernel) HalfWidth() int {
	return k.Size / 2
}

// Sum returns the total of all weights.
func (k *Kernel) Sum() float64 {
	return floats.Sum(k.Weights)
}

// Rows returns the weights as a slice of rows, for display.
func (k *Kernel) Rows() [][]float64 {
	rows := make([][]float64, k.Size)
	for i := range rows {
		rows[i] = append([]float64(nil), k.Weights[i*k.Size:(i+1)*k.Size]...)
	}
	return rows
}

// Sobel kernels. Gx responds to change along x (columns), Gy along y (rows).
var (
	sobelX = &Kernel{Size: 3, Weights: []float64{
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1,
	}}
	sobelY = &Kernel{Size: 3, Weights: []float64{
		-1, -2, -1,
		0, 0, 0,
		1, 2, 1,
	}}
)

// ValidateKernelParams checks a Gaussian kernel length and sigma.
func ValidateKernelParams(length int, sigma float64) error {
	if length < 3 || length%2 == 0 {
		return fmt.Errorf("%w: kernel length %d must be odd and at least 3", ErrInvalidParameter, length)
	}
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return fmt.Errorf("%w: sigma %v must be positive and finite", ErrInvalidParameter, sigma)
	}
	return nil
}

// GaussianKernel builds a length x length Gaussian kernel whose weights sum
// to 1.
//
// weight(i,j) = exp(-((i-k)² + (j-k)²) / 2σ²) with k = length/2. The weights
// are divided by the analytic constant 2πσ² and then by their empirical sum,
// which corrects for truncating the Gaussian at a finite length.
func GaussianKernel(length int, sigma float64) (*Kernel, error) {
	if err := ValidateKernelParams(length, sigma); err != nil {
		return nil, err
	}

	k := length / 2
	twoSigmaSq := 2 * sigma * sigma
	weights := make([]float64, length*length)
	for i := 0; i < length; i++ {
		for j := 0; j < length; j++ {
			di := float64(i - k)
			dj := float64(j - k)
			weights[i*length+j] = math.Exp(-(di*di + dj*dj) / twoSigmaSq)
		}
	}

	floats.Scale(1/(math.Pi*twoSigmaSq), weights)
	sum := floats.Sum(weights)
	if !(sum > 0) {
		// sigma small enough to under- or overflow the arithmetic; the
		// limit of a vanishing Gaussian is a delta at the centre.
		floats.Scale(0, weights)
		weights[k*length+k] = 1
		return &Kernel{Size: length, Weights: weights}, nil
	}
	floats.Scale(1/sum, weights)

	return &Kernel{Size: length, Weights: weights}, nil
}
