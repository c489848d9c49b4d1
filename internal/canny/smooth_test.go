package canny

import (
	"errors"
	"testing"
)

func TestSmooth_Dimensions(t *testing.T) {
	tests := []struct {
		w, h, length int
		wantW, wantH int
	}{
		{20, 12, 5, 16, 8},
		{20, 12, 3, 18, 10},
		{9, 9, 9, 1, 1},
		{7, 7, 5, 3, 3},
	}

	for _, tt := range tests {
		img := noiseGrid(tt.w, tt.h, 1)
		out, err := Smooth(img, 1.4, tt.length)
		if err != nil {
			t.Fatalf("Smooth(%dx%d, %d) failed: %v", tt.w, tt.h, tt.length, err)
		}
		if out.Width != tt.wantW || out.Height != tt.wantH {
			t.Errorf("Smooth(%dx%d, %d): got %dx%d, want %dx%d",
				tt.w, tt.h, tt.length, out.Width, out.Height, tt.wantW, tt.wantH)
		}
	}
}

func TestSmooth_UniformStaysNearlyUniform(t *testing.T) {
	img := uniformGrid(12, 12, 128)
	out, err := Smooth(img, 1.4, 5)
	if err != nil {
		t.Fatalf("Smooth failed: %v", err)
	}

	first := out.Pix[0]
	// Truncation can drop a uniform 128 to 127 when the weights sum to
	// slightly less than 1.
	if first != 128 && first != 127 {
		t.Errorf("uniform 128 smoothed to %d", first)
	}
	for i, v := range out.Pix {
		if v != first {
			t.Fatalf("Pix[%d] = %d, want %d everywhere", i, v, first)
		}
	}
}

func TestSmooth_TruncatesTowardZero(t *testing.T) {
	// A single bright pixel under a 3x3 kernel: the output is the centre
	// weight times 255, truncated.
	img := NewGrid[uint8](3, 3)
	img.Set(1, 1, 255)

	k, _ := GaussianKernel(3, 1)
	want := uint8(k.At(1, 1) * 255)

	out, err := Smooth(img, 1, 3)
	if err != nil {
		t.Fatalf("Smooth failed: %v", err)
	}
	if out.Width != 1 || out.Height != 1 {
		t.Fatalf("size: got %dx%d, want 1x1", out.Width, out.Height)
	}
	if out.Pix[0] != want {
		t.Errorf("got %d, want %d", out.Pix[0], want)
	}
}

func TestSmooth_SpreadsBrightSpot(t *testing.T) {
	img := NewGrid[uint8](11, 11)
	img.Set(5, 5, 255)

	out, err := Smooth(img, 1.4, 5)
	if err != nil {
		t.Fatalf("Smooth failed: %v", err)
	}
	// Input (5,5) is output (3,3).
	if out.At(3, 3) >= 255 {
		t.Error("bright spot should be reduced after smoothing")
	}
	if out.At(3, 2) == 0 || out.At(2, 3) == 0 || out.At(4, 3) == 0 || out.At(3, 4) == 0 {
		t.Error("neighbours should receive some brightness")
	}
	if out.At(3, 3) <= out.At(2, 3) {
		t.Error("centre should stay the brightest pixel")
	}
}

func TestSmooth_WhiteStaysInRange(t *testing.T) {
	img := uniformGrid(10, 10, 255)
	out, err := Smooth(img, 0.5, 5)
	if err != nil {
		t.Fatalf("Smooth failed: %v", err)
	}
	for i, v := range out.Pix {
		if v < 254 {
			t.Fatalf("Pix[%d] = %d, want 254 or 255", i, v)
		}
	}
}

func TestSmooth_Errors(t *testing.T) {
	img := uniformGrid(10, 10, 0)

	if _, err := Smooth(img, 1.4, 4); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("even length: got %v, want ErrInvalidParameter", err)
	}
	if _, err := Smooth(img, 0, 5); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("zero sigma: got %v, want ErrInvalidParameter", err)
	}
	if _, err := Smooth(uniformGrid(4, 10, 0), 1.4, 5); !errors.Is(err, ErrDimensionTooSmall) {
		t.Errorf("narrow input: got %v, want ErrDimensionTooSmall", err)
	}
	if _, err := Smooth(nil, 1.4, 5); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("nil input: got %v, want ErrInvalidParameter", err)
	}
}

func TestTruncate8(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{0, 0},
		{0.999, 0},
		{1, 1},
		{127.9, 127},
		{254.999, 254},
		{255, 255},
		{1020, 255},
		{-3, 0},
	}
	for _, tt := range tests {
		if got := truncate8(tt.in); got != tt.want {
			t.Errorf("truncate8(%v): got %d, want %d", tt.in, got, tt.want)
		}
	}
}
