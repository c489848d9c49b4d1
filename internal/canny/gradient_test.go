package canny

import (
	"errors"
	"math"
	"testing"
)

func TestGradient_UniformHasNoEdges(t *testing.T) {
	for _, v := range []uint8{0, 77, 255} {
		mag, dir, err := Gradient(uniformGrid(8, 6, v))
		if err != nil {
			t.Fatalf("Gradient failed: %v", err)
		}
		if mag.Width != 6 || mag.Height != 4 || dir.Width != 6 || dir.Height != 4 {
			t.Fatalf("size: got %dx%d and %dx%d, want 6x4", mag.Width, mag.Height, dir.Width, dir.Height)
		}
		for i := range mag.Pix {
			if mag.Pix[i] != 0 {
				t.Errorf("uniform %d: magnitude[%d] = %d, want 0", v, i, mag.Pix[i])
			}
			if dir.Pix[i] != math.Pi/2 {
				t.Errorf("uniform %d: direction[%d] = %v, want π/2 when dx is 0", v, i, dir.Pix[i])
			}
		}
	}
}

func TestGradient_VerticalStep(t *testing.T) {
	// Columns 0-4 are 0, columns 5-9 are 255. Output column x is centred on
	// input column x+1, so the boundary lands on output columns 3 and 4.
	mag, dir, err := Gradient(verticalStep(10, 5))
	if err != nil {
		t.Fatalf("Gradient failed: %v", err)
	}

	for y := 0; y < mag.Height; y++ {
		for x := 0; x < mag.Width; x++ {
			onEdge := x == 3 || x == 4
			switch {
			case onEdge && mag.At(x, y) != 255:
				t.Errorf("magnitude(%d,%d) = %d, want 255 at the step", x, y, mag.At(x, y))
			case onEdge && math.Abs(dir.At(x, y)) > 1e-12:
				t.Errorf("direction(%d,%d) = %v, want 0 at a vertical step", x, y, dir.At(x, y))
			case !onEdge && mag.At(x, y) != 0:
				t.Errorf("magnitude(%d,%d) = %d, want 0 away from the step", x, y, mag.At(x, y))
			}
		}
	}
}

func TestGradient_HorizontalStep(t *testing.T) {
	img := NewGrid[uint8](5, 6)
	for y := 3; y < 6; y++ {
		for x := 0; x < 5; x++ {
			img.Set(x, y, 60)
		}
	}

	mag, dir, err := Gradient(img)
	if err != nil {
		t.Fatalf("Gradient failed: %v", err)
	}
	// dx is 0 along a horizontal step, so the direction is π/2. dy is
	// 4*60 = 240 on the two rows that straddle it.
	for _, y := range []int{1, 2} {
		if mag.At(1, y) != 240 {
			t.Errorf("magnitude(1,%d) = %d, want 240", y, mag.At(1, y))
		}
		if dir.At(1, y) != math.Pi/2 {
			t.Errorf("direction(1,%d) = %v, want π/2", y, dir.At(1, y))
		}
	}
	if mag.At(1, 0) != 0 || mag.At(1, 3) != 0 {
		t.Errorf("rows away from the step should be 0, got %d and %d", mag.At(1, 0), mag.At(1, 3))
	}
}

func TestGradient_DiagonalDirection(t *testing.T) {
	mag, dir, err := Gradient(diagonalStep(8, 50))
	if err != nil {
		t.Fatalf("Gradient failed: %v", err)
	}
	// The bright side is up and to the right: dx > 0 and dy < 0 with equal
	// size, so the direction is -π/4.
	if mag.At(2, 2) == 0 {
		t.Fatal("expected a gradient on the diagonal")
	}
	if got := dir.At(2, 2); math.Abs(got+math.Pi/4) > 1e-12 {
		t.Errorf("direction on the diagonal: got %v, want -π/4", got)
	}
}

func TestGradient_DirectionRange(t *testing.T) {
	_, dir, err := Gradient(noiseGrid(20, 20, 7))
	if err != nil {
		t.Fatalf("Gradient failed: %v", err)
	}
	for i, d := range dir.Pix {
		if d < -math.Pi/2 || d > math.Pi/2 {
			t.Fatalf("direction[%d] = %v outside [-π/2, π/2]", i, d)
		}
	}
}

func TestGradient_TooSmall(t *testing.T) {
	if _, _, err := Gradient(uniformGrid(2, 5, 0)); !errors.Is(err, ErrDimensionTooSmall) {
		t.Errorf("got %v, want ErrDimensionTooSmall", err)
	}
}
