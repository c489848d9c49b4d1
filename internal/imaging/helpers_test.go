package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createInMemoryImage creates an in-memory test image filled with c.
func createInMemoryImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createStepImage creates an image that is black left of split and white
// from split onwards.
func createStepImage(width, height, split int) *image.RGBA {
	img := createInMemoryImage(width, height, color.Black)
	for y := 0; y < height; y++ {
		for x := split; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

// writeImageFile encodes img as PNG into a temp directory under name.
func writeImageFile(t *testing.T, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

// createTestImage writes a solid-colour PNG and returns its path.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	return writeImageFile(t, "test-image.png", createInMemoryImage(width, height, c))
}
