package imaging

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/canny-edge-mcp/internal/canny"
)

func TestEdgeOverlay_Solid(t *testing.T) {
	img := createStepImage(40, 30, 20)

	result, err := EdgeOverlay(img, canny.DefaultOptions(), "#00ff00", 1)
	require.NoError(t, err)

	assert.Equal(t, 40, result.Width)
	assert.Equal(t, 30, result.Height)
	assert.Equal(t, "#00ff00", result.Color)
	assert.Positive(t, result.EdgePixels)

	out := decodeResult(t, result.ImageBase64)
	require.Equal(t, img.Bounds(), out.Bounds())

	green := 0
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			r, g, b, _ := out.At(x, y).RGBA()
			switch {
			case r == 0 && g == 0xffff && b == 0:
				green++
				assert.True(t, x >= 17 && x <= 23, "edge painted at column %d", x)
			case x < 4 || x >= 36 || y < 4 || y >= 26:
				want := img.At(x, y)
				assert.Equal(t, color.RGBAModel.Convert(want), color.RGBAModel.Convert(out.At(x, y)), "border pixel (%d,%d) changed", x, y)
			}
		}
	}
	assert.Equal(t, result.EdgePixels, green)
}

func TestEdgeOverlay_Blend(t *testing.T) {
	img := createStepImage(40, 30, 20)

	result, err := EdgeOverlay(img, canny.DefaultOptions(), "#f00", 0.5)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", result.Color)

	out := decodeResult(t, result.ImageBase64)
	blended := 0
	for y := 4; y < 26; y++ {
		for x := 4; x < 36; x++ {
			r, g, b, _ := out.At(x, y).RGBA()
			if r != g || g != b {
				blended++
				// Half red over black or white keeps red dominant.
				assert.Greater(t, r, g)
				assert.Equal(t, g, b)
			}
		}
	}
	assert.Equal(t, result.EdgePixels, blended)
}

func TestEdgeOverlay_DefaultColor(t *testing.T) {
	result, err := EdgeOverlay(createStepImage(40, 30, 20), canny.DefaultOptions(), "", 1)
	require.NoError(t, err)
	assert.Equal(t, DefaultOverlayColor, result.Color)
}

func TestEdgeOverlay_Errors(t *testing.T) {
	img := createStepImage(40, 30, 20)

	tests := []struct {
		name    string
		color   string
		opacity float64
	}{
		{"named color", "red", 1},
		{"short hex", "#ff00", 1},
		{"zero opacity", "#ff0000", 0},
		{"opacity above one", "#ff0000", 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EdgeOverlay(img, canny.DefaultOptions(), tt.color, tt.opacity)
			assert.Error(t, err)
		})
	}

	_, err := EdgeOverlay(createInMemoryImage(8, 8, color.White), canny.DefaultOptions(), "", 1)
	assert.ErrorIs(t, err, canny.ErrDimensionTooSmall)
}
