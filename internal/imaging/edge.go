package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/canny-edge-mcp/internal/canny"
)

// EdgeDetectResult contains a Canny edge mask encoded as base64 PNG.
//
// The mask is grayscale with edges in white (255) and everything else black.
// It is smaller than the source: the pipeline drops a border on every side,
// recorded in OffsetX/OffsetY so mask pixel (x,y) sits over source pixel
// (x+OffsetX, y+OffsetY).
type EdgeDetectResult struct {
	// Width of the mask in pixels.
	Width int `json:"width"`

	// Height of the mask in pixels.
	Height int `json:"height"`

	// OffsetX and OffsetY locate the mask's top-left pixel in the source
	// image, including any region offset.
	OffsetX int `json:"offset_x"`
	OffsetY int `json:"offset_y"`

	// EdgePixels is the number of white pixels in the mask.
	EdgePixels int `json:"edge_pixels"`

	// Options are the pipeline settings that produced the mask.
	Options canny.Options `json:"options"`

	// ImageBase64 is the mask encoded as base64 PNG.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`

	// SavedPath is set by callers that also wrote the mask to disk.
	SavedPath string `json:"saved_path,omitempty"`

	// Mask is the edge mask before encoding.
	Mask *canny.Grid[uint8] `json:"-"`
}

// EdgeDetect runs the Canny pipeline on img, or on one region of it.
//
// Parameters:
//   - img: Source image (color or grayscale). Color is reduced to luma first.
//   - opts: Pipeline settings. Use canny.DefaultOptions() as a base.
//   - region: Optional part of img to process. nil processes the whole image.
//
// Returns:
//   - *EdgeDetectResult: The mask as base64 PNG plus its placement.
//   - error: Non-nil if the region is invalid, the options are rejected, the
//     (cropped) image is smaller than opts.MinDimension(), or encoding fails.
//     Pipeline errors wrap canny.ErrInvalidParameter or
//     canny.ErrDimensionTooSmall.
//
// # Threshold Selection
//
// Thresholds apply to the suppressed gradient magnitude, which saturates at
// 255. Lower thresholds detect more edges but keep more noise.
//
// Recommended starting points:
//   - Photographs: low=40, high=100 (the defaults)
//   - Clean diagrams: low=80, high=200
//   - Noisy scans: raise sigma to 2.0 before raising thresholds
func EdgeDetect(img image.Image, opts canny.Options, region *Region) (*EdgeDetectResult, error) {
	src, origin, err := cropRegion(img, region)
	if err != nil {
		return nil, err
	}

	mask, err := canny.Detect(ToGrid(src), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to detect edges: %w", err)
	}

	encoded, err := encodeBase64PNG(ToImage(mask))
	if err != nil {
		return nil, err
	}

	border := opts.Border()
	return &EdgeDetectResult{
		Width:       mask.Width,
		Height:      mask.Height,
		OffsetX:     origin.X + border,
		OffsetY:     origin.Y + border,
		EdgePixels:  countEdges(mask),
		Options:     opts,
		ImageBase64: encoded,
		MimeType:    "image/png",
		Mask:        mask,
	}, nil
}

// StageImage is one intermediate pipeline output.
type StageImage struct {
	Name        string `json:"name"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EdgeStagesResult holds every stage of one pipeline run, in pipeline order:
// "smoothed", "magnitude", "direction", "suppressed", "edges".
type EdgeStagesResult struct {
	Options  canny.Options `json:"options"`
	Stages   []StageImage  `json:"stages"`
	SavedDir string        `json:"saved_dir,omitempty"`

	// Rendered holds the stage images before encoding, in the same order.
	Rendered []NamedImage `json:"-"`
}

// EdgeStages runs the pipeline on img and returns each intermediate grid as
// an image. Direction is rendered with DirectionImage.
func EdgeStages(img image.Image, opts canny.Options) (*EdgeStagesResult, error) {
	stages, err := canny.DetectStages(ToGrid(img), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to detect edges: %w", err)
	}

	result := &EdgeStagesResult{Options: opts, Rendered: StageImages(stages)}
	for _, s := range result.Rendered {
		encoded, err := encodeBase64PNG(s.Image)
		if err != nil {
			return nil, err
		}
		b := s.Image.Bounds()
		result.Stages = append(result.Stages, StageImage{
			Name:        s.Name,
			Width:       b.Dx(),
			Height:      b.Dy(),
			ImageBase64: encoded,
			MimeType:    "image/png",
		})
	}
	return result, nil
}

// NamedImage pairs a stage name with its rendering.
type NamedImage struct {
	Name  string
	Image *image.Gray
}

// StageImages renders the stages of one run in pipeline order.
func StageImages(s *canny.Stages) []NamedImage {
	return []NamedImage{
		{Name: "smoothed", Image: ToImage(s.Smoothed)},
		{Name: "magnitude", Image: ToImage(s.Magnitude)},
		{Name: "direction", Image: DirectionImage(s.Direction)},
		{Name: "suppressed", Image: ToImage(s.Suppressed)},
		{Name: "edges", Image: ToImage(s.Edges)},
	}
}

// SaveMask writes g to path. The encoder is chosen from the extension:
// .png, .jpg/.jpeg and .bmp are supported.
func SaveMask(path string, g *canny.Grid[uint8]) error {
	return SaveImage(path, ToImage(g))
}

// SaveImage writes img to path, choosing the encoder from the extension.
func SaveImage(path string, img image.Image) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	var enc imgio.Encoder
	switch format {
	case imaging.PNG:
		enc = imgio.PNGEncoder()
	case imaging.JPEG:
		enc = imgio.JPEGEncoder(95)
	case imaging.BMP:
		enc = imgio.BMPEncoder()
	default:
		return fmt.Errorf("failed to save %s: unsupported output format %s", path, format)
	}

	if err := imgio.Save(path, img, enc); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func encodeBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
