package imaging

import (
	"errors"
	"fmt"
	"image"
	"os"
	"strings"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/canny-edge-mcp/internal/canny"
)

// ImageCache provides thread-safe caching of decoded images and their
// grayscale grids, keyed by file path.
//
// Edge detection on the same file is commonly repeated with different
// thresholds, so both the decoded image and its intensity grid are kept.
// Cached entries remain in memory until Evict or Clear.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
	grids  map[string]*canny.Grid[uint8]
}

// NewImageCache creates an empty cache ready for concurrent use.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
		grids:  make(map[string]*canny.Grid[uint8]),
	}
}

// Load returns the decoded image at path, reading it from disk on first use.
//
// Decoding goes through imaging.Open, which understands PNG, JPEG, GIF, TIFF
// and BMP and applies the EXIF orientation of JPEG files, so edge coordinates
// match what a viewer shows.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// LoadGrid returns the grayscale intensity grid of the image at path.
//
// The returned grid is shared with later callers and must not be modified;
// canny stages never modify their input.
func (c *ImageCache) LoadGrid(path string) (*canny.Grid[uint8], error) {
	c.mu.RLock()
	if g, ok := c.grids[path]; ok {
		c.mu.RUnlock()
		return g, nil
	}
	c.mu.RUnlock()

	img, err := c.Load(path)
	if err != nil {
		return nil, err
	}
	g := ToGrid(img)

	c.mu.Lock()
	c.grids[path] = g
	c.mu.Unlock()

	return g, nil
}

// Clear removes every cached image and grid.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.grids = make(map[string]*canny.Grid[uint8])
	c.mu.Unlock()
}

// Evict removes one path from the cache. Unknown paths are ignored.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	delete(c.grids, path)
	c.mu.Unlock()
}

// ImageInfo describes an image file and what the default pipeline will make
// of it.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is "png", "jpeg", "gif", "tiff", "bmp" or "unknown", taken from
	// the file extension.
	Format string `json:"format"`

	// Grayscale is true when the file decodes to a single-channel image.
	Grayscale bool `json:"grayscale"`

	// FileSizeBytes is the size of the file on disk.
	FileSizeBytes int64 `json:"file_size_bytes"`

	// EdgeReady reports whether the image is at least MinDimension pixels
	// in both directions for the default options.
	EdgeReady bool `json:"edge_ready"`

	// MaskWidth and MaskHeight are the edge mask size with the default
	// options, or 0 when the image is too small.
	MaskWidth  int `json:"mask_width"`
	MaskHeight int `json:"mask_height"`
}

// LoadImageInfo loads path into the cache and reports its metadata.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	if f, err := imaging.FormatFromFilename(path); err == nil {
		format = strings.ToLower(f.String())
	} else if !errors.Is(err, imaging.ErrUnsupportedFormat) {
		return nil, fmt.Errorf("failed to detect format: %w", err)
	}

	grayscale := false
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		grayscale = true
	}

	bounds := img.Bounds()
	info := &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		Grayscale:     grayscale,
		FileSizeBytes: stat.Size(),
	}

	opts := canny.DefaultOptions()
	if info.Width >= opts.MinDimension() && info.Height >= opts.MinDimension() {
		info.EdgeReady = true
		info.MaskWidth = info.Width - 2*opts.Border()
		info.MaskHeight = info.Height - 2*opts.Border()
	}

	return info, nil
}
