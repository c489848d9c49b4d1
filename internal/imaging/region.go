package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Region selects the part of an image to run edge detection on.
//
// Either Name is set to one of the named regions ("top-left", "top-right",
// "bottom-left", "bottom-right", "top-half", "bottom-half", "left-half",
// "right-half", "center") or X1,Y1,X2,Y2 give a rectangle in source
// coordinates with exclusive X2/Y2.
type Region struct {
	Name string `json:"name,omitempty"`
	X1   int    `json:"x1"`
	Y1   int    `json:"y1"`
	X2   int    `json:"x2"`
	Y2   int    `json:"y2"`
}

// Rect resolves the region against the given bounds.
func (r Region) Rect(bounds image.Rectangle) (image.Rectangle, error) {
	if r.Name == "" {
		return image.Rect(r.X1, r.Y1, r.X2, r.Y2), nil
	}

	w := bounds.Dx()
	h := bounds.Dy()
	midX := w / 2
	midY := h / 2

	var x1, y1, x2, y2 int
	switch r.Name {
	case "top-left":
		x1, y1, x2, y2 = 0, 0, midX, midY
	case "top-right":
		x1, y1, x2, y2 = midX, 0, w, midY
	case "bottom-left":
		x1, y1, x2, y2 = 0, midY, midX, h
	case "bottom-right":
		x1, y1, x2, y2 = midX, midY, w, h
	case "top-half":
		x1, y1, x2, y2 = 0, 0, w, midY
	case "bottom-half":
		x1, y1, x2, y2 = 0, midY, w, h
	case "left-half":
		x1, y1, x2, y2 = 0, 0, midX, h
	case "right-half":
		x1, y1, x2, y2 = midX, 0, w, h
	case "center":
		qW := w / 4
		qH := h / 4
		x1, y1, x2, y2 = qW, qH, w-qW, h-qH
	default:
		return image.Rectangle{}, fmt.Errorf("unknown region: %s", r.Name)
	}

	return image.Rect(x1, y1, x2, y2).Add(bounds.Min), nil
}

// cropRegion returns the part of img selected by region, together with the
// region's top-left corner relative to img's bounds. A nil region returns img
// unchanged at offset (0,0).
func cropRegion(img image.Image, region *Region) (image.Image, image.Point, error) {
	bounds := img.Bounds()
	if region == nil {
		return img, image.Point{}, nil
	}

	rect, err := region.Rect(bounds)
	if err != nil {
		return nil, image.Point{}, err
	}

	// image.Rect canonicalizes, so check the raw coordinates for explicit regions.
	if region.Name == "" && (region.X1 >= region.X2 || region.Y1 >= region.Y2) {
		return nil, image.Point{}, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
	}
	if !rect.In(bounds) {
		return nil, image.Point{}, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y,
			bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if rect.Empty() {
		return nil, image.Point{}, fmt.Errorf("region %s is empty for a %dx%d image", region.Name, bounds.Dx(), bounds.Dy())
	}

	return imaging.Crop(img, rect), rect.Min.Sub(bounds.Min), nil
}
