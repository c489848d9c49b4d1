// Package imaging connects image files and image.Image values to the canny
// edge pipeline.
//
// It decodes files (through github.com/disintegration/imaging), reduces them
// to intensity grids, runs the pipeline and encodes the results back to PNG,
// either as base64 for the MCP server or as files for the CLI.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left, X increasing
// rightward and Y downward. For regions, (x1,y1) is inclusive and (x2,y2) is
// exclusive.
//
// Edge masks are smaller than their source: the pipeline drops
// Options.Border() pixels on every side. EdgeDetectResult reports the offset
// of the mask inside the source image so callers can map edge pixels back.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Grids returned by LoadGrid are
// shared and must be treated as read-only. All other functions are
// stateless.
//
// # Error Handling
//
// Functions return errors for:
//   - Regions outside the image or with x1 >= x2 or y1 >= y2
//   - Images smaller than Options.MinDimension() (wraps canny.ErrDimensionTooSmall)
//   - Invalid pipeline options (wraps canny.ErrInvalidParameter)
//   - File I/O and encoding failures
package imaging
