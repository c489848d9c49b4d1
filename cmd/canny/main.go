// Command canny runs Canny edge detection on an image file and writes the
// binary edge mask, and optionally every intermediate stage, to disk.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ironsheep/canny-edge-mcp/internal/canny"
	"github.com/ironsheep/canny-edge-mcp/internal/imaging"
)

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("canny: %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("canny", flag.ContinueOnError)
	var (
		in        string
		out       string
		stagesDir string
		size      int
		sigma     float64
		low       uint
		high      uint
		workers   int
	)
	fs.StringVar(&in, "in", "", "input image (png, jpeg, gif, tiff, bmp)")
	fs.StringVar(&out, "out", "edges.png", "output mask (.png, .jpg or .bmp)")
	fs.StringVar(&stagesDir, "stages", "", "if set, also write every pipeline stage as <stage>.png into this directory")
	fs.IntVar(&size, "size", canny.DefaultKernelSize, "Gaussian kernel length (odd, >= 3)")
	fs.Float64Var(&sigma, "sigma", canny.DefaultSigma, "Gaussian standard deviation")
	fs.UintVar(&low, "low", canny.DefaultLow, "hysteresis low threshold (0-255)")
	fs.UintVar(&high, "high", canny.DefaultHigh, "hysteresis high threshold (0-255)")
	fs.IntVar(&workers, "workers", 1, "row-band workers for the convolution stages")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if in == "" {
		return fmt.Errorf("-in must be provided")
	}
	if low > 255 || high > 255 {
		return fmt.Errorf("thresholds must be 0-255, got low=%d high=%d", low, high)
	}

	opts := canny.Options{
		KernelSize: size,
		Sigma:      sigma,
		Low:        uint8(low),
		High:       uint8(high),
		Workers:    workers,
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	grid, err := imaging.NewImageCache().LoadGrid(in)
	if err != nil {
		return err
	}

	stages, err := canny.DetectStages(grid, opts)
	if err != nil {
		return fmt.Errorf("failed to detect edges in %s: %w", in, err)
	}

	if err := imaging.SaveMask(out, stages.Edges); err != nil {
		return err
	}
	edges := 0
	for _, v := range stages.Edges.Pix {
		if v == canny.Edge {
			edges++
		}
	}
	fmt.Fprintf(stdout, "%s: %dx%d mask, %d edge pixels, offset %d -> %s\n",
		in, stages.Edges.Width, stages.Edges.Height, edges, opts.Border(), out)

	if stagesDir == "" {
		return nil
	}
	if err := os.MkdirAll(stagesDir, 0o755); err != nil {
		return fmt.Errorf("failed to create stages directory: %w", err)
	}
	for _, stage := range imaging.StageImages(stages) {
		path := filepath.Join(stagesDir, stage.Name+".png")
		if err := imaging.SaveImage(path, stage.Image); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "  %-10s -> %s\n", stage.Name, path)
	}
	return nil
}
