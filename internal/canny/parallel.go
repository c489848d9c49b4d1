package canny

import "golang.org/x/sync/errgroup"

// minBandRows is the smallest band handed to one worker.
const minBandRows = 16

// forEachRow calls fn for every row in [0, height). With workers > 1 the rows
// are split into contiguous bands processed concurrently; fn must only write
// to its own output row.
func forEachRow(height, workers int, fn func(y int)) {
	if workers <= 1 || height < 2*minBandRows {
		for y := 0; y < height; y++ {
			fn(y)
		}
		return
	}

	band := (height + workers - 1) / workers
	if band < minBandRows {
		band = minBandRows
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < height; start += band {
		start := start // per-iteration copy (Go 1.22+ loop semantics under go 1.21)
		end := min(start+band, height)
		g.Go(func() error {
			for y := start; y < end; y++ {
				fn(y)
			}
			return nil
		})
	}
	// Row functions cannot fail; Wait only joins the bands.
	_ = g.Wait()
}
