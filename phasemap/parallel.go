// SPDX-License-Identifier: MIT

package phasemap

import (
	"runtime"
	"sync"
)

// Parallel tuning parameters.
const (
	// RowsPerStrip is how many rows a worker claims from the strip queue at a time.
	RowsPerStrip = 16

	// DefaultParallelThreshold is the pixel count below which ForEachRow
	// runs the kernel inline on the calling goroutine.
	DefaultParallelThreshold = 64 * 64
)

// DefaultWorkers returns the worker count used when none is configured.
func DefaultWorkers() int { return runtime.GOMAXPROCS(0) }

// ForEachRow calls fn over disjoint half-open row ranges [lo, hi) that
// together cover [0, rows). Ranges are handed out as strips of RowsPerStrip
// rows to at most workers goroutines; ForEachRow returns once every strip
// has been processed.
//
// fn must only write to rows inside its range. Grids smaller than threshold
// pixels, or workers <= 1, run as a single fn(0, rows) call.
// Complexity: O(rows/RowsPerStrip) scheduling on top of fn.
func ForEachRow(rows, cols, workers, threshold int, fn func(lo, hi int)) {
	if rows <= 0 {
		return
	}
	numStrips := (rows + RowsPerStrip - 1) / RowsPerStrip
	workers = min(workers, numStrips)
	if workers <= 1 || rows*cols < threshold {
		fn(0, rows)
		return
	}

	// Work queue of row strips
	work := make(chan int, numStrips)
	for strip := 0; strip < numStrips; strip++ {
		work <- strip
	}
	close(work)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for strip := range work {
				lo := strip * RowsPerStrip
				fn(lo, min(lo+RowsPerStrip, rows))
			}
		}()
	}
	wg.Wait()
}
