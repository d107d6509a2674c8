// SPDX-License-Identifier: MIT

// Package unwrap: functional configuration of the per-pixel kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Options only change how rows are scheduled; results are bit-identical for
// every worker count.
package unwrap

import "github.com/katalvlaran/lvphase/phasemap"

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid   = "unwrap: WithWorkers: n must be >= 1"
	panicThresholdInvalid = "unwrap: WithParallelThreshold: pixels must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers   int // goroutines per kernel; phasemap.DefaultWorkers()
	threshold int // pixels below which kernels run inline; phasemap.DefaultParallelThreshold
}

// WithWorkers caps the number of goroutines a kernel may use.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithSequential runs every kernel on the calling goroutine.
func WithSequential() Option {
	return func(o *Options) { o.workers = 1 }
}

// WithParallelThreshold sets the pixel count from which kernels are split
// into row strips. Zero parallelises every grid. Panics when pixels < 0.
func WithParallelThreshold(pixels int) Option {
	if pixels < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = pixels }
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{
		workers:   phasemap.DefaultWorkers(),
		threshold: phasemap.DefaultParallelThreshold,
	}
}

// gatherOptions applies opts over the defaults. nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// forEachRow schedules fn over row strips according to o.
func (o Options) forEachRow(rows, cols int, fn func(lo, hi int)) {
	phasemap.ForEachRow(rows, cols, o.workers, o.threshold, fn)
}
