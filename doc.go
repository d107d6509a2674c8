// Package lvphase turns fringe-projection captures into absolute phase maps
// by temporal phase unwrapping.
//
// 🚀 What is lvphase?
//
//	A small, dependency-light toolkit that brings together:
//		• Demodulation: 3-step and N-step phase shifting → wrapped phase in units of π
//		• Differencing: wrapped subtraction of two phase maps
//		• Order resolution: cascaded and scaled fringe-order recovery
//		• Strategies: cascaded multi-wavelength (DMWL) and two-wavelength /
//		  two-frequency heterodyne (2WL / 2FQ)
//
// Under the hood, everything is organized under two packages:
//
//	phasemap/ — Image (8-bit capture) and Map (float64 phase grid), validators,
//	            row-strip scheduling, min-max rendering
//	unwrap/   — demodulation, differencing, order resolution and the three
//	            unwrapping strategies
//
// and one command:
//
//	cmd/lvphase — loads BMP/PNG/TIFF captures, runs a strategy, writes an
//	              8-bit phase image, an optional preview and a sample dump
//
// Phase convention: every map stores phase divided by π. Wrapped maps lie in
// [0, 2); unwrapped maps are unbounded.
//
// Quick example:
//
//	phase, err := unwrap.ApplyHeterodyneWavelength(long, 12, short, 10)
//	if err != nil {
//		return err
//	}
//	img, _ := phasemap.ToGray(phase)
package lvphase
