// Package unwrap recovers absolute (unwrapped) phase maps from sets of
// phase-shifted fringe images, the core numeric step of fringe-projection
// profilometry.
//
// 🚀 What is temporal phase unwrapping?
//
//	A projected sinusoidal pattern, observed under N known phase shifts,
//	encodes at every pixel a phase value known only modulo one fringe period
//	("wrapped phase"). Capturing the scene with patterns of different
//	spatial periods lets each pixel's fringe order be resolved on its own,
//	with no spatial path-following, so every stage is embarrassingly
//	parallel.
//
// ✨ Building blocks:
//   - Demodulate3 / DemodulateN — wrapped phase from 3 or N shifted images
//   - SubtractPhase             — beat (equivalent-period) phase of two maps
//   - ResolveOrderCascaded      — one doubling step of a cascade
//   - ResolveOrderScaled        — order resolution against a scaled reference
//
// ✨ Strategies:
//   - ApplyCascaded             — DMWL: coarsest to finest, each 3-step group
//     resolving the next (see Cascade for the step-wise accumulator)
//   - ApplyHeterodyneWavelength — 2WL: long/short wavelength pair
//   - ApplyHeterodyneFrequency  — 2FQ: high/low frequency pair
//
// Both heterodyne strategies run one routine over Period values:
// a wavelength is its own period and a frequency f has period 1/f, so the
// longer period is always the coarse member of the pair.
//
// Units:
//
//	All phase maps hold phase/π. Wrapped maps span [0, WrapPeriod) = [0,2);
//	DemodulateN alone returns (−1,1]. Unwrapped maps hold 2·order + wrapped.
//
// ⚙️ Usage:
//
//	phase, err := unwrap.ApplyHeterodyneWavelength(longImgs, 12, shortImgs, 10)
//	if errors.Is(err, unwrap.ErrInvalidOrdering) {
//	  // long wavelength must exceed short wavelength
//	}
//
// Performance:
//
//   - Time:   O(rows·cols·images) per call
//   - Memory: one float64 map per intermediate stage
//   - Row strips are spread over GOMAXPROCS goroutines by default
//     (see WithWorkers, WithSequential).
package unwrap
