// Package phasemap holds the two grids the phase-unwrapping core works on.
//
// What & Why:
//
//	Image is a read-only rows×cols grid of 8-bit intensity samples, the raw
//	capture of one phase-shifted fringe pattern. Map is a rows×cols grid of
//	float64 phase values expressed in units of π, so one full fringe period
//	(2π) spans the numeric range [0,2).
//
//	Both types are row-major and store their samples in a single flat slice,
//	which keeps the per-pixel kernels in package unwrap cache friendly and
//	lets them be split into row strips (see ForEachRow).
//
// Errors:
//
//	All validation failures are reported with the sentinels in errors.go and
//	are matched with errors.Is.
//
// Complexity:
//
//	Rows/Cols/At/Set run in O(1). Clone, Window and the statistics helpers
//	run in O(rows*cols).
package phasemap
