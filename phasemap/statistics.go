// SPDX-License-Identifier: MIT
// Package: phasemap
//
// Purpose:
//   - Range statistics over a Map and the min-max rescale used to turn an
//     unwrapped phase map into an 8-bit picture for saving or preview.

package phasemap

import (
	"image"
	"math"
)

const (
	opMinMax = "MinMax"
	opToGray = "ToGray"
)

// MinMax returns the smallest and largest finite value of m.
// NaN and ±Inf samples are skipped; if no finite sample exists both results
// are 0.
// Errors: ErrNilMap, ErrEmptyInput.
// Complexity: O(r*c).
func MinMax(m *Map) (lo, hi float64, err error) {
	if err = ValidateMap(m); err != nil {
		return 0, 0, errorf(opMinMax, err)
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		return 0, 0, nil
	}

	return lo, hi, nil
}

// ToGray rescales m linearly so its minimum maps to 0 and its maximum to
// 255, rounding to the nearest level. A constant map renders as all zeros;
// non-finite samples render as 0.
// Complexity: O(r*c).
func ToGray(m *Map) (*image.Gray, error) {
	lo, hi, err := MinMax(m)
	if err != nil {
		return nil, errorf(opToGray, err)
	}
	g := image.NewGray(image.Rect(0, 0, m.c, m.r))
	span := hi - lo
	if span == 0 {
		return g, nil
	}
	scale := 255 / span
	for i, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		g.Pix[i] = uint8(math.Round((v - lo) * scale)) // Stride == c
	}

	return g, nil
}
