// SPDX-License-Identifier: MIT

package unwrap

import "math"

// Period is the spatial period of one fringe pattern family, in any length
// unit as long as both members of a pair share it.
//
// A wavelength λ is its own period and a spatial frequency f has period
// 1/f, so the wavelength and frequency forms of the heterodyne method are
// the same computation: the member with the longer period is the coarse
// reference and the other is the fine target.
type Period float64

// Wavelength returns the period of a pattern with wavelength lambda.
func Wavelength(lambda float64) Period { return Period(lambda) }

// Frequency returns the period of a pattern with spatial frequency f.
func Frequency(f float64) Period { return Period(1 / f) }

// Valid reports whether p is a positive finite period.
func (p Period) Valid() bool {
	v := float64(p)
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// validatePair checks that both periods are valid and coarse > fine.
func validatePair(coarse, fine Period) error {
	if !coarse.Valid() || !fine.Valid() {
		return ErrInvalidPeriod
	}
	if coarse <= fine {
		return ErrInvalidOrdering
	}

	return nil
}

// phaseFactor returns coarse/(coarse−fine): the scale that maps the beat
// phase of the pair onto the fine member's phase.
// For wavelengths this is λlong/(λlong−λshort); for frequencies it equals
// fhigh/(fhigh−flow).
func phaseFactor(coarse, fine Period) float64 {
	return float64(coarse) / float64(coarse-fine)
}

// EquivalentPeriod returns the beat period a·b/|a−b| of two pattern
// families. Errors: ErrInvalidPeriod, ErrInvalidOrdering when a == b.
func EquivalentPeriod(a, b Period) (Period, error) {
	if !a.Valid() || !b.Valid() {
		return 0, unwrapErrorf("EquivalentPeriod", ErrInvalidPeriod)
	}
	if a == b {
		return 0, unwrapErrorf("EquivalentPeriod", ErrInvalidOrdering)
	}

	return Period(float64(a) * float64(b) / math.Abs(float64(a-b))), nil
}
