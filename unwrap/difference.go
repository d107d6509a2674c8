// SPDX-License-Identifier: MIT

package unwrap

import "github.com/katalvlaran/lvphase/phasemap"

const (
	opSubtractPhase = "SubtractPhase"
	opWrapPhase     = "WrapPhase"
)

// SubtractPhase returns (a − b) modulo WrapPeriod per pixel: the phase of
// the beat between two wrapped maps.
//
// Per pixel: v = a − b; v < 0 adds WrapPeriod and v ≥ WrapPeriod subtracts
// it, so for a, b in [0,2) the result lies in [0,2). The upper fold only
// triggers for inputs outside the wrapped range or when v+2 rounds to 2.
//
// Errors: ErrNilMap, ErrEmptyInput, ErrDimensionMismatch.
// Complexity: Time O(rows*cols), Space O(rows*cols).
func SubtractPhase(a, b *phasemap.Map, opts ...Option) (*phasemap.Map, error) {
	return subtractPhase(gatherOptions(opts...), a, b)
}

func subtractPhase(o Options, a, b *phasemap.Map) (*phasemap.Map, error) {
	if err := phasemap.ValidateMapsSameShape(a, b); err != nil {
		return nil, unwrapErrorf(opSubtractPhase, err)
	}
	rows, cols := a.Rows(), a.Cols()
	out, err := phasemap.NewMap(rows, cols)
	if err != nil {
		return nil, unwrapErrorf(opSubtractPhase, err)
	}
	da, db, dst := a.Data(), b.Data(), out.Data()

	o.forEachRow(rows, cols, func(lo, hi int) {
		for k := lo * cols; k < hi*cols; k++ {
			dst[k] = foldPeriod(da[k] - db[k])
		}
	})

	return out, nil
}

// WrapPhase returns a copy of m with every value reduced modulo WrapPeriod
// into [0,2). Use it to bring DemodulateN output or an unwrapped map back
// to wrapped form.
//
// Errors: ErrNilMap, ErrEmptyInput.
// Complexity: Time O(rows*cols), Space O(rows*cols).
func WrapPhase(m *phasemap.Map, opts ...Option) (*phasemap.Map, error) {
	if err := phasemap.ValidateMap(m); err != nil {
		return nil, unwrapErrorf(opWrapPhase, err)
	}
	out := m.Clone()
	wrapInPlace(gatherOptions(opts...), out)

	return out, nil
}

// wrapInPlace folds a map this package owns into [0,2).
func wrapInPlace(o Options, m *phasemap.Map) {
	cols := m.Cols()
	d := m.Data()
	o.forEachRow(m.Rows(), cols, func(lo, hi int) {
		for k := lo * cols; k < hi*cols; k++ {
			d[k] = wrapValue(d[k])
		}
	})
}
