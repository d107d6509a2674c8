// SPDX-License-Identifier: MIT

package unwrap

import (
	"math"

	"github.com/katalvlaran/lvphase/phasemap"
)

const (
	opResolveOrderCascaded = "ResolveOrderCascaded"
	opResolveOrderScaled   = "ResolveOrderScaled"
	opResolveOrderByPeriod = "ResolveOrderByPeriod"
)

// ResolveOrderCascaded performs one cascade step: given the phase
// accumulated so far and the wrapped phase of a pattern with half the
// period, it returns the finer phase with its fringe order resolved.
//
// Per pixel:
//
//	order = round(acc − w/2)
//	out   = 2·order + w
//
// The finer pattern's true phase must lie within ±1 of 2·acc, i.e. each step
// roughly doubles the spatial frequency. That is a property of the pattern
// design and is not checked numerically. acc is not modified.
//
// Errors: ErrNilMap, ErrEmptyInput (acc or wrapped empty), ErrDimensionMismatch.
// Complexity: Time O(rows*cols), Space O(rows*cols).
func ResolveOrderCascaded(acc, wrapped *phasemap.Map, opts ...Option) (*phasemap.Map, error) {
	return resolveOrderCascaded(gatherOptions(opts...), acc, wrapped)
}

func resolveOrderCascaded(o Options, acc, wrapped *phasemap.Map) (*phasemap.Map, error) {
	if err := phasemap.ValidateMapsSameShape(acc, wrapped); err != nil {
		return nil, unwrapErrorf(opResolveOrderCascaded, err)
	}
	rows, cols := acc.Rows(), acc.Cols()
	out, err := phasemap.NewMap(rows, cols)
	if err != nil {
		return nil, unwrapErrorf(opResolveOrderCascaded, err)
	}
	da, dw, dst := acc.Data(), wrapped.Data(), out.Data()

	o.forEachRow(rows, cols, func(lo, hi int) {
		for k := lo * cols; k < hi*cols; k++ {
			order := math.Round(da[k] - dw[k]/2)
			dst[k] = order*WrapPeriod + dw[k]
		}
	})

	return out, nil
}

// ResolveOrderScaled resolves the fringe order of a wrapped target phase
// against a coarse reference phase expressed in a period factor times
// longer than the target's.
//
// Per pixel:
//
//	order = round((ref·factor − t)/2)
//	out   = 2·order + t
//
// The decision is final per pixel: the result is correct while the scaled
// reference stays within ±1 (half an order) of the target's true phase.
//
// Errors: ErrInvalidFactor (factor not positive finite), ErrNilMap,
// ErrEmptyInput, ErrDimensionMismatch.
// Complexity: Time O(rows*cols), Space O(rows*cols).
func ResolveOrderScaled(ref *phasemap.Map, factor float64, target *phasemap.Map, opts ...Option) (*phasemap.Map, error) {
	return resolveOrderScaled(gatherOptions(opts...), opResolveOrderScaled, ref, factor, target)
}

// ResolveOrderByPeriod is ResolveOrderScaled with factor = refPeriod/targetPeriod.
//
// Errors: ErrInvalidPeriod plus those of ResolveOrderScaled.
func ResolveOrderByPeriod(ref *phasemap.Map, refPeriod Period, target *phasemap.Map, targetPeriod Period, opts ...Option) (*phasemap.Map, error) {
	if !refPeriod.Valid() || !targetPeriod.Valid() {
		return nil, unwrapErrorf(opResolveOrderByPeriod, ErrInvalidPeriod)
	}
	factor := float64(refPeriod) / float64(targetPeriod)

	return resolveOrderScaled(gatherOptions(opts...), opResolveOrderByPeriod, ref, factor, target)
}

func resolveOrderScaled(o Options, op string, ref *phasemap.Map, factor float64, target *phasemap.Map) (*phasemap.Map, error) {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return nil, unwrapErrorf(op, ErrInvalidFactor)
	}
	if err := phasemap.ValidateMapsSameShape(ref, target); err != nil {
		return nil, unwrapErrorf(op, err)
	}
	rows, cols := ref.Rows(), ref.Cols()
	out, err := phasemap.NewMap(rows, cols)
	if err != nil {
		return nil, unwrapErrorf(op, err)
	}
	dr, dt, dst := ref.Data(), target.Data(), out.Data()

	o.forEachRow(rows, cols, func(lo, hi int) {
		for k := lo * cols; k < hi*cols; k++ {
			order := math.Round((dr[k]*factor - dt[k]) / WrapPeriod)
			dst[k] = order*WrapPeriod + dt[k]
		}
	})

	return out, nil
}
