// SPDX-License-Identifier: MIT

package unwrap

import (
	"math"

	"github.com/katalvlaran/lvphase/phasemap"
)

// Operation name constants for unified error wrapping.
const (
	opDemodulate3        = "Demodulate3"
	opDemodulateN        = "DemodulateN"
	opDemodulateNWrapped = "DemodulateNWrapped"
)

// Demodulate3 computes the wrapped phase of a three-step (0°, 120°, 240°)
// phase-shifted capture.
//
// Per pixel:
//
//	phase = atan2(√3·(I240 − I120), 2·I0 − I120 − I240)/π + 1
//
// which recovers φ for intensities I_k = A + B·cos(φ + 2πk/3), shifted by
// one half period so the result spans [0,2).
//
// Behavior highlights:
//   - A pixel whose three samples are equal has atan2(0,0) = 0 and maps to 1.0.
//   - atan2 returning +π would give exactly 2.0; it folds to 0.
//   - Inputs are read only; a fresh Map is returned.
//
// Errors: ErrNilImage, ErrBadShape, ErrDimensionMismatch.
// Complexity: Time O(rows*cols), Space O(rows*cols).
func Demodulate3(i0, i120, i240 *phasemap.Image, opts ...Option) (*phasemap.Map, error) {
	return demodulate3(gatherOptions(opts...), i0, i120, i240)
}

func demodulate3(o Options, i0, i120, i240 *phasemap.Image) (*phasemap.Map, error) {
	// Stage 1 (Validate): presence and identical shapes.
	if err := phasemap.ValidateImagesSameShape(i0, i120, i240); err != nil {
		return nil, unwrapErrorf(opDemodulate3, err)
	}

	// Stage 2 (Prepare): allocate the output.
	rows, cols := i0.Rows(), i0.Cols()
	out, err := phasemap.NewMap(rows, cols)
	if err != nil {
		return nil, unwrapErrorf(opDemodulate3, err)
	}
	p0, p120, p240 := i0.Pix(), i120.Pix(), i240.Pix()
	dst := out.Data()

	// Stage 3 (Execute): closed-form three-step formula per pixel.
	o.forEachRow(rows, cols, func(lo, hi int) {
		for k := lo * cols; k < hi*cols; k++ {
			a, b, c := float64(p0[k]), float64(p120[k]), float64(p240[k])
			dst[k] = foldPeriod(math.Atan2(sqrt3*(c-b), 2*a-b-c)/math.Pi + 1)
		}
	})

	return out, nil
}

// DemodulateN computes the wrapped phase of an N-step capture by a
// per-pixel discrete Fourier transform at the fundamental frequency:
//
//	sinSum = Σ_i sin(2πi/N)·I_i
//	cosSum = Σ_i cos(2πi/N)·I_i
//	phase  = atan2(sinSum, cosSum)/π
//
// Pattern i must carry the shift 2πi/N; for I_i = A + B·cos(φ − 2πi/N) the
// result is φ/π. Higher harmonics of a non-sinusoidal fringe cancel by
// orthogonality, so larger N is more robust.
//
// Behavior highlights:
//   - Output range is (−1,1]; use DemodulateNWrapped for [0,2).
//   - The sin/cos weights are computed once per call.
//
// Errors: ErrInsufficientSamples (N < MinSamples), ErrNilImage, ErrBadShape,
// ErrDimensionMismatch.
// Complexity: Time O(N*rows*cols), Space O(rows*cols).
func DemodulateN(patterns []*phasemap.Image, opts ...Option) (*phasemap.Map, error) {
	return demodulateN(gatherOptions(opts...), opDemodulateN, patterns)
}

// DemodulateNWrapped is DemodulateN with the result folded into [0,2).
func DemodulateNWrapped(patterns []*phasemap.Image, opts ...Option) (*phasemap.Map, error) {
	return demodulateNWrapped(gatherOptions(opts...), patterns)
}

func demodulateNWrapped(o Options, patterns []*phasemap.Image) (*phasemap.Map, error) {
	out, err := demodulateN(o, opDemodulateNWrapped, patterns)
	if err != nil {
		return nil, err
	}
	wrapInPlace(o, out)

	return out, nil
}

func demodulateN(o Options, op string, patterns []*phasemap.Image) (*phasemap.Map, error) {
	// Stage 1 (Validate): sample count, then presence and shapes.
	n := len(patterns)
	if n < MinSamples {
		return nil, unwrapErrorf(op, ErrInsufficientSamples)
	}
	if err := phasemap.ValidateImagesSameShape(patterns...); err != nil {
		return nil, unwrapErrorf(op, err)
	}

	// Stage 2 (Prepare): output and the phase-shift basis.
	rows, cols := patterns[0].Rows(), patterns[0].Cols()
	out, err := phasemap.NewMap(rows, cols)
	if err != nil {
		return nil, unwrapErrorf(op, err)
	}
	sinW := make([]float64, n)
	cosW := make([]float64, n)
	pix := make([][]uint8, n)
	for i, p := range patterns {
		shift := 2 * math.Pi * float64(i) / float64(n)
		sinW[i], cosW[i] = math.Sincos(shift)
		pix[i] = p.Pix()
	}
	dst := out.Data()

	// Stage 3 (Execute): project each pixel's samples onto the basis.
	o.forEachRow(rows, cols, func(lo, hi int) {
		for k := lo * cols; k < hi*cols; k++ {
			var sinSum, cosSum float64
			for i := 0; i < n; i++ {
				v := float64(pix[i][k])
				sinSum += sinW[i] * v
				cosSum += cosW[i] * v
			}
			dst[k] = math.Atan2(sinSum, cosSum) / math.Pi
		}
	})

	return out, nil
}
