// SPDX-License-Identifier: MIT
// Package unwrap_test contains synthetic fringe generators shared by the tests.
//
// Purpose:
//   - Render 8-bit phase-shifted captures of a known phase field so the
//     demodulators and strategies can be checked against ground truth.

package unwrap_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvphase/phasemap"
)

// phaseField returns the phase (units of π) at pixel (r, c).
type phaseField func(r, c int) float64

// render quantizes 128 + 127·cos(arg(r,c)) into an Image.
func render(t testing.TB, rows, cols int, arg func(r, c int) float64) *phasemap.Image {
	t.Helper()
	pix := make([]uint8, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pix[r*cols+c] = uint8(math.Round(128 + 127*math.Cos(arg(r, c))))
		}
	}
	im, err := phasemap.NewImage(rows, cols, pix)
	require.NoError(t, err)

	return im
}

// threeStep renders the 0°/120°/240° group whose Demodulate3 output is
// field(r,c) modulo 2.
func threeStep(t testing.TB, rows, cols int, field phaseField) []*phasemap.Image {
	t.Helper()
	out := make([]*phasemap.Image, 3)
	for k := 0; k < 3; k++ {
		shift := 2 * math.Pi * float64(k) / 3
		out[k] = render(t, rows, cols, func(r, c int) float64 {
			return math.Pi*(field(r, c)-1) + shift
		})
	}

	return out
}

// nStep renders n patterns whose DemodulateN output is field(r,c) modulo 2.
func nStep(t testing.TB, rows, cols, n int, field phaseField) []*phasemap.Image {
	t.Helper()
	out := make([]*phasemap.Image, n)
	for i := 0; i < n; i++ {
		shift := 2 * math.Pi * float64(i) / float64(n)
		out[i] = render(t, rows, cols, func(r, c int) float64 {
			return math.Pi*field(r, c) - shift
		})
	}

	return out
}

// uniform returns a rows×cols image filled with v.
func uniform(t testing.TB, rows, cols int, v uint8) *phasemap.Image {
	t.Helper()
	im, err := phasemap.UniformImage(rows, cols, v)
	require.NoError(t, err)

	return im
}

// randomImage fills a rows×cols image from a seeded source.
func randomImage(t testing.TB, rows, cols int, seed int64) *phasemap.Image {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	pix := make([]uint8, rows*cols)
	for i := range pix {
		pix[i] = uint8(rng.Intn(256))
	}
	im, err := phasemap.NewImage(rows, cols, pix)
	require.NoError(t, err)

	return im
}

// mapOf builds a Map from a field.
func mapOf(t testing.TB, rows, cols int, field phaseField) *phasemap.Map {
	t.Helper()
	m, err := phasemap.NewMap(rows, cols)
	require.NoError(t, err)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			require.NoError(t, m.Set(r, c, field(r, c)))
		}
	}

	return m
}

// mapFrom builds a 1×len(vals) Map.
func mapFrom(t testing.TB, vals ...float64) *phasemap.Map {
	t.Helper()
	m, err := phasemap.NewMapFrom(1, len(vals), vals)
	require.NoError(t, err)

	return m
}

// requireMapNear asserts every sample of got is within tol of field.
func requireMapNear(t testing.TB, got *phasemap.Map, field phaseField, tol float64) {
	t.Helper()
	require.NotNil(t, got)
	for r := 0; r < got.Rows(); r++ {
		for c := 0; c < got.Cols(); c++ {
			v, err := got.At(r, c)
			require.NoError(t, err)
			require.InDeltaf(t, field(r, c), v, tol, "pixel (%d,%d)", r, c)
		}
	}
}

// wrap2 reduces v into [0,2).
func wrap2(v float64) float64 {
	v = math.Mod(v, 2)
	if v < 0 {
		v += 2
	}

	return v
}
