// SPDX-License-Identifier: MIT

package unwrap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvphase/phasemap"
	"github.com/katalvlaran/lvphase/unwrap"
)

// TestDemodulate3_UniformScenario checks I0=128, I120=64, I240=192 on a 4×4
// grid: atan2(√3·128, 0)/π + 1 = 1.5 at every pixel.
func TestDemodulate3_UniformScenario(t *testing.T) {
	i0, i120, i240 := uniform(t, 4, 4, 128), uniform(t, 4, 4, 64), uniform(t, 4, 4, 192)

	got, err := unwrap.Demodulate3(i0, i120, i240)
	require.NoError(t, err)
	require.Equal(t, 4, got.Rows())
	require.Equal(t, 4, got.Cols())

	want := math.Atan2(math.Sqrt(3)*(192-64), 2*128-64-192)/math.Pi + 1
	for _, v := range got.Data() {
		assert.Equal(t, want, v)
	}
	assert.InDelta(t, 1.5, want, 1e-15)
}

// TestDemodulate3_RangeOnRandomInput verifies every output lies in [0,2).
func TestDemodulate3_RangeOnRandomInput(t *testing.T) {
	i0, i120, i240 := randomImage(t, 37, 41, 1), randomImage(t, 37, 41, 2), randomImage(t, 37, 41, 3)

	got, err := unwrap.Demodulate3(i0, i120, i240, unwrap.WithParallelThreshold(0), unwrap.WithWorkers(3))
	require.NoError(t, err)
	for k, v := range got.Data() {
		require.GreaterOrEqualf(t, v, 0.0, "pixel %d", k)
		require.Lessf(t, v, 2.0, "pixel %d", k)
	}
}

// TestDemodulate3_FlatPixel pins the atan2(0,0) convention to 1.0.
func TestDemodulate3_FlatPixel(t *testing.T) {
	flat := uniform(t, 2, 3, 200)

	got, err := unwrap.Demodulate3(flat, flat, flat)
	require.NoError(t, err)
	for _, v := range got.Data() {
		assert.Equal(t, 1.0, v)
	}
}

// TestDemodulate3_HalfPeriodFoldsToZero covers atan2(+0, negative) = π,
// which would otherwise produce exactly 2.0.
func TestDemodulate3_HalfPeriodFoldsToZero(t *testing.T) {
	got, err := unwrap.Demodulate3(uniform(t, 1, 2, 0), uniform(t, 1, 2, 100), uniform(t, 1, 2, 100))
	require.NoError(t, err)
	for _, v := range got.Data() {
		assert.Equal(t, 0.0, v)
	}
}

// TestDemodulate3_RecoversField checks a synthetic ramp is recovered within
// 8-bit quantization error.
func TestDemodulate3_RecoversField(t *testing.T) {
	field := func(r, c int) float64 { return 0.05 + 0.06*float64(c) + 0.01*float64(r) }
	g := threeStep(t, 5, 30, field)

	got, err := unwrap.Demodulate3(g[0], g[1], g[2])
	require.NoError(t, err)
	requireMapNear(t, got, field, 0.01)
}

// TestDemodulate_DimensionGuard mixes a 10×10 and a 10×11 image.
func TestDemodulate_DimensionGuard(t *testing.T) {
	a, b := uniform(t, 10, 10, 1), uniform(t, 10, 11, 1)

	m, err := unwrap.Demodulate3(a, a, b)
	assert.ErrorIs(t, err, unwrap.ErrDimensionMismatch)
	assert.Nil(t, m)

	m, err = unwrap.DemodulateN([]*phasemap.Image{a, a, a, b})
	assert.ErrorIs(t, err, phasemap.ErrDimensionMismatch)
	assert.Nil(t, m)
}

// TestDemodulate_NilImage rejects nil inputs.
func TestDemodulate_NilImage(t *testing.T) {
	a := uniform(t, 2, 2, 1)

	_, err := unwrap.Demodulate3(a, nil, a)
	assert.ErrorIs(t, err, phasemap.ErrNilImage)

	_, err = unwrap.DemodulateN([]*phasemap.Image{a, a, nil})
	assert.ErrorIs(t, err, phasemap.ErrNilImage)
}

// TestDemodulateN_InsufficientSamples requires at least three patterns.
func TestDemodulateN_InsufficientSamples(t *testing.T) {
	a := uniform(t, 2, 2, 1)
	for _, pats := range [][]*phasemap.Image{nil, {a}, {a, a}} {
		m, err := unwrap.DemodulateN(pats)
		assert.ErrorIs(t, err, unwrap.ErrInsufficientSamples)
		assert.Nil(t, m)
	}
}

// TestDemodulateN_RecoversField checks several step counts against a ramp
// kept inside (−1,1).
func TestDemodulateN_RecoversField(t *testing.T) {
	field := func(r, c int) float64 { return -0.9 + 0.06*float64(c) + 0.02*float64(r) }
	for _, n := range []int{3, 4, 6, 8} {
		pats := nStep(t, 4, 30, n, field)

		got, err := unwrap.DemodulateN(pats)
		require.NoError(t, err, "n=%d", n)
		requireMapNear(t, got, field, 0.01)
	}
}

// TestDemodulateNWrapped_Range checks the wrapped form equals DemodulateN
// folded into [0,2).
func TestDemodulateNWrapped_Range(t *testing.T) {
	pats := []*phasemap.Image{randomImage(t, 9, 13, 7), randomImage(t, 9, 13, 8), randomImage(t, 9, 13, 9), randomImage(t, 9, 13, 10)}

	raw, err := unwrap.DemodulateN(pats)
	require.NoError(t, err)
	wrapped, err := unwrap.DemodulateNWrapped(pats)
	require.NoError(t, err)

	for k, v := range wrapped.Data() {
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 2.0)
		require.InDelta(t, wrap2(raw.Data()[k]), v, 1e-12)
	}
}

// TestDemodulate_WorkerCountIsInvisible compares sequential and strip-parallel runs.
func TestDemodulate_WorkerCountIsInvisible(t *testing.T) {
	pats := []*phasemap.Image{randomImage(t, 130, 70, 11), randomImage(t, 130, 70, 12), randomImage(t, 130, 70, 13)}

	seq, err := unwrap.Demodulate3(pats[0], pats[1], pats[2], unwrap.WithSequential())
	require.NoError(t, err)
	par, err := unwrap.Demodulate3(pats[0], pats[1], pats[2], unwrap.WithWorkers(4), unwrap.WithParallelThreshold(0))
	require.NoError(t, err)
	assert.Equal(t, seq.Data(), par.Data())

	seqN, err := unwrap.DemodulateN(pats, unwrap.WithSequential())
	require.NoError(t, err)
	parN, err := unwrap.DemodulateN(pats, unwrap.WithWorkers(5), unwrap.WithParallelThreshold(0))
	require.NoError(t, err)
	assert.Equal(t, seqN.Data(), parN.Data())
}

// TestDemodulate_InputsUntouched verifies demodulation never writes to its images.
func TestDemodulate_InputsUntouched(t *testing.T) {
	im := randomImage(t, 6, 6, 21)
	before := append([]uint8(nil), im.Pix()...)

	_, err := unwrap.DemodulateN([]*phasemap.Image{im, im, im})
	require.NoError(t, err)
	assert.Equal(t, before, im.Pix())
}
