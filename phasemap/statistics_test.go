// SPDX-License-Identifier: MIT

package phasemap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvphase/phasemap"
)

func TestMinMax(t *testing.T) {
	m, err := phasemap.NewMapFrom(1, 5, []float64{3, -1, math.NaN(), 7.5, math.Inf(1)})
	require.NoError(t, err)

	lo, hi, err := phasemap.MinMax(m)
	require.NoError(t, err)
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 7.5, hi)

	_, _, err = phasemap.MinMax(&phasemap.Map{})
	assert.ErrorIs(t, err, phasemap.ErrEmptyInput)
}

func TestToGray(t *testing.T) {
	m, err := phasemap.NewMapFrom(2, 2, []float64{0, 5, 10, math.NaN()})
	require.NoError(t, err)

	g, err := phasemap.ToGray(m)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 128, 255, 0}, g.Pix)

	flat, _ := phasemap.NewMapFrom(1, 2, []float64{4, 4})
	g, err = phasemap.ToGray(flat)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 0}, g.Pix)
}
