// SPDX-License-Identifier: MIT

package imageio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvphase/internal/imageio"
)

func TestExtractNumber(t *testing.T) {
	cases := map[string]int{
		"MFPS5.bmp":           5,
		"dir/capture_012.png": 12,
		"/abs/p100.tiff":      100,
		"7":                   7,
	}
	for name, want := range cases {
		got, err := imageio.ExtractNumber(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := imageio.ExtractNumber("plain.bmp")
	assert.Error(t, err)
}

func TestSortNatural(t *testing.T) {
	paths := []string{"p10.bmp", "b.bmp", "p2.bmp", "a.bmp", "p1.bmp"}
	imageio.SortNatural(paths)
	assert.Equal(t, []string{"p1.bmp", "p2.bmp", "p10.bmp", "a.bmp", "b.bmp"}, paths)
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"p1.bmp", "p10.bmp", "p2.bmp"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}

	got, err := imageio.Expand([]string{"first.png", filepath.Join(dir, "p*.bmp")})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"first.png",
		filepath.Join(dir, "p1.bmp"),
		filepath.Join(dir, "p2.bmp"),
		filepath.Join(dir, "p10.bmp"),
	}, got)

	_, err = imageio.Expand([]string{filepath.Join(dir, "*.tiff")})
	assert.ErrorIs(t, err, imageio.ErrNoMatch)

	_, err = imageio.Expand([]string{"[bad"})
	assert.Error(t, err)
}
