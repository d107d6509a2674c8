// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvphase/internal/config"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.json"), logger)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), *cfg)
	assert.Contains(t, buf.String(), "not found")
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvphase.json")
	body := `{"paths":{"output":"out.bmp"},"algorithm":{"workers":3}}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := config.Load(path, log.New(&bytes.Buffer{}, "", 0))
	require.NoError(t, err)
	assert.Equal(t, "out.bmp", cfg.Paths.Output)
	assert.Equal(t, 3, cfg.Algorithm.Workers)
	assert.Equal(t, 20, cfg.Output.SampleSize, "untouched keys keep defaults")
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	logger := log.New(&bytes.Buffer{}, "", 0)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"paths":`), 0o644))
	_, err := config.Load(broken, logger)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"algorithm":{"workers":-2}}`), 0o644))
	_, err = config.Load(invalid, logger)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	cfg.Paths.Preview = "p.png"
	cfg.Output.PreviewWidth = 0
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)

	cfg = config.Default()
	cfg.Output.SampleSize = 0
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
}
